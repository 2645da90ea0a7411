// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"log"

	"orbitui.org/f32"
	"orbitui.org/internal/ring"
	"orbitui.org/io/event"
	"orbitui.org/io/pointer"
)

// DefaultQueueLen is the default logical capacity of every buffer. A
// capture beyond it evicts the oldest undrained event.
const DefaultQueueLen = 50

// Callbacks are the per-kind handler functions invoked by Frame. Nil
// callbacks are skipped; the matching observable is notified either
// way.
type Callbacks struct {
	OnButtonDown func(pointer.Event)
	OnButtonUp   func(pointer.Event)
	OnDoubleTap  func(pointer.Source)
	OnTouch      func(TouchEvent)
	OnMultiTouch func(MultiTouchEvent)
	OnLostFocus  func()
}

// Controller queues raw pointer events between capture and the
// per-frame dispatch. The zero value is ready to use.
//
// A Controller owns its buffers exclusively and must not be shared
// across goroutines.
type Controller struct {
	Callbacks

	// Immediate disables deferral: events dispatch synchronously
	// during Queue, with no buffering and no coalescing.
	Immediate bool
	// PointerLock routes Move events as relative-motion Touch events
	// with a nil contact, bypassing contact tracking.
	PointerLock bool
	// QueueLen overrides DefaultQueueLen when positive.
	QueueLen int

	// SetCapture and ReleaseCapture, when non-nil, are invoked on
	// Press and Release so the host can acquire exclusive pointer
	// capture. Acquisition failures are ignored; capture then
	// continues in a non-exclusive mode.
	SetCapture     func(pointer.ID) error
	ReleaseCapture func(pointer.ID) error

	ButtonDownObservable event.Observable[pointer.Event]
	ButtonUpObservable   event.Observable[pointer.Event]
	DoubleTapObservable  event.Observable[pointer.Source]
	TouchObservable      event.Observable[TouchEvent]
	MultiTouchObservable event.Observable[MultiTouchEvent]
	LostFocusObservable  event.Observable[LostFocusEvent]

	// order records which per-kind buffer received each capture. It
	// is the single source of truth for cross-kind dispatch order.
	order   ring.Buffer[kind]
	downs   ring.Buffer[pointer.Event]
	ups     ring.Buffer[pointer.Event]
	taps    ring.Buffer[pointer.Source]
	touches ring.Buffer[TouchEvent]
	multis  ring.Buffer[MultiTouchEvent]

	// pointA and pointB track the primary and secondary contact.
	pointA *Contact
	pointB *Contact
	// prevPinch2 and prevPan carry the last pinch sample across
	// frames so the next sample can report its deltas.
	prevPinch2 float32
	prevPan    *f32.Point
}

func (c *Controller) maxLen() int {
	if c.QueueLen > 0 {
		return c.QueueLen
	}
	return DefaultQueueLen
}

func (c *Controller) init() {
	n := c.maxLen()
	c.order.MaxLen = n
	c.downs.MaxLen = n
	c.ups.MaxLen = n
	c.taps.MaxLen = n
	c.touches.MaxLen = n
	c.multis.MaxLen = n
}

// Queue captures one raw pointer event: it classifies the event,
// applies the coalescing rule for motion, and buffers it for the next
// Frame. In Immediate mode the event dispatches before Queue returns.
func (c *Controller) Queue(e pointer.Event) {
	c.init()
	switch e.Kind {
	case pointer.Press:
		c.press(e)
	case pointer.Release:
		c.release(e)
	case pointer.Move:
		c.move(e)
	case pointer.DoubleTap:
		c.doubleTap(e)
	}
}

func (c *Controller) press(e pointer.Event) {
	if c.SetCapture != nil {
		_ = c.SetCapture(e.PointerID)
	}
	switch {
	case c.pointA == nil:
		c.pointA = &Contact{ID: e.PointerID, Source: e.Source, Position: e.Position}
	case c.pointB == nil && c.pointA.ID != e.PointerID:
		c.pointB = &Contact{ID: e.PointerID, Source: e.Source, Position: e.Position}
	default:
		// A third simultaneous contact is not tracked, but its
		// button-down still dispatches.
	}
	if c.Immediate {
		c.dispatchButtonDown(e)
		return
	}
	c.makeRoom(kindButtonDown)
	*c.downs.Push() = e
	*c.order.Push() = kindButtonDown
}

func (c *Controller) release(e pointer.Event) {
	if c.ReleaseCapture != nil {
		_ = c.ReleaseCapture(e.PointerID)
	}
	switch {
	case c.pointA != nil && c.pointA.ID == e.PointerID:
		c.pointA = c.pointB
		c.pointB = nil
	case c.pointB != nil && c.pointB.ID == e.PointerID:
		c.pointB = nil
	}
	// Any lifted contact ends the pinch run.
	c.prevPinch2 = 0
	c.prevPan = nil
	if c.Immediate {
		c.dispatchButtonUp(e)
		return
	}
	c.makeRoom(kindButtonUp)
	*c.ups.Push() = e
	*c.order.Push() = kindButtonUp
}

func (c *Controller) move(e pointer.Event) {
	if c.PointerLock {
		c.queueTouch(nil, e.Movement.X, e.Movement.Y)
		return
	}
	a, b := c.pointA, c.pointB
	switch {
	case a != nil && b != nil:
		switch e.PointerID {
		case a.ID:
			a.Position = e.Position
		case b.ID:
			b.Position = e.Position
		default:
			return
		}
		pinch2 := a.Position.Dist2(b.Position)
		pan := a.Position.Mid(b.Position)
		c.queueMultiTouch(pinch2, pan)
		c.prevPinch2 = pinch2
		prev := pan
		c.prevPan = &prev
	case a != nil && a.ID == e.PointerID:
		dx := e.Position.X - a.Position.X
		dy := e.Position.Y - a.Position.Y
		a.Position = e.Position
		c.queueTouch(a, dx, dy)
	}
}

func (c *Controller) doubleTap(e pointer.Event) {
	if c.Immediate {
		c.dispatchDoubleTap(e.Source)
		return
	}
	c.makeRoom(kindDoubleTap)
	*c.taps.Push() = e.Source
	*c.order.Push() = kindDoubleTap
}

func (c *Controller) queueTouch(p *Contact, dx, dy float32) {
	if c.Immediate {
		c.dispatchTouch(TouchEvent{Contact: p, OffsetX: dx, OffsetY: dy})
		return
	}
	if last, ok := c.order.Last(); ok && *last == kindTouch {
		if slot, ok := c.touches.Last(); ok {
			// Coalesce into the undrained sample: sum the deltas,
			// track the latest contact.
			slot.Contact = p
			slot.OffsetX += dx
			slot.OffsetY += dy
			return
		}
	}
	c.makeRoom(kindTouch)
	*c.touches.Push() = TouchEvent{Contact: p, OffsetX: dx, OffsetY: dy}
	*c.order.Push() = kindTouch
}

func (c *Controller) queueMultiTouch(pinch2 float32, pan f32.Point) {
	if c.Immediate {
		c.dispatchMultiTouch(MultiTouchEvent{
			PointA:                       c.pointA,
			PointB:                       c.pointB,
			PreviousPinchSquaredDistance: c.prevPinch2,
			PinchSquaredDistance:         pinch2,
			PreviousPanPosition:          c.prevPan,
			PanPosition:                  pan,
		})
		return
	}
	if last, ok := c.order.Last(); ok && *last == kindMultiTouch {
		if slot, ok := c.multis.Last(); ok {
			// Coalesce: accumulate the pinch distance, track the
			// latest contacts and pan. The Previous values stay those
			// of the first sample of the run.
			slot.PointA = c.pointA
			slot.PointB = c.pointB
			slot.PinchSquaredDistance += pinch2
			slot.PanPosition = pan
			return
		}
	}
	c.makeRoom(kindMultiTouch)
	*c.multis.Push() = MultiTouchEvent{
		PointA:                       c.pointA,
		PointB:                       c.pointB,
		PreviousPinchSquaredDistance: c.prevPinch2,
		PinchSquaredDistance:         pinch2,
		PreviousPanPosition:          c.prevPan,
		PanPosition:                  pan,
	}
	*c.order.Push() = kindMultiTouch
}

// makeRoom evicts oldest entries until both the order buffer and the
// k slot buffer can take one more. Evicting the order entry and its
// slot together keeps the two buffer families in lockstep, so every
// remaining order entry still resolves to a populated slot.
func (c *Controller) makeRoom(k kind) {
	n := c.maxLen()
	for c.order.Len() >= n || c.slotLen(k) >= n {
		t, ok := c.order.Pop()
		if !ok {
			// Order empty yet a slot buffer is full: drop from the
			// slot directly to restore the invariant.
			c.discard(k)
			continue
		}
		c.discard(*t)
	}
}

func (c *Controller) slotLen(k kind) int {
	switch k {
	case kindButtonDown:
		return c.downs.Len()
	case kindButtonUp:
		return c.ups.Len()
	case kindDoubleTap:
		return c.taps.Len()
	case kindTouch:
		return c.touches.Len()
	case kindMultiTouch:
		return c.multis.Len()
	default:
		return 0
	}
}

func (c *Controller) discard(k kind) {
	switch k {
	case kindButtonDown:
		c.downs.Pop()
	case kindButtonUp:
		c.ups.Pop()
	case kindDoubleTap:
		c.taps.Pop()
	case kindTouch:
		c.touches.Pop()
	case kindMultiTouch:
		c.multis.Pop()
	}
}

// Frame drains the queue: every buffered event dispatches to its
// callback and observers, in capture order across kinds. Frame always
// empties the queue before returning; anomalies are logged and
// skipped, never raised, so one frame's dispatch cannot destabilize
// the render loop.
func (c *Controller) Frame() {
	c.init()
	for {
		tag, ok := c.order.Pop()
		if !ok {
			return
		}
		switch *tag {
		case kindButtonDown:
			e, ok := c.downs.Pop()
			if !ok {
				c.skip(kindButtonDown)
				continue
			}
			c.dispatchButtonDown(*e)
		case kindButtonUp:
			e, ok := c.ups.Pop()
			if !ok {
				c.skip(kindButtonUp)
				continue
			}
			c.dispatchButtonUp(*e)
		case kindDoubleTap:
			s, ok := c.taps.Pop()
			if !ok {
				c.skip(kindDoubleTap)
				continue
			}
			c.dispatchDoubleTap(*s)
		case kindTouch:
			t, ok := c.touches.Pop()
			if !ok {
				c.skip(kindTouch)
				continue
			}
			c.dispatchTouch(*t)
		case kindMultiTouch:
			m, ok := c.multis.Pop()
			if !ok {
				c.skip(kindMultiTouch)
				continue
			}
			c.dispatchMultiTouch(*m)
		default:
			c.skip(*tag)
		}
	}
}

func (c *Controller) skip(k kind) {
	log.Printf("input: order entry resolved to empty %v buffer, skipped", k)
}

// LoseFocus resets contact tracking and the carried pinch state and
// notifies subscribers. It runs synchronously, never through the
// queue, so stale drag state cannot leak into the next session.
func (c *Controller) LoseFocus() {
	c.pointA = nil
	c.pointB = nil
	c.prevPinch2 = 0
	c.prevPan = nil
	if c.OnLostFocus != nil {
		c.OnLostFocus()
	}
	c.LostFocusObservable.Notify(LostFocusEvent{})
}

// Clear empties every buffer and resets tracking state, for detach.
// Backing storage is kept, so a controller reattached later captures
// without reallocating.
func (c *Controller) Clear() {
	c.order.Clear()
	c.downs.Clear()
	c.ups.Clear()
	c.taps.Clear()
	c.touches.Clear()
	c.multis.Clear()
	c.pointA = nil
	c.pointB = nil
	c.prevPinch2 = 0
	c.prevPan = nil
}

// Len reports the number of undrained events.
func (c *Controller) Len() int {
	return c.order.Len()
}

func (c *Controller) dispatchButtonDown(e pointer.Event) {
	if c.OnButtonDown != nil {
		c.OnButtonDown(e)
	}
	c.ButtonDownObservable.Notify(e)
}

func (c *Controller) dispatchButtonUp(e pointer.Event) {
	if c.OnButtonUp != nil {
		c.OnButtonUp(e)
	}
	c.ButtonUpObservable.Notify(e)
}

func (c *Controller) dispatchDoubleTap(s pointer.Source) {
	if c.OnDoubleTap != nil {
		c.OnDoubleTap(s)
	}
	c.DoubleTapObservable.Notify(s)
}

func (c *Controller) dispatchTouch(t TouchEvent) {
	if c.OnTouch != nil {
		c.OnTouch(t)
	}
	c.TouchObservable.Notify(t)
}

func (c *Controller) dispatchMultiTouch(m MultiTouchEvent) {
	if c.OnMultiTouch != nil {
		c.OnMultiTouch(m)
	}
	c.MultiTouchObservable.Notify(m)
}
