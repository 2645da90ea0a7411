// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"strconv"

	"orbitui.org/f32"
	"orbitui.org/io/pointer"
)

// Contact is one actively-pressed pointer, tracked as the primary or
// secondary contact. At most two contacts are tracked at a time; the
// button events of further simultaneous contacts still dispatch, but
// their positions are ignored.
//
// Touch and MultiTouch events reference the live tracking record:
// Position is the last position seen at capture time, not the
// position at the moment the referencing event was captured.
type Contact struct {
	ID       pointer.ID
	Source   pointer.Source
	Position f32.Point
}

// TouchEvent is a single-contact drag step. Consecutive samples
// captured within one undrained frame coalesce; the offsets are then
// the summed deltas of the merged samples.
//
// Contact is nil under pointer lock, where the offsets carry the raw
// relative motion instead of position deltas.
type TouchEvent struct {
	Contact *Contact
	OffsetX float32
	OffsetY float32
}

// MultiTouchEvent is a two-contact pinch/pan step.
//
// When consecutive samples coalesce, PinchSquaredDistance accumulates
// across the merged samples, PanPosition and the contacts reflect the
// latest sample, and the Previous values stay those captured at the
// first sample of the run.
type MultiTouchEvent struct {
	PointA *Contact
	PointB *Contact
	// PreviousPinchSquaredDistance is the squared contact distance at
	// the previous sample, or zero at the first sample of a pinch.
	PreviousPinchSquaredDistance float32
	// PinchSquaredDistance is the squared distance between the two
	// contacts.
	PinchSquaredDistance float32
	// PreviousPanPosition is the pan position at the previous sample,
	// or nil at the first sample of a pinch.
	PreviousPanPosition *f32.Point
	// PanPosition is the midpoint of the two contacts.
	PanPosition f32.Point
}

// LostFocusEvent reports that the host window lost focus. It carries
// no data: focus loss is a reset, delivered synchronously and never
// through the queue.
type LostFocusEvent struct{}

// kind tags the per-kind buffer an order entry belongs to.
type kind uint8

const (
	kindButtonDown kind = iota
	kindButtonUp
	kindDoubleTap
	kindTouch
	kindMultiTouch
)

func (k kind) String() string {
	switch k {
	case kindButtonDown:
		return "ButtonDown"
	case kindButtonUp:
		return "ButtonUp"
	case kindDoubleTap:
		return "DoubleTap"
	case kindTouch:
		return "Touch"
	case kindMultiTouch:
		return "MultiTouch"
	default:
		// The drain loop formats unknown tags while skipping them;
		// rendering them must not panic.
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (TouchEvent) ImplementsEvent()      {}
func (MultiTouchEvent) ImplementsEvent() {}
func (LostFocusEvent) ImplementsEvent()  {}
