// SPDX-License-Identifier: Unlicense OR MIT

// Command replay feeds a scripted pointer trace through an input
// Controller and prints what each frame dispatches, demonstrating the
// capture/drain split and motion coalescing.
package main

import (
	"fmt"

	"orbitui.org/f32"
	"orbitui.org/io/input"
	"orbitui.org/io/pointer"
)

func main() {
	var c input.Controller
	c.OnButtonDown = func(e pointer.Event) {
		fmt.Printf("  button down: pointer %d at %v\n", e.PointerID, e.Position)
	}
	c.OnButtonUp = func(e pointer.Event) {
		fmt.Printf("  button up: pointer %d\n", e.PointerID)
	}
	c.OnDoubleTap = func(s pointer.Source) {
		fmt.Printf("  double tap: %v\n", s)
	}
	c.OnTouch = func(t input.TouchEvent) {
		fmt.Printf("  touch: offsets (%v,%v)\n", t.OffsetX, t.OffsetY)
	}
	c.OnMultiTouch = func(m input.MultiTouchEvent) {
		fmt.Printf("  multi touch: pinch² %v→%v, pan %v\n",
			m.PreviousPinchSquaredDistance, m.PinchSquaredDistance, m.PanPosition)
	}

	frames := [][]pointer.Event{
		{
			// A drag: the three moves coalesce into one touch.
			ev(pointer.Press, 1, 10, 10),
			ev(pointer.Move, 1, 12, 10),
			ev(pointer.Move, 1, 15, 10),
			ev(pointer.Move, 1, 19, 14),
		},
		{
			// A second finger lands and pinches.
			ev(pointer.Press, 2, 40, 10),
			ev(pointer.Move, 2, 35, 10),
			ev(pointer.Move, 2, 30, 10),
		},
		{
			ev(pointer.Release, 2, 30, 10),
			ev(pointer.Release, 1, 19, 14),
		},
	}

	for i, frame := range frames {
		for _, e := range frame {
			c.Queue(e)
		}
		fmt.Printf("frame %d:\n", i+1)
		c.Frame()
	}
}

func ev(k pointer.Kind, id pointer.ID, x, y float32) pointer.Event {
	return pointer.Event{
		Kind:      k,
		Source:    pointer.Touch,
		PointerID: id,
		Position:  f32.Pt(x, y),
	}
}
