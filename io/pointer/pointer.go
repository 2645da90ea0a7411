// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer describes the raw pointer-device events consumed by
// the input queue: mouse, pen and touch notifications keyed by device
// id, button state and screen coordinates.
package pointer

import (
	"strings"

	"orbitui.org/f32"
	"orbitui.org/io/key"
)

// Event is a raw pointer event as delivered by the host input source.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID is the id for the pointer and can be used to track a
	// particular contact from Press to Release.
	PointerID ID
	// Button is the button that changed state for Press and Release
	// events.
	Button Buttons
	// Buttons is the raw mask of all buttons held for this event.
	Buttons Buttons
	// Position is the event position in window coordinates.
	Position f32.Point
	// Movement is the relative motion reported by the device. It is
	// the only position information available under pointer lock.
	Movement f32.Point
	// Modifiers is the set of modifier keys held when the event
	// occurred.
	Modifiers key.Modifiers
}

// ID identifies a pointer device contact.
type ID uint16

// Kind of an Event.
type Kind uint8

// Source of an Event.
type Source uint8

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	// Press of a pointer or touch contact.
	Press Kind = 1 << iota
	// Release of a pointer or touch contact.
	Release
	// Move of a pointer.
	Move
	// DoubleTap reported by the host for a quick double press.
	DoubleTap
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Pen generated event.
	Pen
	// Touch generated event.
	Touch
)

const (
	// ButtonPrimary is the primary button, usually the left button for
	// a right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right
	// button for a right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle
	// button.
	ButtonTertiary
)

func (k Kind) String() string {
	var buf strings.Builder
	for kk := Kind(1); kk > 0; kk <<= 1 {
		if k&kk > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((k & kk).string())
		}
	}
	return buf.String()
}

func (k Kind) string() string {
	switch k {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case DoubleTap:
		return "DoubleTap"
	default:
		panic("unknown Kind")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "mouse"
	case Pen:
		return "pen"
	case Touch:
		return "touch"
	default:
		panic("unknown Source")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

func (Event) ImplementsEvent() {}

func (Source) ImplementsEvent() {}
