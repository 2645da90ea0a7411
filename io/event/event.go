// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for events. Every payload published
// through an Observable implements it.
type Event interface {
	ImplementsEvent()
}
