// SPDX-License-Identifier: Unlicense OR MIT

package event

import "golang.org/x/exp/slices"

// Observable is an ordered list of subscribers notified with every
// event published to it. The zero value is an empty Observable.
//
// Observables are not safe for concurrent use; like the rest of this
// module they assume a single-threaded event loop.
type Observable[T Event] struct {
	observers []*Observer[T]
}

// Observer is a single subscription to an Observable. It is created
// by Subscribe and identifies the subscription for Unsubscribe.
type Observer[T Event] struct {
	fn func(T)
}

// Subscribe appends fn to the notification list and returns its
// Observer handle.
func (o *Observable[T]) Subscribe(fn func(T)) *Observer[T] {
	obs := &Observer[T]{fn: fn}
	o.observers = append(o.observers, obs)
	return obs
}

// Unsubscribe removes obs from the notification list. It reports
// whether obs was subscribed.
func (o *Observable[T]) Unsubscribe(obs *Observer[T]) bool {
	i := slices.Index(o.observers, obs)
	if i == -1 {
		return false
	}
	o.observers = slices.Delete(o.observers, i, i+1)
	return true
}

// Notify calls every subscribed observer with v, in subscription
// order.
func (o *Observable[T]) Notify(v T) {
	for _, obs := range o.observers {
		obs.fn(v)
	}
}

// Len reports the number of subscribed observers.
func (o *Observable[T]) Len() int {
	return len(o.observers)
}
