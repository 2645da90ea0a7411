// SPDX-License-Identifier: Unlicense OR MIT

package ring

import "testing"

func TestPushPopOrder(t *testing.T) {
	var b Buffer[int]
	for i := 1; i <= 5; i++ {
		*b.Push() = i
	}
	if got, want := b.Len(), 5; got != want {
		t.Fatalf("got length %d, expected %d", got, want)
	}
	for i := 1; i <= 5; i++ {
		v, ok := b.Pop()
		if !ok {
			t.Fatalf("pop %d: buffer empty", i)
		}
		if *v != i {
			t.Errorf("pop %d: got %d", i, *v)
		}
	}
	if _, ok := b.Pop(); ok {
		t.Error("pop of empty buffer succeeded")
	}
}

func TestWrapReuse(t *testing.T) {
	var b Buffer[int]
	*b.Push() = 1
	*b.Push() = 2
	*b.Push() = 3
	if v, _ := b.Pop(); *v != 1 {
		t.Fatalf("got %d, expected 1", *v)
	}
	// Reuses the freed slot without growing.
	cap := b.Cap()
	*b.Push() = 4
	if b.Cap() != cap {
		t.Errorf("push into freed slot grew storage from %d to %d", cap, b.Cap())
	}
	for want := 2; want <= 4; want++ {
		v, ok := b.Pop()
		if !ok || *v != want {
			t.Fatalf("got %v %v, expected %d", v, ok, want)
		}
	}
}

func TestGrowthSplicesAtCursor(t *testing.T) {
	// Arrange a fully wrapped ring with the write cursor in the
	// middle of the backing array, then grow. The unconsumed entries
	// must keep their order.
	var b Buffer[int]
	*b.Push() = 1
	*b.Push() = 2
	*b.Push() = 3
	b.Pop()
	*b.Push() = 4 // wraps; backing is now [4 2 3]
	*b.Push() = 5 // full ring, splices mid-array
	for want := 2; want <= 5; want++ {
		v, ok := b.Pop()
		if !ok {
			t.Fatalf("pop %d: buffer empty", want)
		}
		if *v != want {
			t.Errorf("got %d, expected %d", *v, want)
		}
	}
}

func TestLast(t *testing.T) {
	var b Buffer[int]
	if _, ok := b.Last(); ok {
		t.Error("Last on empty buffer succeeded")
	}
	*b.Push() = 1
	*b.Push() = 2
	if v, _ := b.Last(); *v != 2 {
		t.Errorf("got %d, expected 2", *v)
	}
	b.Pop()
	b.Pop()
	*b.Push() = 3 // wrapped
	if v, _ := b.Last(); *v != 3 {
		t.Errorf("got %d, expected 3", *v)
	}
	// Last is a live handle into the slot.
	v, _ := b.Last()
	*v = 7
	if got, _ := b.Pop(); *got != 7 {
		t.Errorf("got %d, expected 7", *got)
	}
}

func TestMaxLenEvictsOldest(t *testing.T) {
	b := Buffer[int]{MaxLen: 5}
	for i := 1; i <= 8; i++ {
		*b.Push() = i
	}
	if got, want := b.Len(), 5; got != want {
		t.Fatalf("got length %d, expected %d", got, want)
	}
	for want := 4; want <= 8; want++ {
		v, ok := b.Pop()
		if !ok || *v != want {
			t.Fatalf("got %v %v, expected %d", v, ok, want)
		}
	}
}

func TestClearKeepsStorage(t *testing.T) {
	var b Buffer[int]
	for i := 0; i < 10; i++ {
		*b.Push() = i
	}
	cap := b.Cap()
	b.Clear()
	if b.Len() != 0 {
		t.Errorf("got length %d after Clear", b.Len())
	}
	if b.Cap() != cap {
		t.Errorf("Clear changed storage from %d to %d slots", cap, b.Cap())
	}
	if _, ok := b.Pop(); ok {
		t.Error("pop of cleared buffer succeeded")
	}
	*b.Push() = 42
	if v, _ := b.Pop(); *v != 42 {
		t.Error("buffer unusable after Clear")
	}
	if b.Cap() != cap {
		t.Errorf("push after Clear grew storage from %d to %d slots", cap, b.Cap())
	}
}

func TestPushZeroesReusedSlot(t *testing.T) {
	var b Buffer[[]int]
	*b.Push() = []int{1}
	b.Pop()
	if s := b.Push(); *s != nil {
		t.Errorf("reused slot not zeroed: %v", *s)
	}
}
