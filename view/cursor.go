////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package view

// Cursor is an index into a sequence of known length, navigated with
// wraparound. While a viewer is open, 0 <= Index() < Length() always holds;
// the wraparound computation is the only place the index transiently leaves
// that range.
type Cursor struct {
	index  int
	length int
}

// NewCursor returns a cursor positioned at index over a sequence of the
// given length. Callers must only construct cursors with
// 0 <= index < length.
func NewCursor(index, length int) Cursor {
	return Cursor{index: index, length: length}
}

// Index returns the cursor's current position.
func (c Cursor) Index() int {
	return c.index
}

// Length returns the sequence length the cursor was built for.
func (c Cursor) Length() int {
	return c.length
}

// Navigate moves the cursor by direction (-1 or +1) with wraparound: below
// zero wraps to the last index, at or past the end wraps to zero. Returns the
// new index.
func (c *Cursor) Navigate(direction int) int {
	c.index += direction

	if c.index < 0 {
		c.index = c.length - 1
	} else if c.index >= c.length {
		c.index = 0
	}

	return c.index
}

// AdjacentIndexes returns the in-range neighbours of the current position
// (index±1, clamped, no wraparound). Used for lightbox preloading.
func (c Cursor) AdjacentIndexes() []int {
	var adjacent []int
	for _, i := range []int{c.index - 1, c.index + 1} {
		if i >= 0 && i < c.length {
			adjacent = append(adjacent, i)
		}
	}
	return adjacent
}

// NextWrapped returns the index following the current position, wrapping at
// the end. Used for slideshow preloading.
func (c Cursor) NextWrapped() int {
	return (c.index + 1) % c.length
}
