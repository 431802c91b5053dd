////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package view

import (
	"math/rand"
	"reflect"
	"testing"
)

// Tests that the index stays within [0, length) for any sequence of moves.
func TestCursor_Navigate_StaysInRange(t *testing.T) {
	prng := rand.New(rand.NewSource(42))

	for _, length := range []int{1, 2, 3, 7} {
		c := NewCursor(0, length)
		for i := 0; i < 200; i++ {
			direction := 1
			if prng.Intn(2) == 0 {
				direction = -1
			}

			index := c.Navigate(direction)
			if index < 0 || index >= length {
				t.Fatalf("Index %d out of range [0, %d) after %d moves",
					index, length, i+1)
			}
		}
	}
}

// Tests wraparound at both ends.
func TestCursor_Navigate_Wraparound(t *testing.T) {
	c := NewCursor(0, 3)
	if index := c.Navigate(-1); index != 2 {
		t.Errorf("Backward from 0 should wrap to 2, got %d", index)
	}
	if index := c.Navigate(+1); index != 0 {
		t.Errorf("Forward from 2 should wrap to 0, got %d", index)
	}
}

// Tests that next followed by previous returns to the starting index, from
// every position.
func TestCursor_Navigate_Inverse(t *testing.T) {
	const length = 5
	for start := 0; start < length; start++ {
		c := NewCursor(start, length)
		c.Navigate(+1)
		if index := c.Navigate(-1); index != start {
			t.Errorf("Next then previous from %d ended at %d", start, index)
		}
	}
}

// Tests that a single-item cursor loops on itself in both directions.
func TestCursor_Navigate_SingleItem(t *testing.T) {
	c := NewCursor(0, 1)
	if index := c.Navigate(+1); index != 0 {
		t.Errorf("Forward on single item gave %d", index)
	}
	if index := c.Navigate(-1); index != 0 {
		t.Errorf("Backward on single item gave %d", index)
	}
}

// Tests that neighbours are clamped at the ends without wrapping.
func TestCursor_AdjacentIndexes(t *testing.T) {
	tests := []struct {
		index, length int
		expected      []int
	}{
		{0, 3, []int{1}},
		{1, 3, []int{0, 2}},
		{2, 3, []int{1}},
		{0, 1, nil},
	}

	for _, tt := range tests {
		c := NewCursor(tt.index, tt.length)
		if adjacent := c.AdjacentIndexes(); !reflect.DeepEqual(
			adjacent, tt.expected) {
			t.Errorf("Adjacent of %d/%d.\nexpected: %v\nreceived: %v",
				tt.index, tt.length, tt.expected, adjacent)
		}
	}
}

// Tests that the preload index wraps at the end.
func TestCursor_NextWrapped(t *testing.T) {
	c := NewCursor(2, 3)
	if next := c.NextWrapped(); next != 0 {
		t.Errorf("NextWrapped at the end should be 0, got %d", next)
	}

	c = NewCursor(0, 1)
	if next := c.NextWrapped(); next != 0 {
		t.Errorf("NextWrapped on single item should be 0, got %d", next)
	}
}
