////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package view

// Zoom scales for the lightbox image. Zoom is binary: double-click toggles
// between the two, with no intermediate levels and no persistence across
// images.
const (
	ZoomScaleNormal = 1.0
	ZoomScaleZoomed = 1.5
)

// LightboxState is the Closed → Open(index) → Closed state machine behind
// the lightbox controller.
type LightboxState struct {
	open   bool
	zoomed bool
	cursor Cursor
}

// Open moves the state machine to Open(index) over a sequence of the given
// length. It reports whether the transition happened: opening on an empty
// sequence or with an out-of-range index is a no-op that leaves the state
// Closed.
func (l *LightboxState) Open(index, length int) bool {
	if length == 0 || index < 0 || index >= length {
		return false
	}

	l.open = true
	l.zoomed = false
	l.cursor = NewCursor(index, length)
	return true
}

// Close returns the state machine to Closed. The cursor is discarded.
func (l *LightboxState) Close() {
	l.open = false
	l.zoomed = false
}

// IsOpen reports whether the lightbox is open.
func (l *LightboxState) IsOpen() bool {
	return l.open
}

// Index returns the cursor position. Only meaningful while open.
func (l *LightboxState) Index() int {
	return l.cursor.Index()
}

// Navigate moves the cursor by direction (-1 or +1) with wraparound and
// resets zoom, returning the new index.
func (l *LightboxState) Navigate(direction int) int {
	l.zoomed = false
	return l.cursor.Navigate(direction)
}

// AdjacentIndexes returns the in-range neighbour indexes to preload.
func (l *LightboxState) AdjacentIndexes() []int {
	return l.cursor.AdjacentIndexes()
}

// ShowNavControls reports whether previous/next controls should be visible.
// They are hidden entirely when fewer than two images exist.
func (l *LightboxState) ShowNavControls() bool {
	return l.cursor.Length() > 1
}

// ToggleZoom flips the binary zoom and returns the resulting scale.
func (l *LightboxState) ToggleZoom() float64 {
	l.zoomed = !l.zoomed
	return l.Zoom()
}

// Zoom returns the current zoom scale.
func (l *LightboxState) Zoom() float64 {
	if l.zoomed {
		return ZoomScaleZoomed
	}
	return ZoomScaleNormal
}
