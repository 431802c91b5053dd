////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package view

import (
	"github.com/pkg/errors"
)

// ErrNoImages is returned by SlideshowState.Start when there is nothing to
// play. The controller surfaces it as a user-visible message.
var ErrNoImages = errors.New("no images to play")

// SlideshowPhase is the slideshow's lifecycle phase.
type SlideshowPhase int

const (
	// SlideshowStopped means the slideshow overlay is closed. The index is
	// discarded in this phase.
	SlideshowStopped SlideshowPhase = iota

	// SlideshowPlaying means frames auto-advance on the timer.
	SlideshowPlaying

	// SlideshowPaused retains the position but runs no timer.
	SlideshowPaused
)

// String returns a human-readable phase name for logging.
func (p SlideshowPhase) String() string {
	switch p {
	case SlideshowStopped:
		return "stopped"
	case SlideshowPlaying:
		return "playing"
	case SlideshowPaused:
		return "paused"
	default:
		return "invalid"
	}
}

// SlideshowState is the Stopped → Playing(index) ⇄ Paused(index) → Stopped
// state machine behind the slideshow controller. The auto-advance timer
// itself lives in the controller; only Playing runs it.
type SlideshowState struct {
	phase  SlideshowPhase
	cursor Cursor
}

// Phase returns the current lifecycle phase.
func (s *SlideshowState) Phase() SlideshowPhase {
	return s.phase
}

// Start moves Stopped → Playing with the index reset to zero. Returns
// ErrNoImages, staying Stopped, when the sequence is empty.
func (s *SlideshowState) Start(length int) error {
	if length == 0 {
		return ErrNoImages
	}

	s.phase = SlideshowPlaying
	s.cursor = NewCursor(0, length)
	return nil
}

// Stop returns to Stopped from any phase and discards the position.
func (s *SlideshowState) Stop() {
	s.phase = SlideshowStopped
}

// TogglePause flips Playing ⇄ Paused without moving the cursor and returns
// the new phase. It is a no-op when Stopped.
func (s *SlideshowState) TogglePause() SlideshowPhase {
	switch s.phase {
	case SlideshowPlaying:
		s.phase = SlideshowPaused
	case SlideshowPaused:
		s.phase = SlideshowPlaying
	}
	return s.phase
}

// Advance moves the cursor by direction (-1 or +1) with wraparound and
// returns the new index. A single-frame slideshow loops on itself
// indefinitely.
func (s *SlideshowState) Advance(direction int) int {
	return s.cursor.Navigate(direction)
}

// Index returns the cursor position. Only meaningful while not Stopped.
func (s *SlideshowState) Index() int {
	return s.cursor.Index()
}

// NextPreloadIndex returns the index of the frame that follows the current
// one, wrapping at the end, so its asset can be preloaded.
func (s *SlideshowState) NextPreloadIndex() int {
	return s.cursor.NextWrapped()
}

// Progress returns the 1-based position and the total frame count for the
// "current / total" indicator.
func (s *SlideshowState) Progress() (current, total int) {
	return s.cursor.Index() + 1, s.cursor.Length()
}
