////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Tests that starting with no images fails and the phase stays Stopped.
func TestSlideshowState_Start_Empty(t *testing.T) {
	var s SlideshowState

	require.ErrorIs(t, s.Start(0), ErrNoImages)
	require.Equal(t, SlideshowStopped, s.Phase())
}

// Tests that starting always resets the position to the first frame.
func TestSlideshowState_Start_ResetsIndex(t *testing.T) {
	var s SlideshowState

	require.NoError(t, s.Start(3))
	s.Advance(+1)
	s.Stop()

	require.NoError(t, s.Start(3))
	require.Equal(t, 0, s.Index())
	require.Equal(t, SlideshowPlaying, s.Phase())
}

// Tests Playing ⇄ Paused toggling, that the position survives a pause, and
// that toggling when Stopped is a no-op.
func TestSlideshowState_TogglePause(t *testing.T) {
	var s SlideshowState

	require.Equal(t, SlideshowStopped, s.TogglePause())

	require.NoError(t, s.Start(3))
	s.Advance(+1)

	require.Equal(t, SlideshowPaused, s.TogglePause())
	require.Equal(t, 1, s.Index())
	require.Equal(t, SlideshowPlaying, s.TogglePause())
	require.Equal(t, 1, s.Index())
}

// Tests wraparound in both directions and the single-frame self-loop.
func TestSlideshowState_Advance(t *testing.T) {
	var s SlideshowState
	require.NoError(t, s.Start(3))

	require.Equal(t, 2, s.Advance(-1))
	require.Equal(t, 0, s.Advance(+1))

	var single SlideshowState
	require.NoError(t, single.Start(1))
	require.Equal(t, 0, single.Advance(+1))
	require.Equal(t, 0, single.Advance(-1))
}

// Tests the 1-based progress indicator values.
func TestSlideshowState_Progress(t *testing.T) {
	var s SlideshowState
	require.NoError(t, s.Start(3))

	current, total := s.Progress()
	require.Equal(t, 1, current)
	require.Equal(t, 3, total)

	s.Advance(+1)
	current, _ = s.Progress()
	require.Equal(t, 2, current)
}

// Tests that the preload index is the frame after the current one, wrapped.
func TestSlideshowState_NextPreloadIndex(t *testing.T) {
	var s SlideshowState
	require.NoError(t, s.Start(3))

	require.Equal(t, 1, s.NextPreloadIndex())
	s.Advance(-1)
	require.Equal(t, 0, s.NextPreloadIndex())
}
