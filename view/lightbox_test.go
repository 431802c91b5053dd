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

// Tests that opening on an empty sequence or out of range is refused and the
// state stays Closed.
func TestLightboxState_Open_Refused(t *testing.T) {
	var l LightboxState

	require.False(t, l.Open(0, 0))
	require.False(t, l.IsOpen())

	require.False(t, l.Open(3, 3))
	require.False(t, l.Open(-1, 3))
	require.False(t, l.IsOpen())
}

// Tests the open → navigate → close lifecycle over three images: starting on
// the second, forward reaches the third, forward again wraps to the first.
func TestLightboxState_Lifecycle(t *testing.T) {
	var l LightboxState

	require.True(t, l.Open(1, 3))
	require.True(t, l.IsOpen())
	require.Equal(t, 1, l.Index())

	require.Equal(t, 2, l.Navigate(+1))
	require.Equal(t, 0, l.Navigate(+1))
	require.Equal(t, 2, l.Navigate(-1))

	l.Close()
	require.False(t, l.IsOpen())
}

// Tests that zoom toggles between exactly two scales and that toggling twice
// is an identity.
func TestLightboxState_ToggleZoom(t *testing.T) {
	var l LightboxState
	require.True(t, l.Open(0, 2))

	require.Equal(t, ZoomScaleNormal, l.Zoom())
	require.Equal(t, ZoomScaleZoomed, l.ToggleZoom())
	require.Equal(t, ZoomScaleNormal, l.ToggleZoom())
}

// Tests that navigation and reopening always reset zoom to normal.
func TestLightboxState_ZoomResets(t *testing.T) {
	var l LightboxState
	require.True(t, l.Open(0, 3))

	l.ToggleZoom()
	l.Navigate(+1)
	require.Equal(t, ZoomScaleNormal, l.Zoom())

	l.ToggleZoom()
	l.Close()
	require.True(t, l.Open(0, 3))
	require.Equal(t, ZoomScaleNormal, l.Zoom())
}

// Tests that navigation controls are hidden for fewer than two images.
func TestLightboxState_ShowNavControls(t *testing.T) {
	var l LightboxState

	require.True(t, l.Open(0, 1))
	require.False(t, l.ShowNavControls())

	require.True(t, l.Open(0, 2))
	require.True(t, l.ShowNavControls())
}

// Tests that a single-image lightbox navigates onto itself.
func TestLightboxState_SingleImage(t *testing.T) {
	var l LightboxState
	require.True(t, l.Open(0, 1))

	require.Equal(t, 0, l.Navigate(+1))
	require.Equal(t, 0, l.Navigate(-1))
}
