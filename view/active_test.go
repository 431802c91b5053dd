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

// Tests activation, ownership checks, and the modal-open flag.
func TestUIState_ActivateDeactivate(t *testing.T) {
	u := NewUIState()
	require.Equal(t, ViewNone, u.Active())
	require.False(t, u.IsModalOpen())

	u.Activate(ViewLightbox)
	require.True(t, u.IsActive(ViewLightbox))
	require.True(t, u.IsModalOpen())

	u.Deactivate(ViewLightbox)
	require.Equal(t, ViewNone, u.Active())
}

// Tests that a view that already lost ownership cannot clear the new owner on
// its delayed close.
func TestUIState_Deactivate_OnlyOwner(t *testing.T) {
	u := NewUIState()

	u.Activate(ViewMusicMenu)
	u.Activate(ViewSlideshow)

	u.Deactivate(ViewMusicMenu)
	require.Equal(t, ViewSlideshow, u.Active())
	require.True(t, u.IsModalOpen())

	u.Deactivate(ViewSlideshow)
	require.False(t, u.IsModalOpen())
}

// Tests that the confirm modal and music menu do not count as modal viewers
// for the refresh freeze.
func TestUIState_IsModalOpen_NonViewers(t *testing.T) {
	u := NewUIState()

	u.Activate(ViewConfirm)
	require.False(t, u.IsModalOpen())

	u.Activate(ViewMusicMenu)
	require.False(t, u.IsModalOpen())
}
