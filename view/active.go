////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package view

import (
	"fmt"
)

// ActiveView identifies which overlay, if any, currently owns global input.
// At most one modal viewer is active at a time; the input router checks this
// before dispatching any key or gesture.
type ActiveView int

const (
	// ViewNone means no overlay is open; global shortcuts (music) apply.
	ViewNone ActiveView = iota

	// ViewLightbox is the single-image modal viewer.
	ViewLightbox

	// ViewSlideshow is the auto-advancing modal viewer.
	ViewSlideshow

	// ViewConfirm is the delete-confirmation modal.
	ViewConfirm

	// ViewMusicMenu is the music track/volume popup.
	ViewMusicMenu
)

// String returns a human-readable name for the view for logging.
func (v ActiveView) String() string {
	switch v {
	case ViewNone:
		return "none"
	case ViewLightbox:
		return "lightbox"
	case ViewSlideshow:
		return "slideshow"
	case ViewConfirm:
		return "confirm"
	case ViewMusicMenu:
		return "musicMenu"
	default:
		return fmt.Sprintf("unknown(%d)", int(v))
	}
}

// UIState tracks the active view explicitly instead of inferring it from DOM
// class state. Controllers call Activate when they open and Deactivate when
// they close.
type UIState struct {
	active ActiveView
}

// NewUIState returns a UIState with no active view.
func NewUIState() *UIState {
	return &UIState{active: ViewNone}
}

// Active returns the view that currently owns input.
func (u *UIState) Active() ActiveView {
	return u.active
}

// IsActive reports whether the given view currently owns input.
func (u *UIState) IsActive(v ActiveView) bool {
	return u.active == v
}

// IsModalOpen reports whether either modal image viewer is open. The
// gallery's periodic refresh is frozen while one is, so the viewer's cursor
// cannot drift against a resynced list.
func (u *UIState) IsModalOpen() bool {
	return u.active == ViewLightbox || u.active == ViewSlideshow
}

// Activate records the given view as the input owner.
func (u *UIState) Activate(v ActiveView) {
	u.active = v
}

// Deactivate clears the active view, but only if the given view is the one
// currently active. A controller closing after it already lost ownership
// must not clobber the new owner.
func (u *UIState) Deactivate(v ActiveView) {
	if u.active == v {
		u.active = ViewNone
	}
}
