////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package input owns every document-level listener and routes events to the
// controllers strictly by which view is active. Controllers never install
// their own document listeners, so a key can only ever reach one of them.
package input

import (
	"strconv"
	"syscall/js"

	"gitlab.com/memoria/memoria-wasm/gallery"
	"gitlab.com/memoria/memoria-wasm/lightbox"
	"gitlab.com/memoria/memoria-wasm/music"
	"gitlab.com/memoria/memoria-wasm/slideshow"
	"gitlab.com/memoria/memoria-wasm/utils"
	"gitlab.com/memoria/memoria-wasm/view"
)

// swipeThreshold is the minimum horizontal travel, in pixels, for a touch to
// count as a swipe.
const swipeThreshold = 50

// Router dispatches document-level events. Any controller may be nil when its
// page elements are absent; the corresponding routes then do nothing.
type Router struct {
	ui        *view.UIState
	gallery   *gallery.Controller
	lightbox  *lightbox.Controller
	slideshow *slideshow.Controller
	music     *music.Controller

	touchStartX float64
	touchValid  bool
}

// NewRouter creates an event router over the given controllers.
func NewRouter(ui *view.UIState, g *gallery.Controller, l *lightbox.Controller,
	s *slideshow.Controller, m *music.Controller) *Router {
	return &Router{
		ui:        ui,
		gallery:   g,
		lightbox:  l,
		slideshow: s,
		music:     m,
	}
}

// Install registers all document listeners. Call once per page load.
func (r *Router) Install() {
	utils.AddEventListener(utils.Document, "keydown", r.handleKeydown)
	utils.AddEventListener(utils.Document, "touchstart", r.handleTouchStart)
	utils.AddEventListener(utils.Document, "touchend", r.handleTouchEnd)
	utils.AddEventListener(utils.Document, "dblclick", r.handleDoubleClick)
	utils.AddEventListener(utils.Document, "click", r.handleClick)
	utils.AddEventListener(utils.Document, "visibilitychange",
		r.handleVisibilityChange)
}

// handleKeydown routes keys to whichever view is active. With no modal open,
// keys control the music player unless focus is in a text input.
func (r *Router) handleKeydown(event js.Value) {
	key := event.Get("key").String()

	switch r.ui.Active() {
	case view.ViewLightbox:
		r.lightboxKey(event, key)
	case view.ViewSlideshow:
		r.slideshowKey(event, key)
	case view.ViewConfirm:
		if key == "Escape" && r.gallery != nil {
			r.gallery.CloseModal()
		}
	case view.ViewMusicMenu:
		if key == "Escape" && r.music != nil {
			r.music.CloseMenu()
		}
	default:
		r.musicKey(event, key)
	}
}

func (r *Router) lightboxKey(event js.Value, key string) {
	if r.lightbox == nil {
		return
	}

	switch key {
	case "ArrowLeft":
		r.lightbox.Navigate(-1)
	case "ArrowRight":
		r.lightbox.Navigate(+1)
	case "Escape":
		r.lightbox.Close()
	case "d", "D":
		// Downloading blocks on the network and must leave the event handler.
		go func() { _ = r.lightbox.DownloadCurrent() }()
	case "Delete":
		r.lightbox.DeleteCurrent()
	}
}

func (r *Router) slideshowKey(event js.Value, key string) {
	if r.slideshow == nil {
		return
	}

	switch key {
	case "ArrowLeft":
		r.slideshow.Previous()
	case "ArrowRight":
		r.slideshow.Next()
	case " ":
		event.Call("preventDefault")
		r.slideshow.TogglePause()
	case "Escape":
		r.slideshow.Stop()
	}
}

func (r *Router) musicKey(event js.Value, key string) {
	if r.music == nil || focusInTextInput() {
		return
	}

	switch key {
	case " ":
		event.Call("preventDefault")
		r.music.Toggle()
	case "m", "M":
		r.music.ToggleMenu()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		track, _ := strconv.Atoi(key)
		r.music.ChangeTrack(track)
	}
}

// focusInTextInput reports whether the keyboard focus is in a text field, in
// which case plain keys must not be treated as shortcuts.
func focusInTextInput() bool {
	active := utils.Document.Get("activeElement")
	if active.IsNull() || active.IsUndefined() {
		return false
	}

	switch active.Get("tagName").String() {
	case "INPUT", "TEXTAREA":
		return true
	}
	return active.Get("isContentEditable").Bool()
}

func (r *Router) handleTouchStart(event js.Value) {
	touches := event.Get("touches")
	if touches.Length() != 1 {
		r.touchValid = false
		return
	}
	r.touchStartX = touches.Index(0).Get("clientX").Float()
	r.touchValid = true
}

// handleTouchEnd turns a horizontal swipe into navigation for whichever
// viewer is open. Swiping left advances, matching the image sliding away.
func (r *Router) handleTouchEnd(event js.Value) {
	if !r.touchValid {
		return
	}
	r.touchValid = false

	touches := event.Get("changedTouches")
	if touches.Length() == 0 {
		return
	}

	delta := touches.Index(0).Get("clientX").Float() - r.touchStartX
	if delta > -swipeThreshold && delta < swipeThreshold {
		return
	}

	direction := +1
	if delta > 0 {
		direction = -1
	}

	switch r.ui.Active() {
	case view.ViewLightbox:
		if r.lightbox != nil {
			r.lightbox.Navigate(direction)
		}
	case view.ViewSlideshow:
		if r.slideshow != nil {
			if direction > 0 {
				r.slideshow.Next()
			} else {
				r.slideshow.Previous()
			}
		}
	}
}

func (r *Router) handleDoubleClick(js.Value) {
	if r.ui.Active() == view.ViewLightbox && r.lightbox != nil {
		r.lightbox.ToggleZoom()
	}
}

// handleClick closes the active surface when the click lands on the overlay
// backdrop (for modals) or outside the player widget (for the music menu).
func (r *Router) handleClick(event js.Value) {
	target := event.Get("target")
	if target.IsNull() || target.IsUndefined() {
		return
	}

	switch r.ui.Active() {
	case view.ViewLightbox:
		if targetHasID(target, "lightbox") && r.lightbox != nil {
			r.lightbox.Close()
		}
	case view.ViewConfirm:
		if targetHasID(target, "confirmModal") && r.gallery != nil {
			r.gallery.CloseModal()
		}
	case view.ViewMusicMenu:
		if r.music != nil && r.music.MenuOpen() &&
			target.Call("closest", "#musicPlayer").IsNull() {
			r.music.CloseMenu()
		}
	}
}

func targetHasID(target js.Value, id string) bool {
	return target.Get("id").String() == id
}

func (r *Router) handleVisibilityChange(js.Value) {
	if r.slideshow != nil {
		hidden := utils.Document.Get("hidden").Bool()
		r.slideshow.HandleVisibilityChange(hidden)
	}
}
