////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package slideshow implements the auto-advancing modal viewer. The
// Stopped/Playing/Paused machine lives in [view.SlideshowState]; this
// controller owns the interval timer and the frame rendering.
package slideshow

import (
	"fmt"
	"syscall/js"
	"time"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/memoria/memoria-wasm/banner"
	"gitlab.com/memoria/memoria-wasm/format"
	"gitlab.com/memoria/memoria-wasm/utils"
	"gitlab.com/memoria/memoria-wasm/view"
)

// frameDuration is the auto-advance period. Manual navigation restarts the
// timer so the next advance is a full period away.
const frameDuration = 4000 * time.Millisecond

// fadeDuration is how long a frame stays hidden before the source swap.
const fadeDuration = 200 * time.Millisecond

// Element IDs the page provides.
const (
	slideshowID = "slideshow"
	imageID     = "slideshowImg"
	captionID   = "slideshowCaption"
	dateID      = "slideshowDate"
	progressID  = "slideshowProgress"
	pauseBtnID  = "pauseBtn"
)

// Controller drives the slideshow overlay.
type Controller struct {
	store *view.Store
	ui    *view.UIState
	state view.SlideshowState

	timer *utils.Interval
	fade  *utils.Timeout

	// hiddenSuspend is true while the timer is stopped because the tab is
	// hidden, as opposed to a user pause. Phase is untouched in that case.
	hiddenSuspend bool

	onLoaded js.Func
}

// New creates a slideshow controller over the shared store.
func New(store *view.Store, ui *view.UIState) *Controller {
	c := &Controller{
		store: store,
		ui:    ui,
	}
	c.onLoaded = js.FuncOf(func(js.Value, []js.Value) any {
		img := utils.GetElementByID(imageID)
		if !img.IsNull() {
			utils.SetStyle(img, "opacity", "1")
		}
		return nil
	})
	return c
}

// IsActive reports whether the slideshow is open (Playing or Paused).
func (c *Controller) IsActive() bool {
	return c.state.Phase() != view.SlideshowStopped
}

// Start opens the overlay at the first frame and begins auto-advancing.
// Starting with no images is a no-op apart from a user-visible error.
func (c *Controller) Start() {
	if err := c.state.Start(c.store.Len()); err != nil {
		banner.ShowError("No images to play yet")
		return
	}

	overlay := utils.GetElementByID(slideshowID)
	if overlay.IsNull() {
		c.state.Stop()
		return
	}

	utils.AddClass(overlay, "active")
	utils.LockBodyScroll()
	c.ui.Activate(view.ViewSlideshow)
	c.hiddenSuspend = false

	c.redraw()
	c.restartTimer()
	c.updatePauseButton()

	jww.DEBUG.Printf("Slideshow started with %d images", c.store.Len())
}

// Stop closes the overlay, clears the timer, and discards the position.
func (c *Controller) Stop() {
	c.stopTimer()
	c.fade.Stop()
	c.state.Stop()
	c.hiddenSuspend = false

	overlay := utils.GetElementByID(slideshowID)
	if !overlay.IsNull() {
		utils.RemoveClass(overlay, "active")
	}
	utils.UnlockBodyScroll()
	c.ui.Deactivate(view.ViewSlideshow)
}

// TogglePause flips Playing ⇄ Paused without losing the position. Only
// Playing runs the timer.
func (c *Controller) TogglePause() {
	switch c.state.TogglePause() {
	case view.SlideshowPlaying:
		c.restartTimer()
	case view.SlideshowPaused:
		c.stopTimer()
	}
	c.updatePauseButton()
}

// Next advances one frame and restarts the auto-advance period.
func (c *Controller) Next() {
	c.navigate(+1)
}

// Previous retreats one frame and restarts the auto-advance period.
func (c *Controller) Previous() {
	c.navigate(-1)
}

func (c *Controller) navigate(direction int) {
	if !c.IsActive() {
		return
	}

	c.state.Advance(direction)
	c.redraw()

	// A manual move must not be followed by an immediate auto-advance
	if c.state.Phase() == view.SlideshowPlaying && !c.hiddenSuspend {
		c.restartTimer()
	}
}

// HandleVisibilityChange suspends the timer while the tab is hidden and
// resumes it when visible again, without changing the Playing/Paused phase.
// A slideshow the user paused stays paused on return.
func (c *Controller) HandleVisibilityChange(hidden bool) {
	if !c.IsActive() {
		return
	}

	if hidden {
		c.hiddenSuspend = true
		c.stopTimer()
		return
	}

	c.hiddenSuspend = false
	if c.state.Phase() == view.SlideshowPlaying {
		c.restartTimer()
	}
}

// restartTimer (re)schedules the auto-advance tick.
func (c *Controller) restartTimer() {
	c.stopTimer()
	c.timer = utils.NewInterval(func() {
		c.state.Advance(+1)
		c.redraw()
	}, frameDuration)
}

func (c *Controller) stopTimer() {
	c.timer.Stop()
	c.timer = nil
}

// redraw cross-fades the current frame in, updates the caption, age, and
// progress indicator, and preloads the next frame's asset.
func (c *Controller) redraw() {
	record, ok := c.store.At(c.state.Index())
	if !ok {
		return
	}

	img := utils.GetElementByID(imageID)
	if !img.IsNull() {
		utils.SetStyle(img, "opacity", "0")
		img.Set("onload", c.onLoaded)

		c.fade.Stop()
		c.fade = utils.NewTimeout(func() {
			img.Set("src", record.URL)
			if record.Caption != "" {
				img.Set("alt", record.Caption)
			} else {
				img.Set("alt", "Memory")
			}
		}, fadeDuration)
	}

	if captionDiv := utils.GetElementByID(captionID); !captionDiv.IsNull() {
		caption := record.Caption
		if caption == "" {
			caption = "A beautiful moment"
		}
		utils.SetText(captionDiv, caption)
	}

	if dateDiv := utils.GetElementByID(dateID); !dateDiv.IsNull() {
		utils.SetText(dateDiv, format.ImageAge(record.UploadedAt, time.Now()))
	}

	if progressDiv := utils.GetElementByID(progressID); !progressDiv.IsNull() {
		current, total := c.state.Progress()
		utils.SetText(progressDiv, fmt.Sprintf("%d / %d", current, total))
	}

	if next, ok := c.store.At(c.state.NextPreloadIndex()); ok {
		utils.PreloadImage(next.URL)
	}
}

// updatePauseButton mirrors the phase on the pause/resume control.
func (c *Controller) updatePauseButton() {
	pauseBtn := utils.GetElementByID(pauseBtnID)
	if pauseBtn.IsNull() {
		return
	}

	if c.state.Phase() == view.SlideshowPaused {
		utils.SetText(pauseBtn, "▶️")
	} else {
		utils.SetText(pauseBtn, "⏸️")
	}
}
