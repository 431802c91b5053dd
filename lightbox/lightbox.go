////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package lightbox implements the modal single-image viewer. Navigation is
// pure cursor arithmetic in [view.LightboxState]; this controller only maps
// state to the DOM.
package lightbox

import (
	"fmt"
	"syscall/js"
	"time"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/memoria/memoria-wasm/api"
	"gitlab.com/memoria/memoria-wasm/banner"
	"gitlab.com/memoria/memoria-wasm/format"
	"gitlab.com/memoria/memoria-wasm/utils"
	"gitlab.com/memoria/memoria-wasm/view"
)

// fadeDuration is how long the image stays hidden before the source swap
// during a cross-fade.
const fadeDuration = 150 * time.Millisecond

// Element IDs and selectors the page provides.
const (
	lightboxID = "lightbox"
	imageID    = "lightboxImg"
	captionID  = "lightboxCaption"
	dateID     = "lightboxDate"
	prevBtnSel = ".lightbox-prev"
	nextBtnSel = ".lightbox-next"
)

// Controller drives the lightbox overlay.
type Controller struct {
	client *api.Client
	store  *view.Store
	ui     *view.UIState
	state  view.LightboxState

	fade     *utils.Timeout
	onLoaded js.Func

	// RequestDelete hands the confirmation-gated delete flow back to the
	// gallery controller; the lightbox never mutates the store itself.
	RequestDelete func(imageID string)
}

// New creates a lightbox controller over the shared store.
func New(client *api.Client, store *view.Store, ui *view.UIState) *Controller {
	c := &Controller{
		client: client,
		store:  store,
		ui:     ui,
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

// IsOpen reports whether the lightbox is the active modal.
func (c *Controller) IsOpen() bool {
	return c.state.IsOpen()
}

// Open shows the image at the given store index. Opening on an empty store
// is a no-op apart from a user-visible message.
func (c *Controller) Open(index int) {
	if !c.state.Open(index, c.store.Len()) {
		jww.DEBUG.Printf("Lightbox open(%d) refused: %d images",
			index, c.store.Len())
		banner.ShowError("No images to view yet")
		return
	}

	overlay := utils.GetElementByID(lightboxID)
	if overlay.IsNull() {
		c.state.Close()
		return
	}

	utils.AddClass(overlay, "active")
	utils.LockBodyScroll()
	c.ui.Activate(view.ViewLightbox)

	c.redraw()
	c.preloadAdjacent()
}

// Close dismisses the lightbox and re-enables page scrolling.
func (c *Controller) Close() {
	c.state.Close()
	c.fade.Stop()

	overlay := utils.GetElementByID(lightboxID)
	if !overlay.IsNull() {
		utils.RemoveClass(overlay, "active")
	}
	utils.UnlockBodyScroll()
	c.ui.Deactivate(view.ViewLightbox)
}

// Navigate advances the viewer by direction (-1 or +1) with wraparound.
func (c *Controller) Navigate(direction int) {
	if !c.state.IsOpen() {
		return
	}
	c.state.Navigate(direction)
	c.redraw()
}

// ToggleZoom flips the binary zoom on the displayed image.
func (c *Controller) ToggleZoom() {
	if !c.state.IsOpen() {
		return
	}

	img := utils.GetElementByID(imageID)
	if img.IsNull() {
		return
	}

	scale := c.state.ToggleZoom()
	utils.SetStyle(img, "transform", fmt.Sprintf("scale(%g)", scale))
	if scale > view.ZoomScaleNormal {
		utils.SetStyle(img, "cursor", "zoom-out")
	} else {
		utils.SetStyle(img, "cursor", "zoom-in")
	}
}

// DownloadCurrent downloads the displayed image. It blocks until the
// download finishes and must not be called from a Javascript event handler
// directly. Downloading with no image displayed is a no-op.
func (c *Controller) DownloadCurrent() error {
	record, ok := c.current()
	if !ok {
		return nil
	}

	filename := record.Filename
	if filename == "" {
		filename = fmt.Sprintf("memory-%d.jpg", time.Now().UnixMilli())
	}

	if err := c.client.DownloadImage(record.URL, filename); err != nil {
		jww.ERROR.Printf("Download failed: %+v", err)
		banner.ShowError("Could not download the image")
		return err
	}
	banner.Show("Image saved to your device")
	return nil
}

// DeleteCurrent closes the viewer, then hands the displayed image to the
// shared confirmation-gated delete flow. The viewer is never left open
// against a stale index.
func (c *Controller) DeleteCurrent() {
	record, ok := c.current()
	if !ok {
		return
	}

	c.Close()
	if c.RequestDelete != nil {
		c.RequestDelete(record.ID)
	}
}

// current returns the displayed record.
func (c *Controller) current() (api.ImageRecord, bool) {
	if !c.state.IsOpen() {
		return api.ImageRecord{}, false
	}
	return c.store.At(c.state.Index())
}

// redraw cross-fades the image to the cursor's record: hide, swap source,
// reveal on load completion. Caption and age text update synchronously.
func (c *Controller) redraw() {
	record, ok := c.current()
	if !ok {
		return
	}

	img := utils.GetElementByID(imageID)
	if !img.IsNull() {
		utils.SetStyle(img, "opacity", "0")
		utils.SetStyle(img, "transform", "scale(1)")
		utils.SetStyle(img, "cursor", "zoom-in")
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

	c.updateNavControls()
}

// updateNavControls hides the previous/next buttons entirely when fewer than
// two images exist.
func (c *Controller) updateNavControls() {
	prevBtn := utils.QuerySelector(prevBtnSel)
	nextBtn := utils.QuerySelector(nextBtnSel)
	if prevBtn.IsNull() || nextBtn.IsNull() {
		return
	}

	display := "flex"
	if !c.state.ShowNavControls() {
		display = "none"
	}
	utils.SetStyle(prevBtn, "display", display)
	utils.SetStyle(nextBtn, "display", display)
}

// preloadAdjacent warms the cache for the immediate neighbours (clamped, no
// wraparound).
func (c *Controller) preloadAdjacent() {
	for _, i := range c.state.AdjacentIndexes() {
		if record, ok := c.store.At(i); ok {
			utils.PreloadImage(record.URL)
		}
	}
}
