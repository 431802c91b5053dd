////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package upload implements the photo upload page: file selection with local
// validation, a FileReader preview, drag-and-drop, clipboard paste, and the
// multipart submit.
package upload

import (
	"fmt"
	"path"
	"strings"
	"syscall/js"
	"time"

	"github.com/google/uuid"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/memoria/memoria-wasm/api"
	"gitlab.com/memoria/memoria-wasm/banner"
	"gitlab.com/memoria/memoria-wasm/utils"
)

// maxFileSize is the upload size limit, checked locally before any request.
const maxFileSize = 16 << 20

// maxCaptionLength is the caption limit mirrored by the live counter.
const maxCaptionLength = 100

// redirectDelay is how long the success overlay stays before the gallery
// redirect.
const redirectDelay = 1500 * time.Millisecond

// galleryPage is the navigation target after a successful upload.
const galleryPage = "gallery.html"

// allowedExtensions are the accepted photo file types.
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".heic": true,
}

// pasteExtensions maps clipboard MIME types to a filename extension for
// pasted images, which arrive without a usable name.
var pasteExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

// Element IDs the upload page provides.
const (
	fileInputID      = "fileInput"
	fileNameID       = "fileName"
	formID           = "uploadForm"
	captionInputID   = "captionInput"
	charCountID      = "charCount"
	previewImageID   = "previewImage"
	removePreviewID  = "removePreview"
	uploadBtnID      = "uploadBtn"
	uploadAreaID     = "uploadArea"
	successOverlayID = "successOverlay"
)

// Controller drives the upload page.
type Controller struct {
	client *api.Client

	// selected is the validated File waiting to be submitted; js.Null when
	// nothing is chosen.
	selected js.Value

	onPreviewLoaded js.Func
	redirect        *utils.Timeout
}

// New creates an upload controller.
func New(client *api.Client) *Controller {
	c := &Controller{
		client:   client,
		selected: js.Null(),
	}
	c.onPreviewLoaded = js.FuncOf(func(this js.Value, args []js.Value) any {
		preview := utils.GetElementByID(previewImageID)
		if !preview.IsNull() {
			preview.Set("src", this.Get("result"))
			utils.SetStyle(preview, "display", "block")
		}
		return nil
	})
	return c
}

// Init wires the page's inputs. It must only be called on a page that has the
// upload form.
func (c *Controller) Init() {
	if input := utils.GetElementByID(fileInputID); !input.IsNull() {
		utils.AddEventListener(input, "change", func(js.Value) {
			files := input.Get("files")
			if files.Length() > 0 {
				c.handleFile(files.Index(0))
			}
		})
	}

	if caption := utils.GetElementByID(captionInputID); !caption.IsNull() {
		utils.AddEventListener(caption, "input", func(js.Value) {
			c.updateCaptionCount(caption)
		})
	}

	if form := utils.GetElementByID(formID); !form.IsNull() {
		utils.AddEventListener(form, "submit", func(event js.Value) {
			event.Call("preventDefault")
			c.Submit()
		})
	}

	if remove := utils.GetElementByID(removePreviewID); !remove.IsNull() {
		utils.AddEventListener(remove, "click", func(event js.Value) {
			event.Call("preventDefault")
			c.clearSelection()
		})
	}

	c.bindDragAndDrop()
	c.bindPaste()
}

// bindDragAndDrop accepts files dropped anywhere on the upload area.
func (c *Controller) bindDragAndDrop() {
	area := utils.GetElementByID(uploadAreaID)
	if area.IsNull() {
		area = utils.GetElementByID(formID)
	}
	if area.IsNull() {
		return
	}

	utils.AddEventListener(area, "dragover", func(event js.Value) {
		event.Call("preventDefault")
		utils.AddClass(area, "dragover")
	})
	utils.AddEventListener(area, "dragleave", func(js.Value) {
		utils.RemoveClass(area, "dragover")
	})
	utils.AddEventListener(area, "drop", func(event js.Value) {
		event.Call("preventDefault")
		utils.RemoveClass(area, "dragover")

		files := event.Get("dataTransfer").Get("files")
		if files.Length() > 0 {
			c.handleFile(files.Index(0))
		}
	})
}

// bindPaste accepts an image pasted from the clipboard. Pasted files carry no
// meaningful name, so one is generated.
func (c *Controller) bindPaste() {
	utils.AddEventListener(utils.Document, "paste", func(event js.Value) {
		items := event.Get("clipboardData").Get("items")
		for i := 0; i < items.Length(); i++ {
			item := items.Index(i)
			ext, ok := pasteExtensions[item.Get("type").String()]
			if item.Get("kind").String() != "file" || !ok {
				continue
			}

			blob := item.Call("getAsFile")
			name := "pasted-" + uuid.New().String() + ext
			file := js.Global().Get("File").New(
				[]any{blob}, name,
				map[string]any{"type": item.Get("type").String()})

			jww.DEBUG.Printf("Accepted pasted image as %q", name)
			c.handleFile(file)
			return
		}
	})
}

// handleFile validates the file and, when accepted, shows its name and
// preview. A rejected file clears any previous selection.
func (c *Controller) handleFile(file js.Value) {
	name := file.Get("name").String()

	ext := strings.ToLower(path.Ext(name))
	if !allowedExtensions[ext] {
		banner.ShowError(
			"Only JPEG, PNG, GIF, WebP, and HEIC photos are supported")
		c.clearSelection()
		return
	}

	if file.Get("size").Int() > maxFileSize {
		banner.ShowError("Photos must be 16 MB or smaller")
		c.clearSelection()
		return
	}

	c.selected = file

	if label := utils.GetElementByID(fileNameID); !label.IsNull() {
		utils.SetText(label, name)
	}

	reader := js.Global().Get("FileReader").New()
	reader.Set("onload", c.onPreviewLoaded)
	reader.Call("readAsDataURL", file)
}

// clearSelection forgets the chosen file and hides the preview.
func (c *Controller) clearSelection() {
	c.selected = js.Null()

	if input := utils.GetElementByID(fileInputID); !input.IsNull() {
		input.Set("value", "")
	}
	if label := utils.GetElementByID(fileNameID); !label.IsNull() {
		utils.SetText(label, "No file chosen")
	}
	if preview := utils.GetElementByID(previewImageID); !preview.IsNull() {
		preview.Set("src", "")
		utils.SetStyle(preview, "display", "none")
	}
}

// updateCaptionCount keeps the caption counter in sync and hard-limits the
// input length.
func (c *Controller) updateCaptionCount(caption js.Value) {
	value := []rune(caption.Get("value").String())
	if len(value) > maxCaptionLength {
		value = value[:maxCaptionLength]
		caption.Set("value", string(value))
	}

	if counter := utils.GetElementByID(charCountID); !counter.IsNull() {
		utils.SetText(counter,
			fmt.Sprintf("%d/%d", len(value), maxCaptionLength))
	}
}

// Submit uploads the selected file with its caption. The submit button is
// disabled for the duration; success shows the overlay and then navigates to
// the gallery.
func (c *Controller) Submit() {
	if c.selected.IsNull() {
		banner.ShowError("Please choose a photo first")
		return
	}

	var caption string
	if input := utils.GetElementByID(captionInputID); !input.IsNull() {
		caption = strings.TrimSpace(input.Get("value").String())
	}

	btn := utils.GetElementByID(uploadBtnID)
	if !btn.IsNull() {
		btn.Set("disabled", true)
		utils.AddClass(btn, "loading")
	}

	go func() {
		message, err := c.client.Upload(c.selected, caption)

		if !btn.IsNull() {
			btn.Set("disabled", false)
			utils.RemoveClass(btn, "loading")
		}

		if err != nil {
			jww.ERROR.Printf("Upload failed: %+v", err)
			banner.ShowError(err.Error())
			return
		}

		jww.INFO.Printf("Uploaded %q", c.selected.Get("name").String())
		banner.Show(message)
		c.showSuccessAndRedirect()
	}()
}

// showSuccessAndRedirect reveals the success overlay (when the page has one)
// and navigates to the gallery after a short beat.
func (c *Controller) showSuccessAndRedirect() {
	if overlay := utils.GetElementByID(successOverlayID); !overlay.IsNull() {
		utils.AddClass(overlay, "active")
	}

	c.redirect.Stop()
	c.redirect = utils.NewTimeout(func() {
		js.Global().Get("location").Call("assign", galleryPage)
	}, redirectDelay)
}
