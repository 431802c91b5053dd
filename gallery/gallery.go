////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package gallery renders the image grid and owns the shared image store:
// it is the only writer of the store's snapshot, via the periodic refresh
// and the delete flow. The modal viewers read the same store through their
// own cursors.
package gallery

import (
	"fmt"
	"strings"
	"time"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/memoria/memoria-wasm/api"
	"gitlab.com/memoria/memoria-wasm/banner"
	"gitlab.com/memoria/memoria-wasm/cache"
	"gitlab.com/memoria/memoria-wasm/format"
	"gitlab.com/memoria/memoria-wasm/utils"
	"gitlab.com/memoria/memoria-wasm/view"
)

// refreshPeriod is how often the grid re-fetches the image list to pick up
// external changes.
const refreshPeriod = 30 * time.Second

// Element IDs the gallery page provides.
const (
	galleryID      = "gallery"
	imageCountID   = "imageCount"
	confirmModalID = "confirmModal"
)

// Controller drives the gallery page.
type Controller struct {
	client   *api.Client
	store    *view.Store
	ui       *view.UIState
	snapshot *cache.Snapshot

	refresh *utils.Interval

	// pendingDeleteID is the image the open confirmation modal refers to.
	pendingDeleteID string
}

// New creates a gallery controller. snapshot may be nil when IndexedDB is
// unavailable; the gallery then simply waits for the network.
func New(client *api.Client, store *view.Store, ui *view.UIState,
	snapshot *cache.Snapshot) *Controller {
	return &Controller{
		client:   client,
		store:    store,
		ui:       ui,
		snapshot: snapshot,
	}
}

// Init paints the cached snapshot (if any), kicks off the first fetch, and
// starts the periodic refresh. It must only be called on a page that has the
// gallery element.
func (c *Controller) Init() {
	go func() {
		c.renderCachedSnapshot()
		c.Load(false)
	}()

	c.refresh = utils.NewInterval(func() {
		// Freeze the store while a modal viewer is open so its cursor
		// cannot drift against a resynced list.
		if c.ui.IsModalOpen() {
			jww.TRACE.Printf("Skipping periodic refresh: %s is open",
				c.ui.Active())
			return
		}
		go c.Load(false)
	}, refreshPeriod)
}

// Stop halts the periodic refresh.
func (c *Controller) Stop() {
	c.refresh.Stop()
	c.refresh = nil
}

// Load fetches the image list, replaces the store snapshot, and re-renders
// the grid. A failed periodic refresh leaves the already-rendered grid
// untouched; only a manual load surfaces the error state. Blocking; must be
// called from a goroutine.
func (c *Controller) Load(manual bool) {
	items, count, err := c.client.ListImages()
	if err != nil {
		jww.ERROR.Printf("Failed to load images: %+v", err)
		if manual || c.store.Len() == 0 {
			c.renderError()
		}
		return
	}

	c.store.Replace(items)
	c.render()
	jww.DEBUG.Printf("Loaded %d images (server count %d)",
		c.store.Len(), count)

	if c.snapshot != nil {
		if err = c.snapshot.Save(items); err != nil {
			jww.WARN.Printf("Failed to cache image snapshot: %+v", err)
		}
	}
}

// Refresh is the user-triggered reload. It shows a loading state and reports
// completion with a banner.
func (c *Controller) Refresh() {
	galleryDiv := utils.GetElementByID(galleryID)
	if galleryDiv.IsNull() {
		return
	}
	utils.SetInnerHTML(galleryDiv,
		`<div class="loading"><div class="spinner"></div><p>Reloading…</p></div>`)

	go func() {
		c.Load(true)
		banner.Show("Gallery refreshed")
	}()
}

// renderCachedSnapshot paints the IndexedDB copy of the list so the page is
// not empty while the first fetch is in flight. Cache failures are logged
// and ignored.
func (c *Controller) renderCachedSnapshot() {
	if c.snapshot == nil {
		return
	}

	items, err := c.snapshot.Load()
	if err != nil {
		jww.WARN.Printf("Failed to load cached snapshot: %+v", err)
		return
	}
	if len(items) == 0 {
		return
	}

	c.store.Replace(items)
	c.render()
	jww.DEBUG.Printf("Painted %d images from cache", len(items))
}

// render projects the store's current snapshot into the grid, or the
// empty-state placeholder when the store is empty.
func (c *Controller) render() {
	galleryDiv := utils.GetElementByID(galleryID)
	if galleryDiv.IsNull() {
		return
	}

	if c.store.Len() == 0 {
		c.updateCount(0)
		utils.SetInnerHTML(galleryDiv, emptyStateHTML)
		return
	}

	now := time.Now()
	var b strings.Builder
	for i, img := range c.store.Items() {
		writeCard(&b, i, img, now)
	}
	utils.SetInnerHTML(galleryDiv, b.String())
	c.updateCount(c.store.Len())

	// Stagger the card entrance animation
	cards := galleryDiv.Call("querySelectorAll", ".image-card")
	for i := 0; i < cards.Length(); i++ {
		utils.SetStyle(cards.Index(i), "animationDelay",
			fmt.Sprintf("%.2fs", float64(i)*0.05))
	}
}

// emptyStateHTML is the call-to-action shown instead of an empty grid.
const emptyStateHTML = `
	<div class="empty-state">
		<span class="empty-state-icon">📷</span>
		<h3>No memories yet</h3>
		<p>Start adding your favourite moments!</p>
		<a href="index.html" class="control-btn empty-state-add">
			<span class="btn-icon">➕</span>
			<span class="btn-text">Add a photo</span>
		</a>
	</div>`

// renderError replaces the grid with the load-failure state.
func (c *Controller) renderError() {
	galleryDiv := utils.GetElementByID(galleryID)
	if galleryDiv.IsNull() {
		return
	}
	utils.SetInnerHTML(galleryDiv, `
	<div class="empty-state">
		<span class="empty-state-icon">❌</span>
		<h3>Could not load images</h3>
		<p>Please try again later</p>
	</div>`)
}

// writeCard appends one grid card. All record-derived text is escaped.
func writeCard(b *strings.Builder, index int, img api.ImageRecord,
	now time.Time) {
	caption := "A beautiful moment"
	if img.Caption != "" {
		caption = format.EscapeHTML(img.Caption)
	}

	fmt.Fprintf(b, `
	<div class="image-card" data-index="%d">
		<img src="%s" alt="%s" loading="lazy" onclick="openLightbox(%d)">
		<div class="image-info">
			<div class="image-caption">%s</div>
			<div class="image-date">%s</div>
			<div class="image-actions">
				<button class="action-btn download-btn" onclick="downloadImageByIndex(%d)">
					<span class="btn-icon">⬇️</span>
					<span class="btn-text">Download</span>
				</button>
				<button class="action-btn delete-btn" onclick="showDeleteConfirm('%s')">
					<span class="btn-icon">🗑️</span>
					<span class="btn-text">Delete</span>
				</button>
			</div>
		</div>
	</div>`,
		index, format.EscapeHTML(img.URL), caption, index, caption,
		format.ImageAge(img.UploadedAt, now), index,
		format.EscapeHTML(img.ID))
}

// updateCount refreshes the "N memories" label if the page has one.
func (c *Controller) updateCount(n int) {
	countDiv := utils.GetElementByID(imageCountID)
	if countDiv.IsNull() {
		return
	}
	if n == 0 {
		utils.SetText(countDiv, "No photos yet")
		return
	}
	utils.SetText(countDiv, fmt.Sprintf("%d memories", n))
}

// DownloadByIndex downloads the image at the given store index with its
// suggested filename. It blocks until the download finishes and must not be
// called from a Javascript event handler directly. An index past the end of
// the store is a no-op.
func (c *Controller) DownloadByIndex(index int) error {
	img, ok := c.store.At(index)
	if !ok {
		return nil
	}

	filename := img.Filename
	if filename == "" {
		filename = fmt.Sprintf("memory-%d.jpg", time.Now().UnixMilli())
	}

	if err := c.client.DownloadImage(img.URL, filename); err != nil {
		jww.ERROR.Printf("Download failed: %+v", err)
		banner.ShowError("Could not download the image")
		return err
	}
	banner.Show("Image saved to your device")
	return nil
}

// ShowDeleteConfirm opens the delete-confirmation modal for the image. The
// actual request is only issued from ConfirmDelete.
func (c *Controller) ShowDeleteConfirm(imageID string) {
	c.pendingDeleteID = imageID
	modal := utils.GetElementByID(confirmModalID)
	if modal.IsNull() {
		return
	}
	utils.AddClass(modal, "active")
	c.ui.Activate(view.ViewConfirm)
}

// CloseModal dismisses the confirmation modal without deleting.
func (c *Controller) CloseModal() {
	c.pendingDeleteID = ""
	modal := utils.GetElementByID(confirmModalID)
	if modal.IsNull() {
		return
	}
	utils.RemoveClass(modal, "active")
	c.ui.Deactivate(view.ViewConfirm)
}

// ConfirmDelete issues the delete for the image the modal refers to. On
// success the store is filtered in place and the grid re-rendered without a
// network round trip; deleting the last image triggers a full reload so the
// empty state appears.
func (c *Controller) ConfirmDelete() {
	imageID := c.pendingDeleteID
	if imageID == "" {
		return
	}

	go func() {
		defer c.CloseModal()

		message, err := c.client.DeleteImage(imageID)
		if err != nil {
			jww.ERROR.Printf("Failed to delete image %s: %+v", imageID, err)
			banner.ShowError(err.Error())
			return
		}
		banner.Show(message)

		if !c.store.RemoveByID(imageID) {
			jww.WARN.Printf("Deleted image %s was not in the store", imageID)
		}

		if c.store.Len() > 0 {
			c.render()
		} else {
			c.Load(false)
		}
	}()
}
