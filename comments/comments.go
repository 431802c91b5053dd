////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package comments implements the per-image comment panel. Comments have
// their own lifecycle and are never cached in the shared image store.
package comments

import (
	"fmt"
	"strings"
	"syscall/js"
	"time"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/memoria/memoria-wasm/api"
	"gitlab.com/memoria/memoria-wasm/banner"
	"gitlab.com/memoria/memoria-wasm/format"
	"gitlab.com/memoria/memoria-wasm/storage"
	"gitlab.com/memoria/memoria-wasm/utils"
)

// anonymousUsername is substituted when the user leaves the name blank.
const anonymousUsername = "Anonymous"

// removeAnimationTime matches the fadeOut animation before the entry is
// detached from the DOM.
const removeAnimationTime = 300 * time.Millisecond

// Controller drives every comment panel on the page.
type Controller struct {
	client *api.Client
}

// New creates a comments controller.
func New(client *api.Client) *Controller {
	return &Controller{client: client}
}

// Load fetches the image's comments and fully replaces the rendered list in
// the container.
func (c *Controller) Load(imageID, containerID string) {
	go c.load(imageID, containerID)
}

func (c *Controller) load(imageID, containerID string) {
	records, err := c.client.ListComments(imageID)
	if err != nil {
		jww.ERROR.Printf("Failed to load comments for image %s: %+v",
			imageID, err)
		return
	}
	c.render(records, containerID, imageID)
	c.setCount(imageID, len(records))
}

// render replaces the container's comment list with the given records, or
// the empty-state message when there are none.
func (c *Controller) render(
	records []api.CommentRecord, containerID, imageID string) {
	container := utils.GetElementByID(containerID)
	if container.IsNull() {
		return
	}

	list := container.Call("querySelector", ".comments-list")
	if list.IsNull() {
		list = container
	}

	if len(records) == 0 {
		utils.SetInnerHTML(list, `
		<div class="no-comments">
			<p>No comments yet. Be the first!</p>
		</div>`)
		return
	}

	now := time.Now()
	var b strings.Builder
	for _, record := range records {
		writeComment(&b, record, imageID, now)
	}
	utils.SetInnerHTML(list, b.String())
}

// writeComment appends one comment entry. All user text is escaped.
func writeComment(b *strings.Builder, record api.CommentRecord,
	imageID string, now time.Time) {
	fmt.Fprintf(b, `
	<div class="comment-item" data-comment-id="%s">
		<div class="comment-avatar">%s</div>
		<div class="comment-content">
			<div class="comment-header">
				<span class="comment-username">%s</span>
				<span class="comment-time">%s</span>
			</div>
			<div class="comment-text">%s</div>
			<div class="comment-actions">
				<button class="comment-action-btn comment-delete-btn" onclick="deleteComment('%s', '%s')">
					Delete
				</button>
			</div>
		</div>
	</div>`,
		format.EscapeHTML(record.ID), format.Initials(record.Username),
		format.EscapeHTML(record.Username),
		format.CommentAge(record.CreatedAt, now),
		format.EscapeHTML(record.Text), format.EscapeHTML(imageID),
		format.EscapeHTML(record.ID))
}

// Add posts a new comment. Empty text is rejected locally with a message
// before any request; a blank username defaults to a placeholder and the
// chosen name is persisted for reuse on this device. On success, the form's
// text input is cleared and the list reloaded.
func (c *Controller) Add(imageID, username, text, formID string) {
	text = format.ClampComment(strings.TrimSpace(text))
	if text == "" {
		banner.ShowError("Please enter a comment first")
		return
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = anonymousUsername
	}

	go func() {
		message, err := c.client.AddComment(imageID, username, text)
		if err != nil {
			jww.ERROR.Printf("Failed to add comment on image %s: %+v",
				imageID, err)
			banner.ShowError(err.Error())
			return
		}

		banner.Show(message)
		storage.SaveCommentUsername(username)
		c.clearForm(formID)

		if containerID := formContainerID(formID); containerID != "" {
			c.load(imageID, containerID)
		}
	}()
}

// Remove deletes one comment after interactive confirmation. On success only
// the matching DOM entry is removed (animated); the list is not reloaded.
func (c *Controller) Remove(imageID, commentID string) {
	if !utils.Confirm("Delete this comment?") {
		return
	}

	go func() {
		message, err := c.client.DeleteComment(imageID, commentID)
		if err != nil {
			jww.ERROR.Printf("Failed to delete comment %s: %+v",
				commentID, err)
			banner.ShowError(err.Error())
			return
		}
		banner.Show(message)

		entry := utils.QuerySelector(
			fmt.Sprintf(`[data-comment-id=%q]`, commentID))
		if !entry.IsNull() {
			utils.SetStyle(entry, "animation", "fadeOut 0.3s ease")
			utils.NewTimeout(func() {
				entry.Call("remove")
			}, removeAnimationTime)
		}

		c.adjustCount(imageID, -1)
	}()
}

// clearForm empties the form's text input and resets its character counter.
func (c *Controller) clearForm(formID string) {
	form := utils.GetElementByID(formID)
	if form.IsNull() {
		return
	}

	if input := form.Call("querySelector", ".comment-text-input"); !input.IsNull() {
		input.Set("value", "")
	}
	if counter := form.Call("querySelector", ".comment-char-count"); !counter.IsNull() {
		utils.SetText(counter, fmt.Sprintf("0/%d", format.MaxCommentLength))
	}
}

// formContainerID returns the ID of the comments section enclosing the form.
func formContainerID(formID string) string {
	form := utils.GetElementByID(formID)
	if form.IsNull() {
		return ""
	}
	section := form.Call("closest", ".comments-section")
	if section.IsNull() {
		return ""
	}
	return section.Get("id").String()
}

// setCount writes the visible comment count for the image's panel.
func (c *Controller) setCount(imageID string, count int) {
	countSpan := utils.QuerySelector(fmt.Sprintf(
		`[data-image-id=%q] .comments-count`, imageID))
	if countSpan.IsNull() {
		return
	}
	utils.SetText(countSpan, fmt.Sprintf("(%d)", count))
}

// adjustCount shifts the visible comment count by delta, parsing the current
// "(N)" label.
func (c *Controller) adjustCount(imageID string, delta int) {
	countSpan := utils.QuerySelector(fmt.Sprintf(
		`[data-image-id=%q] .comments-count`, imageID))
	if countSpan.IsNull() {
		return
	}

	var count int
	label := countSpan.Get("textContent").String()
	if _, err := fmt.Sscanf(label, "(%d)", &count); err != nil {
		jww.WARN.Printf("Unreadable comment count label %q: %+v", label, err)
		return
	}
	if count += delta; count < 0 {
		count = 0
	}
	utils.SetText(countSpan, fmt.Sprintf("(%d)", count))
}

// SetupCharCounter binds a live character counter to the comment textarea
// and hard-limits the input to the maximum comment length.
func (c *Controller) SetupCharCounter(textareaID, counterID string) {
	textarea := utils.GetElementByID(textareaID)
	counter := utils.GetElementByID(counterID)
	if textarea.IsNull() || counter.IsNull() {
		return
	}

	utils.AddEventListener(textarea, "input", func(js.Value) {
		value := textarea.Get("value").String()
		length := len([]rune(value))

		if length > format.MaxCommentLength {
			textarea.Set("value", format.ClampComment(value))
			length = format.MaxCommentLength
		}
		utils.SetText(counter,
			fmt.Sprintf("%d/%d", length, format.MaxCommentLength))

		if length > format.MaxCommentLength-50 {
			utils.AddClass(counter, "warning")
		} else {
			utils.RemoveClass(counter, "warning")
		}
	})
}

// PrefillUsername restores the device's saved comment username into the
// given input.
func (c *Controller) PrefillUsername(inputID string) {
	input := utils.GetElementByID(inputID)
	if input.IsNull() {
		return
	}

	if saved := storage.LoadCommentUsername(); saved != "" {
		input.Set("value", saved)
	}
}
