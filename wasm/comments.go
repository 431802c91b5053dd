////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package wasm

import (
	"fmt"
	"syscall/js"

	"gitlab.com/memoria/memoria-wasm/utils"
)

// Per-image comment element ID conventions shared with the page markup.
func commentsContainerID(imageID string) string {
	return fmt.Sprintf("comments-%s", imageID)
}
func commentFormID(imageID string) string {
	return fmt.Sprintf("commentForm-%s", imageID)
}
func commentUsernameID(imageID string) string {
	return fmt.Sprintf("commentUsername-%s", imageID)
}
func commentTextID(imageID string) string {
	return fmt.Sprintf("commentText-%s", imageID)
}
func commentCounterID(imageID string) string {
	return fmt.Sprintf("commentCharCount-%s", imageID)
}

// LoadComments fetches and renders the comment list of an image.
//
// Parameters:
//   - args[0] - ID of the image (string).
func LoadComments(_ js.Value, args []js.Value) interface{} {
	imageID := args[0].String()
	a.comments.Load(imageID, commentsContainerID(imageID))
	return nil
}

// InitCommentForm prefills the saved username and binds the live character
// counter of an image's comment form. Call once per form, not on reload.
//
// Parameters:
//   - args[0] - ID of the image (string).
func InitCommentForm(_ js.Value, args []js.Value) interface{} {
	imageID := args[0].String()
	a.comments.PrefillUsername(commentUsernameID(imageID))
	a.comments.SetupCharCounter(
		commentTextID(imageID), commentCounterID(imageID))
	return nil
}

// AddComment posts the comment typed into an image's form.
//
// Parameters:
//   - args[0] - ID of the image (string).
func AddComment(_ js.Value, args []js.Value) interface{} {
	imageID := args[0].String()

	var username, text string
	if input := utils.GetElementByID(commentUsernameID(imageID)); !input.IsNull() {
		username = input.Get("value").String()
	}
	if input := utils.GetElementByID(commentTextID(imageID)); !input.IsNull() {
		text = input.Get("value").String()
	}

	a.comments.Add(imageID, username, text, commentFormID(imageID))
	return nil
}

// DeleteComment removes one comment after confirmation.
//
// Parameters:
//   - args[0] - ID of the image (string).
//   - args[1] - ID of the comment (string).
func DeleteComment(_ js.Value, args []js.Value) interface{} {
	a.comments.Remove(args[0].String(), args[1].String())
	return nil
}
