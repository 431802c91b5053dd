////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package wasm

import (
	"syscall/js"

	"github.com/pkg/errors"

	"gitlab.com/memoria/memoria-wasm/utils"
)

// RefreshGallery reloads the image list on user request, with a loading
// state and a completion message.
func RefreshGallery(js.Value, []js.Value) interface{} {
	a.gallery.Refresh()
	return nil
}

// DownloadImageByIndex downloads the grid image at the given position.
//
// Parameters:
//   - args[0] - index of the image in the gallery (int).
//
// Returns a promise:
//   - Resolves on completion (or if no image exists at the index).
//   - Rejected with a Javascript Error if the download fails.
//   - Throws a RangeError if the index is negative.
func DownloadImageByIndex(_ js.Value, args []js.Value) interface{} {
	index := args[0].Int()
	if index < 0 {
		utils.Throw(utils.RangeError,
			errors.Errorf("image index is negative: %d", index))
		return nil
	}

	return utils.CreatePromise(
		func(resolve, reject func(args ...interface{}) js.Value) {
			if err := a.gallery.DownloadByIndex(index); err != nil {
				reject(utils.JsTrace(err))
				return
			}
			resolve()
		})
}

// ShowDeleteConfirm opens the delete-confirmation modal for an image.
//
// Parameters:
//   - args[0] - ID of the image to delete (string).
func ShowDeleteConfirm(_ js.Value, args []js.Value) interface{} {
	a.gallery.ShowDeleteConfirm(args[0].String())
	return nil
}

// CloseModal dismisses the delete-confirmation modal without deleting.
func CloseModal(js.Value, []js.Value) interface{} {
	a.gallery.CloseModal()
	return nil
}

// ConfirmDelete deletes the image the confirmation modal refers to.
func ConfirmDelete(js.Value, []js.Value) interface{} {
	a.gallery.ConfirmDelete()
	return nil
}
