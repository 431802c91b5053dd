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

	"gitlab.com/memoria/memoria-wasm/utils"
)

// OpenLightbox opens the modal viewer on the image at the given gallery
// position.
//
// Parameters:
//   - args[0] - index of the image in the gallery (int).
func OpenLightbox(_ js.Value, args []js.Value) interface{} {
	a.lightbox.Open(args[0].Int())
	return nil
}

// CloseLightbox dismisses the modal viewer.
func CloseLightbox(js.Value, []js.Value) interface{} {
	a.lightbox.Close()
	return nil
}

// NavigateLightbox moves the viewer by the given direction, wrapping at both
// ends.
//
// Parameters:
//   - args[0] - direction to move, -1 for previous or 1 for next (int).
func NavigateLightbox(_ js.Value, args []js.Value) interface{} {
	a.lightbox.Navigate(args[0].Int())
	return nil
}

// DownloadCurrentImage downloads the image the viewer is showing.
//
// Returns a promise:
//   - Resolves on completion (or if the viewer is not showing an image).
//   - Rejected with a Javascript Error if the download fails.
func DownloadCurrentImage(js.Value, []js.Value) interface{} {
	return utils.CreatePromise(
		func(resolve, reject func(args ...interface{}) js.Value) {
			if err := a.lightbox.DownloadCurrent(); err != nil {
				reject(utils.JsTrace(err))
				return
			}
			resolve()
		})
}

// DeleteFromLightbox closes the viewer and opens the delete confirmation for
// the image it was showing.
func DeleteFromLightbox(js.Value, []js.Value) interface{} {
	a.lightbox.DeleteCurrent()
	return nil
}

// ToggleZoom flips the viewer image between normal and zoomed scale.
func ToggleZoom(js.Value, []js.Value) interface{} {
	a.lightbox.ToggleZoom()
	return nil
}
