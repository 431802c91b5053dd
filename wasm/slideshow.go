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
)

// StartSlideshow opens the slideshow overlay at the first image and begins
// auto-advancing.
func StartSlideshow(js.Value, []js.Value) interface{} {
	a.slideshow.Start()
	return nil
}

// StopSlideshow closes the slideshow overlay.
func StopSlideshow(js.Value, []js.Value) interface{} {
	a.slideshow.Stop()
	return nil
}

// ToggleSlideshow pauses or resumes the running slideshow without losing the
// position.
func ToggleSlideshow(js.Value, []js.Value) interface{} {
	a.slideshow.TogglePause()
	return nil
}

// NextSlide advances the slideshow one image.
func NextSlide(js.Value, []js.Value) interface{} {
	a.slideshow.Next()
	return nil
}

// PreviousSlide moves the slideshow back one image.
func PreviousSlide(js.Value, []js.Value) interface{} {
	a.slideshow.Previous()
	return nil
}
