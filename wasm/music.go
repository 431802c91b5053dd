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

// ToggleMusicMenu opens or closes the track selection menu.
func ToggleMusicMenu(js.Value, []js.Value) interface{} {
	a.music.ToggleMenu()
	return nil
}

// ToggleMusicPlayPause flips the music between playing and paused.
func ToggleMusicPlayPause(js.Value, []js.Value) interface{} {
	a.music.Toggle()
	return nil
}

// ChangeMusic switches playback to the numbered track.
//
// Parameters:
//   - args[0] - track number as listed in the playlist (int).
func ChangeMusic(_ js.Value, args []js.Value) interface{} {
	a.music.ChangeTrack(args[0].Int())
	return nil
}

// PlayMusic starts or resumes the selected track.
func PlayMusic(js.Value, []js.Value) interface{} {
	a.music.Play()
	return nil
}

// PauseMusic pauses playback, keeping the position.
func PauseMusic(js.Value, []js.Value) interface{} {
	a.music.Pause()
	return nil
}
