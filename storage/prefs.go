////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package storage

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// Storage keys for device-scoped user preferences. These are never shared
// with the server.
const (
	commentUsernameKey = "commentUsername"
	musicVolumeKey     = "musicVolume"
	musicTrackKey      = "currentTrack"
	musicPlayingKey    = "musicPlaying"
)

// Preference defaults.
const (
	// DefaultMusicVolume is the volume percentage used before the user has
	// ever touched the slider.
	DefaultMusicVolume = 50

	// DefaultMusicTrack is the track selected on first load.
	DefaultMusicTrack = 1
)

// SaveCommentUsername persists the name the user last commented under so it
// can be prefilled on this device.
func SaveCommentUsername(username string) {
	jsStorage.SetItem(commentUsernameKey, []byte(username))
}

// LoadCommentUsername returns the saved comment username or an empty string
// if none was ever saved.
func LoadCommentUsername() string {
	data, err := jsStorage.GetItem(commentUsernameKey)
	if err != nil {
		return ""
	}
	return string(data)
}

// SaveMusicVolume persists the music volume as a percentage in [0, 100].
func SaveMusicVolume(volume int) {
	jsStorage.SetItem(musicVolumeKey, []byte(strconv.Itoa(volume)))
}

// LoadMusicVolume returns the saved music volume percentage, or
// DefaultMusicVolume if none is stored or the stored value is unreadable.
func LoadMusicVolume() int {
	return loadInt(musicVolumeKey, DefaultMusicVolume)
}

// SaveMusicTrack persists the selected track number.
func SaveMusicTrack(track int) {
	jsStorage.SetItem(musicTrackKey, []byte(strconv.Itoa(track)))
}

// LoadMusicTrack returns the saved track number, or DefaultMusicTrack if none
// is stored or the stored value is unreadable.
func LoadMusicTrack() int {
	return loadInt(musicTrackKey, DefaultMusicTrack)
}

// SaveMusicPlaying persists whether music was playing so playback can resume
// on the next page load.
func SaveMusicPlaying(playing bool) {
	jsStorage.SetItem(musicPlayingKey, []byte(strconv.FormatBool(playing)))
}

// LoadMusicPlaying reports whether music was playing when the page was last
// open. Defaults to false.
func LoadMusicPlaying() bool {
	data, err := jsStorage.GetItem(musicPlayingKey)
	if err != nil {
		return false
	}

	playing, err := strconv.ParseBool(string(data))
	if err != nil {
		jww.WARN.Printf("localStorage: invalid %q value %q: %+v",
			musicPlayingKey, data, err)
		return false
	}
	return playing
}

// loadInt reads an integer preference, falling back to def when the key is
// missing or the stored value does not parse.
func loadInt(key string, def int) int {
	data, err := jsStorage.GetItem(key)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			jww.WARN.Printf("localStorage: failed to get %q: %+v", key, err)
		}
		return def
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		jww.WARN.Printf("localStorage: invalid %q value %q: %+v",
			key, data, err)
		return def
	}
	return n
}
