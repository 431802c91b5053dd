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
	"syscall/js"
	"testing"

	"github.com/pkg/errors"
)

// Tests that ClearPreferences resets every saved preference to its default
// while leaving other keys saved by this binary intact.
func TestClearPreferences(t *testing.T) {
	SaveCommentUsername("Ana")
	SaveMusicVolume(80)
	SaveMusicTrack(3)
	SaveMusicPlaying(true)
	jsStorage.SetItem(semverKey, []byte("9.9.9"))

	ClearPreferences()

	if name := LoadCommentUsername(); name != "" {
		t.Errorf("Comment username survived the clear: %q", name)
	}
	if volume := LoadMusicVolume(); volume != DefaultMusicVolume {
		t.Errorf("Music volume was not reset."+
			"\nexpected: %d\nreceived: %d", DefaultMusicVolume, volume)
	}
	if track := LoadMusicTrack(); track != DefaultMusicTrack {
		t.Errorf("Music track was not reset."+
			"\nexpected: %d\nreceived: %d", DefaultMusicTrack, track)
	}
	if LoadMusicPlaying() {
		t.Error("Music playing state survived the clear")
	}

	stored, err := jsStorage.GetItem(semverKey)
	if err != nil || string(stored) != "9.9.9" {
		t.Errorf("Version marker did not survive the clear: %q (%+v)",
			stored, err)
	}

	jsStorage.RemoveItem(semverKey)
}

// Tests that PurgeLocalStorage removes every key saved by this binary,
// version marker included, without touching keys made by other scripts.
func TestPurgeLocalStorage(t *testing.T) {
	SaveCommentUsername("Ana")
	jsStorage.SetItem(semverKey, []byte(SEMVER))
	foreign := js.Global().Get("localStorage")
	foreign.Call("setItem", "otherScriptKey", "other script value")

	PurgeLocalStorage()

	if _, err := jsStorage.GetItem(commentUsernameKey); err == nil ||
		!errors.Is(err, os.ErrNotExist) {
		t.Errorf("Comment username survived the purge: %+v", err)
	}
	if _, err := jsStorage.GetItem(semverKey); err == nil ||
		!errors.Is(err, os.ErrNotExist) {
		t.Errorf("Version marker survived the purge: %+v", err)
	}

	keyValue := foreign.Call("getItem", "otherScriptKey")
	if keyValue.IsNull() || keyValue.String() != "other script value" {
		t.Errorf("Foreign key did not survive the purge: %v", keyValue)
	}

	foreign.Call("removeItem", "otherScriptKey")
}
