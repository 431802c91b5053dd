////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package storage

import (
	jww "github.com/spf13/jwalterweatherman"
)

// ClearPreferences removes every saved user preference (comment username and
// music settings) so the next page load starts from defaults. The stored
// version marker and any cached data are untouched.
func ClearPreferences() {
	ls := GetLocalStorage()
	for _, key := range []string{
		commentUsernameKey, musicVolumeKey, musicTrackKey, musicPlayingKey,
	} {
		ls.RemoveItem(key)
	}
	jww.INFO.Print("Cleared saved user preferences")
}

// PurgeLocalStorage removes every local storage key saved by this WASM
// binary, including preferences and the version marker. Keys made by other
// scripts on the same page are untouched.
func PurgeLocalStorage() {
	GetLocalStorage().ClearPrefix("")
	jww.INFO.Print("Purged all local storage saved by this binary")
}
