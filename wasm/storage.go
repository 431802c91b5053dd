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

	"gitlab.com/memoria/memoria-wasm/cache"
	"gitlab.com/memoria/memoria-wasm/storage"
	"gitlab.com/memoria/memoria-wasm/utils"
)

// ResetPreferences clears the saved comment username and music settings so
// the next load starts from defaults.
func ResetPreferences(js.Value, []js.Value) interface{} {
	storage.ClearPreferences()
	return nil
}

// PurgeState clears everything this binary has saved on the device: all
// local storage keys and the cached image snapshot database.
//
// Returns a promise:
//   - Resolves on completion.
//   - Rejected with a Javascript Error if the snapshot database could not be
//     deleted.
func PurgeState(js.Value, []js.Value) interface{} {
	return utils.CreatePromise(
		func(resolve, reject func(args ...interface{}) js.Value) {
			storage.PurgeLocalStorage()
			if err := cache.Drop(); err != nil {
				reject(utils.JsTrace(err))
				return
			}
			resolve()
		})
}
