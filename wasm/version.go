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

	"gitlab.com/memoria/memoria-wasm/storage"
)

// GetVersion returns the semantic version of the running bundle.
//
// Returns:
//   - string
func GetVersion(js.Value, []js.Value) interface{} {
	return storage.SEMVER
}
