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

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// SEMVER is the current semantic version of the Memoria WASM module.
const SEMVER = "0.3.2"

// semverKey is the storage key holding the version that last ran on this
// device.
const semverKey = "memoriaSemanticVersion"

// CheckAndStoreVersion checks that the stored module version matches the
// current version and, if not, upgrades it. On first load, the current
// version is stored.
func CheckAndStoreVersion() error {
	return checkAndStoreVersion(SEMVER, GetLocalStorage())
}

func checkAndStoreVersion(currentVer string, ls *LocalStorage) error {
	storedVer, err := initOrLoadStoredSemver(semverKey, currentVer, ls)
	if err != nil {
		return err
	}

	if storedVer != currentVer {
		jww.INFO.Printf("Memoria WASM out of date; upgrading version: "+
			"v%s → v%s", storedVer, currentVer)
	} else {
		jww.INFO.Printf("Memoria WASM version is current: v%s", storedVer)
	}

	// Upgrade path code goes here

	ls.SetItem(semverKey, []byte(currentVer))

	return nil
}

// initOrLoadStoredSemver returns the semantic version stored at the key in
// local storage. If no version is stored, then the current version is stored
// and returned.
func initOrLoadStoredSemver(
	key, currentVersion string, ls *LocalStorage) (string, error) {
	storedVersion, err := ls.GetItem(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Save the current version if this is the first run
			jww.INFO.Printf("Initialising %s to v%s", key, currentVersion)
			ls.SetItem(key, []byte(currentVersion))
			return currentVersion, nil
		}

		// If the item exists, but cannot be loaded, return an error
		return "", errors.Errorf(
			"could not load %s from storage: %+v", key, err)
	}

	// Return the stored version
	return string(storedVersion), nil
}
