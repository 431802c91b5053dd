////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package cache keeps an IndexedDB copy of the last fetched image list so
// the gallery can paint immediately on the next load, before the first
// network round trip completes. It is a best-effort cache: every operation
// failure is logged and swallowed by the caller, never shown to the user.
package cache

import (
	"encoding/json"
	"syscall/js"

	"github.com/hack-pad/go-indexeddb/idb"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/memoria/memoria-wasm/api"
	"gitlab.com/memoria/memoria-wasm/utils"
)

const (
	// databaseName is the IndexedDB database backing the snapshot.
	databaseName = "memoriaDb"

	// currentVersion is the current version of the IndexedDB runtime. Used
	// for migration purposes.
	currentVersion uint = 1

	// imageStoreName is the object store holding one entry per image record.
	imageStoreName = "images"

	// pkeyName is the primary key path of the image store.
	pkeyName = "id"
)

// Snapshot is the IndexedDB-backed image list cache.
//
// NOTE: This model is NOT thread safe - it is the responsibility of the
// caller to ensure that its methods are called sequentially.
type Snapshot struct {
	db *idb.Database
}

// NewSnapshot opens (creating or upgrading as needed) the snapshot database.
func NewSnapshot() (*Snapshot, error) {
	ctx, cancel := NewContext()
	defer cancel()
	openRequest, err := idb.Global().Open(ctx, databaseName, currentVersion,
		func(db *idb.Database, oldVersion, newVersion uint) error {
			if oldVersion == newVersion {
				jww.INFO.Printf("IndexedDb version for %s is current: v%d",
					databaseName, newVersion)
				return nil
			}

			jww.INFO.Printf("IndexedDb upgrade required for %s: v%d -> v%d",
				databaseName, oldVersion, newVersion)

			if oldVersion == 0 && newVersion >= 1 {
				return v1Upgrade(db)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	// Wait for database open to finish
	db, err := openRequest.Await(ctx)
	if err != nil {
		return nil, err
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &Snapshot{db: db}, nil
}

// v1Upgrade performs the v0 -> v1 database upgrade.
func v1Upgrade(db *idb.Database) error {
	storeOpts := idb.ObjectStoreOptions{
		KeyPath:       js.ValueOf(pkeyName),
		AutoIncrement: false,
	}
	_, err := db.CreateObjectStore(imageStoreName, storeOpts)
	return err
}

// Save replaces the cached snapshot with the given image list.
func (s *Snapshot) Save(items []api.ImageRecord) error {
	if err := clear(s.db, imageStoreName); err != nil {
		return err
	}

	for i, record := range items {
		entryJSON, err := json.Marshal(snapshotEntry{
			ID:     record.ID,
			Ord:    i,
			Record: record,
		})
		if err != nil {
			return err
		}
		entryObj, err := utils.JsonToJS(entryJSON)
		if err != nil {
			return err
		}
		if err = put(s.db, imageStoreName, entryObj); err != nil {
			return err
		}
	}

	jww.DEBUG.Printf("Cached snapshot of %d images", len(items))
	return nil
}

// Load returns the cached image list in its original server-provided order.
// An empty cache yields an empty list.
func (s *Snapshot) Load() ([]api.ImageRecord, error) {
	rows, err := getAll(s.db, imageStoreName)
	if err != nil {
		return nil, err
	}

	entries := make([]snapshotEntry, 0, len(rows))
	for _, row := range rows {
		var entry snapshotEntry
		err = json.Unmarshal([]byte(utils.JsToJson(row)), &entry)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return restoreOrder(entries), nil
}

// Drop deletes the snapshot database entirely. The next [NewSnapshot] call
// recreates it empty.
func Drop() error {
	_, err := idb.Global().DeleteDatabase(databaseName)
	return err
}
