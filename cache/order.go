////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cache

import (
	"sort"

	"gitlab.com/memoria/memoria-wasm/api"
)

// snapshotEntry is the stored shape of one image record. The ord field
// preserves the server-provided order, which IndexedDB key order would not.
type snapshotEntry struct {
	ID     string          `json:"id"`
	Ord    int             `json:"ord"`
	Record api.ImageRecord `json:"record"`
}

// restoreOrder returns the snapshot records sorted back into their stored
// positions. Entries are sorted rather than placed by index so that a
// corrupt, duplicated, or out-of-range ord can never leave zero-value holes
// in the list; at worst the order degrades.
func restoreOrder(entries []snapshotEntry) []api.ImageRecord {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Ord < entries[j].Ord
	})

	items := make([]api.ImageRecord, 0, len(entries))
	for _, entry := range entries {
		items = append(items, entry.Record)
	}
	return items
}
