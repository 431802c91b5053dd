////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package cache

import (
	"reflect"
	"testing"

	"gitlab.com/memoria/memoria-wasm/api"
)

func entry(id string, ord int) snapshotEntry {
	return snapshotEntry{
		ID:  id,
		Ord: ord,
		Record: api.ImageRecord{
			ID:  id,
			URL: "/uploads/" + id,
		},
	}
}

// Tests that restoreOrder returns the records sorted by their stored
// position regardless of the order IndexedDB yielded them in.
func TestRestoreOrder(t *testing.T) {
	entries := []snapshotEntry{
		entry("c", 2), entry("a", 0), entry("d", 3), entry("b", 1),
	}

	items := restoreOrder(entries)

	var ids []string
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	expected := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("Failed to restore order.\nexpected: %v\nreceived: %v",
			expected, ids)
	}
}

// Tests that a snapshot with out-of-range or duplicated positions still
// yields every stored record and no zero-value records.
func TestRestoreOrder_CorruptPositions(t *testing.T) {
	entries := []snapshotEntry{
		entry("a", 7), entry("b", -1), entry("c", 1), entry("d", 1),
	}

	items := restoreOrder(entries)

	if len(items) != len(entries) {
		t.Errorf("Wrong number of records.\nexpected: %d\nreceived: %d",
			len(entries), len(items))
	}
	for i, item := range items {
		if item.ID == "" || item.URL == "" {
			t.Errorf("Record %d is a zero value: %+v", i, item)
		}
	}

	// Valid positions still sort ahead of out-of-range ones
	if items[len(items)-1].ID != "a" {
		t.Errorf("Largest position did not sort last: %+v", items)
	}
	if items[0].ID != "b" {
		t.Errorf("Smallest position did not sort first: %+v", items)
	}
}

// Tests that entries sharing a position keep their relative input order.
func TestRestoreOrder_DuplicatePositionsStable(t *testing.T) {
	entries := []snapshotEntry{
		entry("first", 4), entry("second", 4), entry("third", 4),
	}

	items := restoreOrder(entries)

	var ids []string
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	expected := []string{"first", "second", "third"}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("Duplicate positions reordered records."+
			"\nexpected: %v\nreceived: %v", expected, ids)
	}
}

// Tests that an empty snapshot restores to an empty, non-nil list.
func TestRestoreOrder_Empty(t *testing.T) {
	items := restoreOrder(nil)
	if items == nil || len(items) != 0 {
		t.Errorf("Expected empty list, got %v", items)
	}
}
