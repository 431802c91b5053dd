////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package view holds the client's view state: the shared image list, the
// cursors the modal viewers navigate with, and the active-view flag consulted
// by input routing. Nothing in this package touches the DOM, so every state
// transition can be tested on the host.
package view

import (
	"gitlab.com/memoria/memoria-wasm/api"
)

// Store is the single source of truth for the ordered image list shared by
// the gallery, lightbox, and slideshow. The list is only ever replaced
// wholesale after a successful fetch or filtered by RemoveByID after a
// successful delete; records are never mutated field by field. The gallery
// controller is the only writer.
type Store struct {
	items []api.ImageRecord
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new snapshot of the image list, keeping the
// server-provided order.
func (s *Store) Replace(items []api.ImageRecord) {
	s.items = items
}

// RemoveByID filters out the record with the given ID and reports whether a
// record was removed.
func (s *Store) RemoveByID(id string) bool {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of records in the current snapshot.
func (s *Store) Len() int {
	return len(s.items)
}

// At returns the record at the given index. The second return is false when
// the index is out of range.
func (s *Store) At(index int) (api.ImageRecord, bool) {
	if index < 0 || index >= len(s.items) {
		return api.ImageRecord{}, false
	}
	return s.items[index], true
}

// IndexOf returns the index of the record with the given ID, or -1 if it is
// not in the snapshot.
func (s *Store) IndexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Items returns a copy of the current snapshot.
func (s *Store) Items() []api.ImageRecord {
	items := make([]api.ImageRecord, len(s.items))
	copy(items, s.items)
	return items
}
