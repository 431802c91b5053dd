////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/memoria/memoria-wasm/api"
)

func threeImages() []api.ImageRecord {
	return []api.ImageRecord{
		{ID: "a", URL: "/a.jpg"},
		{ID: "b", URL: "/b.jpg"},
		{ID: "c", URL: "/c.jpg"},
	}
}

// Tests that Replace keeps the given order and At reads it back.
func TestStore_Replace(t *testing.T) {
	s := NewStore()
	require.Equal(t, 0, s.Len())

	s.Replace(threeImages())
	require.Equal(t, 3, s.Len())

	record, ok := s.At(1)
	require.True(t, ok)
	require.Equal(t, "b", record.ID)

	_, ok = s.At(3)
	require.False(t, ok)
	_, ok = s.At(-1)
	require.False(t, ok)
}

// Tests that removing a middle record preserves the order of the rest, as the
// gallery re-renders from the filtered snapshot without a reload.
func TestStore_RemoveByID(t *testing.T) {
	s := NewStore()
	s.Replace(threeImages())

	require.True(t, s.RemoveByID("b"))
	require.Equal(t, 2, s.Len())
	require.Equal(t, 0, s.IndexOf("a"))
	require.Equal(t, 1, s.IndexOf("c"))
	require.Equal(t, -1, s.IndexOf("b"))

	require.False(t, s.RemoveByID("b"))
}

// Tests that removing every record leaves an empty store.
func TestStore_RemoveByID_Last(t *testing.T) {
	s := NewStore()
	s.Replace([]api.ImageRecord{{ID: "only"}})

	require.True(t, s.RemoveByID("only"))
	require.Equal(t, 0, s.Len())
}

// Tests that Items returns a copy that does not alias the snapshot.
func TestStore_Items_Copy(t *testing.T) {
	s := NewStore()
	s.Replace(threeImages())

	items := s.Items()
	items[0].ID = "mutated"

	record, _ := s.At(0)
	require.Equal(t, "a", record.ID)
}
