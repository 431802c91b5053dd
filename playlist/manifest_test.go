////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"reflect"
	"testing"
)

// Tests that BuildManifest filters out non-audio files, numbers the tracks in
// lexicographic order, and joins the base path.
func TestBuildManifest(t *testing.T) {
	filenames := []string{
		"warm_afternoon.mp3",
		"cover.jpg",
		"gentle-memories.mp3",
		"playlist.json",
		"quiet moments.ogg",
	}

	expected := []Track{
		{Number: 1, Title: "Gentle Memories",
			File: "/static/music/gentle-memories.mp3"},
		{Number: 2, Title: "Quiet Moments",
			File: "/static/music/quiet moments.ogg"},
		{Number: 3, Title: "Warm Afternoon",
			File: "/static/music/warm_afternoon.mp3"},
	}

	tracks := BuildManifest(filenames, "/static/music")
	if !reflect.DeepEqual(tracks, expected) {
		t.Errorf("Unexpected manifest.\nexpected: %+v\nreceived: %+v",
			expected, tracks)
	}
}

// Tests that BuildManifest returns an empty manifest when no audio files are
// present.
func TestBuildManifest_NoAudio(t *testing.T) {
	tracks := BuildManifest([]string{"readme.txt", "cover.png"}, "/music")
	if len(tracks) != 0 {
		t.Errorf("Expected empty manifest, received %+v", tracks)
	}
}

// Tests title derivation from a variety of filename shapes.
func Test_titleFromFilename(t *testing.T) {
	tests := map[string]string{
		"warm_afternoon.mp3":   "Warm Afternoon",
		"gentle-memories.flac": "Gentle Memories",
		"track01.mp3":          "Track01",
		"a b c.ogg":            "A B C",
	}

	for name, expected := range tests {
		if title := titleFromFilename(name); title != expected {
			t.Errorf("Unexpected title for %q.\nexpected: %q\nreceived: %q",
				name, expected, title)
		}
	}
}
