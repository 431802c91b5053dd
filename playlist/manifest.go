////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"path"
	"sort"
	"strings"
	"unicode"
)

// Track is one manifest entry in the shape the in-browser player expects.
type Track struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	File   string `json:"file"`
}

// audioExtensions are the file types included in the manifest.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".ogg":  true,
	".m4a":  true,
	".wav":  true,
	".flac": true,
}

// BuildManifest filters the filenames down to audio files and numbers them in
// lexicographic order. basePath is the URL prefix the page serves the music
// directory under.
func BuildManifest(filenames []string, basePath string) []Track {
	audio := make([]string, 0, len(filenames))
	for _, name := range filenames {
		if audioExtensions[strings.ToLower(path.Ext(name))] {
			audio = append(audio, name)
		}
	}
	sort.Strings(audio)

	tracks := make([]Track, len(audio))
	for i, name := range audio {
		tracks[i] = Track{
			Number: i + 1,
			Title:  titleFromFilename(name),
			File:   path.Join(basePath, name),
		}
	}
	return tracks
}

// titleFromFilename derives a display title from an audio filename: the
// extension is dropped, separators become spaces, and each word is
// capitalised ("warm_afternoon.mp3" -> "Warm Afternoon").
func titleFromFilename(name string) string {
	base := strings.TrimSuffix(name, path.Ext(name))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)

	words := strings.Fields(base)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
