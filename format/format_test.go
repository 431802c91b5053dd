////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package format

import (
	"strings"
	"testing"
	"time"
)

var now = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

// Tests every bucket of the image age, including the absolute-date fallback.
func TestImageAge(t *testing.T) {
	tests := []struct {
		age      time.Duration
		expected string
	}{
		{2 * time.Hour, "Today"},
		{26 * time.Hour, "Yesterday"},
		{3 * 24 * time.Hour, "3 days ago"},
		{10 * 24 * time.Hour, "1 week ago"},
		{20 * 24 * time.Hour, "2 weeks ago"},
		{45 * 24 * time.Hour, "1 month ago"},
		{200 * 24 * time.Hour, "6 months ago"},
		{400 * 24 * time.Hour, "11/04/2023"},
	}

	for _, tt := range tests {
		if s := ImageAge(now.Add(-tt.age), now); s != tt.expected {
			t.Errorf("Unexpected age for -%s.\nexpected: %q\nreceived: %q",
				tt.age, tt.expected, s)
		}
	}
}

// Tests every bucket of the comment age, including the absolute-date
// fallback past a week.
func TestCommentAge(t *testing.T) {
	tests := []struct {
		age      time.Duration
		expected string
	}{
		{30 * time.Second, "just now"},
		{90 * time.Second, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{3 * time.Hour, "3 hours ago"},
		{26 * time.Hour, "1 day ago"},
		{3 * 24 * time.Hour, "3 days ago"},
		{8 * 24 * time.Hour, "07/05/2024"},
	}

	for _, tt := range tests {
		if s := CommentAge(now.Add(-tt.age), now); s != tt.expected {
			t.Errorf("Unexpected age for -%s.\nexpected: %q\nreceived: %q",
				tt.age, tt.expected, s)
		}
	}
}

// Tests avatar initials for blank, single-word, and multi-word names.
func TestInitials(t *testing.T) {
	tests := map[string]string{
		"":              "?",
		"   ":           "?",
		"an":            "A",
		"An Nguyen":     "AN",
		"an thi nguyen": "AN",
		"émile":         "É",
	}

	for name, expected := range tests {
		if initials := Initials(name); initials != expected {
			t.Errorf("Unexpected initials for %q.\nexpected: %q\nreceived: %q",
				name, expected, initials)
		}
	}
}

// Tests that the clamp cuts at exactly the limit, counting characters, and
// leaves shorter text alone.
func TestClampComment(t *testing.T) {
	short := "hello"
	if clamped := ClampComment(short); clamped != short {
		t.Errorf("Short text modified: %q", clamped)
	}

	long := strings.Repeat("a", MaxCommentLength+100)
	clamped := ClampComment(long)
	if n := len([]rune(clamped)); n != MaxCommentLength {
		t.Errorf("Clamped length.\nexpected: %d\nreceived: %d",
			MaxCommentLength, n)
	}

	exact := strings.Repeat("b", MaxCommentLength)
	if clamped = ClampComment(exact); clamped != exact {
		t.Error("Text at the limit should be unchanged")
	}
}

// Tests that markup in user text is neutralised.
func TestEscapeHTML(t *testing.T) {
	escaped := EscapeHTML(`<script>alert("hi")</script>`)
	if strings.Contains(escaped, "<") || strings.Contains(escaped, ">") {
		t.Errorf("Markup survived escaping: %q", escaped)
	}
}
