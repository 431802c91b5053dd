////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package format renders timestamps and user text for display. Image ages and
// comment ages share the same coarse-bucket idea but with different floors:
// gallery dates start at whole days, comment times go down to "just now".
package format

import (
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aquilax/truncate"
)

// MaxCommentLength is the maximum number of characters a comment may contain.
// Longer input is truncated client-side before submission is possible.
const MaxCommentLength = 500

// absoluteDateLayout is used once a timestamp falls outside the relative
// buckets.
const absoluteDateLayout = "02/01/2006"

// ImageAge formats an image's upload time relative to now, in whole-day
// buckets: Today, Yesterday, N days, N weeks, N months, then the absolute
// date.
func ImageAge(uploadedAt, now time.Time) string {
	days := int(now.Sub(uploadedAt).Hours() / 24)

	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return plural(days/7, "week")
	case days < 365:
		return plural(days/30, "month")
	default:
		return uploadedAt.Format(absoluteDateLayout)
	}
}

// CommentAge formats a comment's creation time relative to now: just now,
// N minutes, N hours, N days, then the absolute date beyond a week.
func CommentAge(createdAt, now time.Time) string {
	diff := now.Sub(createdAt)
	seconds := int(diff.Seconds())
	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := hours / 24

	switch {
	case seconds < 60:
		return "just now"
	case minutes < 60:
		return plural(minutes, "minute")
	case hours < 24:
		return plural(hours, "hour")
	case days < 7:
		return plural(days, "day")
	default:
		return createdAt.Format(absoluteDateLayout)
	}
}

// plural renders "1 week ago" / "3 weeks ago".
func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// Initials returns up to two uppercase initials for a comment avatar, or "?"
// for a blank name. A single word yields one initial; otherwise the first
// letters of the first and last words.
func Initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "?"
	}

	if len(parts) == 1 {
		return firstLetter(parts[0])
	}
	return firstLetter(parts[0]) + firstLetter(parts[len(parts)-1])
}

func firstLetter(word string) string {
	r, _ := utf8.DecodeRuneInString(word)
	return strings.ToUpper(string(r))
}

// ClampComment truncates comment text to exactly MaxCommentLength characters.
// Shorter text is returned unchanged.
func ClampComment(text string) string {
	return truncate.Truncate(text, MaxCommentLength, "", truncate.PositionEnd)
}

// EscapeHTML escapes untrusted text before it is placed in generated markup.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}
