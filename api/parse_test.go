////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Tests decoding of a well-formed image list and that order is preserved.
func TestParseImageList(t *testing.T) {
	data := []byte(`{
		"success": true,
		"images": [
			{"id": "2", "url": "/b.jpg", "filename": "b.jpg",
			 "caption": "second", "uploaded_at": "2024-05-14T09:00:00Z"},
			{"id": "1", "url": "/a.jpg", "filename": "a.jpg",
			 "caption": "", "uploaded_at": "2024-05-01T09:00:00Z"}
		],
		"count": 2
	}`)

	images, count, err := ParseImageList(data)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Len(t, images, 2)
	require.Equal(t, "2", images[0].ID)
	require.Equal(t, "second", images[0].Caption)
	require.Equal(t, "1", images[1].ID)
	require.Equal(t, 2024, images[1].UploadedAt.Year())
}

// Tests that a failure envelope surfaces the server's error text, and a bare
// one falls back to a generic message.
func TestParseImageList_Failure(t *testing.T) {
	_, _, err := ParseImageList(
		[]byte(`{"success": false, "error": "database is down"}`))
	require.EqualError(t, err, "database is down")

	_, _, err = ParseImageList([]byte(`{"success": false}`))
	require.EqualError(t, err, errListImages)
}

// Tests that malformed JSON is reported as such rather than as a server
// failure.
func TestParseImageList_Malformed(t *testing.T) {
	_, _, err := ParseImageList([]byte(`<html>502 Bad Gateway</html>`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "malformed")
}

// Tests decoding of a comment list and of an empty one.
func TestParseCommentList(t *testing.T) {
	data := []byte(`{
		"success": true,
		"comments": [
			{"id": "c1", "username": "An", "text": "Nice!",
			 "created_at": "2024-05-15T10:00:00Z"}
		]
	}`)

	comments, err := ParseCommentList(data)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "An", comments[0].Username)

	comments, err = ParseCommentList(
		[]byte(`{"success": true, "comments": []}`))
	require.NoError(t, err)
	require.Empty(t, comments)
}

// Tests the mutation envelope in all three shapes: success with message,
// failure with error, and failure without one.
func TestParseStatus(t *testing.T) {
	message, err := ParseStatus(
		[]byte(`{"success": true, "message": "Photo deleted"}`))
	require.NoError(t, err)
	require.Equal(t, "Photo deleted", message)

	_, err = ParseStatus(
		[]byte(`{"success": false, "error": "file too large"}`))
	require.EqualError(t, err, "file too large")

	_, err = ParseStatus([]byte(`{"success": false}`))
	require.EqualError(t, err, errGeneric)
}
