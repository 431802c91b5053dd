////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package api implements the client for the remote image service's REST
// surface. Response parsing is kept free of any browser dependency so it can
// be tested on the host; the fetch transport lives in client.go.
package api

import (
	"time"
)

// ImageRecord is one uploaded photo as reported by the remote image service.
type ImageRecord struct {
	// ID is an opaque identifier, unique within a list snapshot.
	ID string `json:"id"`

	// URL is the resolvable location of the image asset.
	URL string `json:"url"`

	// Filename is the suggested name for client-initiated downloads.
	Filename string `json:"filename"`

	// Caption is optional free text shown with the image.
	Caption string `json:"caption"`

	// UploadedAt is used for relative-age display.
	UploadedAt time.Time `json:"uploaded_at"`
}

// CommentRecord is one text comment attached to an image. Comments are
// fetched per image on demand and never cached in the shared image list.
type CommentRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// imageListResponse is the envelope returned by GET /images.
type imageListResponse struct {
	Success bool          `json:"success"`
	Images  []ImageRecord `json:"images"`
	Count   int           `json:"count"`
	Error   string        `json:"error"`
}

// commentListResponse is the envelope returned by
// GET /images/{imageId}/comments.
type commentListResponse struct {
	Success  bool            `json:"success"`
	Comments []CommentRecord `json:"comments"`
	Error    string          `json:"error"`
}

// statusResponse is the envelope returned by every mutating endpoint.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
