////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package api

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Generic fallback error strings used when the server does not supply one.
// Absence of success:true is treated uniformly as failure regardless of the
// HTTP status.
const (
	errListImages  = "could not load images"
	errListComment = "could not load comments"
	errGeneric     = "request failed"
)

// ParseImageList decodes the GET /images envelope and returns the records in
// server-provided order along with the server's count.
func ParseImageList(data []byte) ([]ImageRecord, int, error) {
	var resp imageListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, 0, errors.Wrap(err, "malformed image list response")
	}
	if !resp.Success {
		return nil, 0, errors.New(serverError(resp.Error, errListImages))
	}
	return resp.Images, resp.Count, nil
}

// ParseCommentList decodes the comment list envelope for one image.
func ParseCommentList(data []byte) ([]CommentRecord, error) {
	var resp commentListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Wrap(err, "malformed comment list response")
	}
	if !resp.Success {
		return nil, errors.New(serverError(resp.Error, errListComment))
	}
	return resp.Comments, nil
}

// ParseStatus decodes a mutation envelope and returns the server's success
// message. On failure, the error carries the server-provided error text
// verbatim when present, else a generic fallback.
func ParseStatus(data []byte) (string, error) {
	var resp statusResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", errors.Wrap(err, "malformed response")
	}
	if !resp.Success {
		return "", errors.New(serverError(resp.Error, errGeneric))
	}
	return resp.Message, nil
}

// serverError returns the server-provided error text, or the fallback when
// the server supplied none.
func serverError(serverErr, fallback string) string {
	if serverErr != "" {
		return serverErr
	}
	return fallback
}
