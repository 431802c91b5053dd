////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package api

import (
	"syscall/js"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/memoria/memoria-wasm/utils"
)

// Client talks to the remote image service over the browser's fetch API. All
// methods block until the request settles, so they must be called from a
// goroutine, never directly from a Javascript callback.
type Client struct {
	baseURL string
}

// NewClient returns a Client rooted at the page's origin.
func NewClient() *Client {
	return &Client{baseURL: js.Global().Get("location").Get("origin").String()}
}

// NewClientWithBase returns a Client rooted at the given base URL.
func NewClientWithBase(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// ListImages fetches the full image list in server-provided order.
func (c *Client) ListImages() ([]ImageRecord, int, error) {
	data, err := c.fetch("GET", c.baseURL+"/images")
	if err != nil {
		return nil, 0, err
	}
	return ParseImageList(data)
}

// Upload submits the file (a Javascript File object) and caption as multipart
// form data. Returns the server's success message.
func (c *Client) Upload(file js.Value, caption string) (string, error) {
	formData := js.Global().Get("FormData").New()
	formData.Call("append", "file", file)
	formData.Call("append", "caption", caption)

	opts := js.ValueOf(map[string]any{"method": "POST"})
	opts.Set("body", formData)

	data, err := c.fetchOpts(c.baseURL+"/upload", opts)
	if err != nil {
		return "", err
	}
	return ParseStatus(data)
}

// DeleteImage removes the image with the given ID. Returns the server's
// success message.
func (c *Client) DeleteImage(imageID string) (string, error) {
	data, err := c.fetch("DELETE", c.baseURL+"/delete/"+imageID)
	if err != nil {
		return "", err
	}
	return ParseStatus(data)
}

// ListComments fetches all comments for one image.
func (c *Client) ListComments(imageID string) ([]CommentRecord, error) {
	data, err := c.fetch("GET", c.baseURL+"/images/"+imageID+"/comments")
	if err != nil {
		return nil, err
	}
	return ParseCommentList(data)
}

// AddComment posts a new comment on the image. Returns the server's success
// message.
func (c *Client) AddComment(imageID, username, text string) (string, error) {
	payload, err := json.Marshal(
		map[string]string{"username": username, "text": text})
	if err != nil {
		return "", errors.Wrap(err, "could not encode comment")
	}

	opts := js.ValueOf(map[string]any{
		"method": "POST",
		"headers": map[string]any{
			"Content-Type": "application/json",
		},
		"body": string(payload),
	})

	data, err := c.fetchOpts(c.baseURL+"/images/"+imageID+"/comments", opts)
	if err != nil {
		return "", err
	}
	return ParseStatus(data)
}

// DeleteComment removes one comment from an image. Returns the server's
// success message.
func (c *Client) DeleteComment(imageID, commentID string) (string, error) {
	data, err := c.fetch(
		"DELETE", c.baseURL+"/images/"+imageID+"/comments/"+commentID)
	if err != nil {
		return "", err
	}
	return ParseStatus(data)
}

// DownloadImage fetches the asset and hands it to the browser as a file
// download via a temporary object URL and a synthetic anchor click.
func (c *Client) DownloadImage(url, filename string) error {
	result, rejection := utils.Await(js.Global().Call("fetch", url))
	if rejection != nil {
		return errors.Errorf(
			"download fetch failed: %s", utils.JsErrorMessage(rejection))
	}

	blobResult, rejection := utils.Await(result[0].Call("blob"))
	if rejection != nil {
		return errors.Errorf(
			"could not read image data: %s", utils.JsErrorMessage(rejection))
	}

	urlObj := js.Global().Get("URL")
	blobURL := urlObj.Call("createObjectURL", blobResult[0])

	anchor := utils.Document.Call("createElement", "a")
	anchor.Set("href", blobURL)
	anchor.Set("download", filename)
	body := utils.Document.Get("body")
	body.Call("appendChild", anchor)
	anchor.Call("click")
	body.Call("removeChild", anchor)
	urlObj.Call("revokeObjectURL", blobURL)

	jww.DEBUG.Printf("Downloaded %q as %q", url, filename)
	return nil
}

// fetch performs a request with the given method and no body, returning the
// raw response body.
func (c *Client) fetch(method, url string) ([]byte, error) {
	return c.fetchOpts(url, js.ValueOf(map[string]any{"method": method}))
}

// fetchOpts performs a fetch with the given options object and returns the
// raw response body. Network-level failures (fetch rejections) are converted
// to Go errors; HTTP status is deliberately ignored since the envelope's
// success flag is the only discriminator.
func (c *Client) fetchOpts(url string, opts js.Value) ([]byte, error) {
	result, rejection := utils.Await(js.Global().Call("fetch", url, opts))
	if rejection != nil {
		return nil, errors.Errorf(
			"request to %s failed: %s", url, utils.JsErrorMessage(rejection))
	}

	textResult, rejection := utils.Await(result[0].Call("text"))
	if rejection != nil {
		return nil, errors.Errorf("could not read response from %s: %s",
			url, utils.JsErrorMessage(rejection))
	}

	return []byte(textResult[0].String()), nil
}
