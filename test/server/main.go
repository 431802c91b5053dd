////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// A local development server for exercising the WASM bundle without the real
// image service. It serves the working directory as static files and stubs
// the image service's REST surface with in-memory sample data.

package main

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const port = "9090"

type imageRecord struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	Caption    string    `json:"caption"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type commentRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// stub is the in-memory stand-in for the image service.
type stub struct {
	mu       sync.Mutex
	images   []imageRecord
	comments map[string][]commentRecord
	uploads  map[string][]byte
	nextID   int
}

func newStub() *stub {
	now := time.Now()
	return &stub{
		images: []imageRecord{
			{ID: "1", URL: "https://picsum.photos/id/1015/800/600",
				Filename: "river.jpg", Caption: "Morning at the river",
				UploadedAt: now.Add(-26 * time.Hour)},
			{ID: "2", URL: "https://picsum.photos/id/1025/800/600",
				Filename: "puppy.jpg", Caption: "",
				UploadedAt: now.Add(-3 * 24 * time.Hour)},
			{ID: "3", URL: "https://picsum.photos/id/1040/800/600",
				Filename: "castle.jpg", Caption: "Weekend trip",
				UploadedAt: now.Add(-40 * 24 * time.Hour)},
		},
		comments: map[string][]commentRecord{
			"1": {{ID: "c1", Username: "An", Text: "Love this one!",
				CreatedAt: now.Add(-2 * time.Hour)}},
		},
		uploads: map[string][]byte{},
		nextID:  4,
	}
}

func main() {
	s := newStub()

	r := chi.NewRouter()
	r.Use(chiMiddleware.Logger)

	r.Get("/images", s.listImages)
	r.Post("/upload", s.upload)
	r.Delete("/delete/{imageID}", s.deleteImage)

	r.Route("/images/{imageID}/comments", func(r chi.Router) {
		r.Get("/", s.listComments)
		r.Post("/", s.addComment)
		r.Delete("/{commentID}", s.deleteComment)
	})

	r.Get("/uploads/{imageID}", s.serveUpload)

	// Everything else is the static site (pages, wasm bundle, music)
	r.NotFound(http.FileServer(http.Dir("")).ServeHTTP)

	fmt.Printf("Starting stub server on port %s\n", port)
	fmt.Printf("\thttp://localhost:%s\n", port)

	if err := http.ListenAndServe(":"+port, r); err != nil {
		panic(fmt.Sprintf("Failed to start server: %+v", err))
	}
}

func (s *stub) listImages(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, map[string]any{
		"success": true,
		"images":  s.images,
		"count":   len(s.images),
	})
}

func (s *stub) upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "No file in request")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, "Could not read file")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextID)
	s.nextID++
	s.uploads[id] = data
	s.images = append([]imageRecord{{
		ID:         id,
		URL:        "/uploads/" + id,
		Filename:   header.Filename,
		Caption:    r.FormValue("caption"),
		UploadedAt: time.Now(),
	}}, s.images...)

	writeJSON(w, map[string]any{
		"success": true,
		"message": "Photo uploaded",
	})
}

func (s *stub) deleteImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, img := range s.images {
		if img.ID == imageID {
			s.images = append(s.images[:i], s.images[i+1:]...)
			delete(s.comments, imageID)
			delete(s.uploads, imageID)
			writeJSON(w, map[string]any{
				"success": true,
				"message": "Photo deleted",
			})
			return
		}
	}
	writeError(w, "Image not found")
}

func (s *stub) listComments(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.comments[imageID]
	if records == nil {
		records = []commentRecord{}
	}
	writeJSON(w, map[string]any{
		"success":  true,
		"comments": records,
	})
}

func (s *stub) addComment(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	var payload struct {
		Username string `json:"username"`
		Text     string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, "Malformed comment")
		return
	}
	if payload.Text == "" {
		writeError(w, "Comment text is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := "c" + strconv.Itoa(s.nextID)
	s.nextID++
	s.comments[imageID] = append(s.comments[imageID], commentRecord{
		ID:        id,
		Username:  payload.Username,
		Text:      payload.Text,
		CreatedAt: time.Now(),
	})

	writeJSON(w, map[string]any{
		"success": true,
		"message": "Comment added",
	})
}

func (s *stub) deleteComment(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")
	commentID := chi.URLParam(r, "commentID")

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.comments[imageID]
	for i, record := range records {
		if record.ID == commentID {
			s.comments[imageID] = append(records[:i], records[i+1:]...)
			writeJSON(w, map[string]any{
				"success": true,
				"message": "Comment deleted",
			})
			return
		}
	}
	writeError(w, "Comment not found")
}

func (s *stub) serveUpload(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	s.mu.Lock()
	data, ok := s.uploads[imageID]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, message string) {
	writeJSON(w, map[string]any{
		"success": false,
		"error":   message,
	})
}
