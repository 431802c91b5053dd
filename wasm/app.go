////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package wasm exposes the gallery's controllers to Javascript as the global
// functions the pages' inline onclick handlers call. Every binding has the
// js.FuncOf signature and delegates to a controller method.
package wasm

import (
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/memoria/memoria-wasm/api"
	"gitlab.com/memoria/memoria-wasm/cache"
	"gitlab.com/memoria/memoria-wasm/comments"
	"gitlab.com/memoria/memoria-wasm/gallery"
	"gitlab.com/memoria/memoria-wasm/input"
	"gitlab.com/memoria/memoria-wasm/lightbox"
	"gitlab.com/memoria/memoria-wasm/music"
	"gitlab.com/memoria/memoria-wasm/slideshow"
	"gitlab.com/memoria/memoria-wasm/upload"
	"gitlab.com/memoria/memoria-wasm/utils"
	"gitlab.com/memoria/memoria-wasm/view"
)

// app holds the one controller graph for the page. Populated by Start.
type app struct {
	client    *api.Client
	store     *view.Store
	ui        *view.UIState
	gallery   *gallery.Controller
	lightbox  *lightbox.Controller
	slideshow *slideshow.Controller
	comments  *comments.Controller
	music     *music.Controller
	upload    *upload.Controller
	router    *input.Router
}

var a *app

// Start builds the controller graph, wires the cross-controller hooks,
// installs the document event router, and initialises whichever page
// features the current document carries.
func Start() {
	client := api.NewClient()
	store := view.NewStore()
	ui := view.NewUIState()

	// A failed IndexedDB open only costs the instant first paint
	snapshot, err := cache.NewSnapshot()
	if err != nil {
		jww.WARN.Printf("IndexedDb unavailable, skipping snapshot: %+v", err)
		snapshot = nil
	}

	a = &app{
		client:    client,
		store:     store,
		ui:        ui,
		gallery:   gallery.New(client, store, ui, snapshot),
		lightbox:  lightbox.New(client, store, ui),
		slideshow: slideshow.New(store, ui),
		comments:  comments.New(client),
		music:     music.New(ui),
		upload:    upload.New(client),
	}

	// The viewer hands deletes back to the gallery's confirmation flow
	a.lightbox.RequestDelete = a.gallery.ShowDeleteConfirm

	a.router = input.NewRouter(ui, a.gallery, a.lightbox, a.slideshow, a.music)
	a.router.Install()

	a.music.Init()

	if !utils.GetElementByID("gallery").IsNull() {
		a.gallery.Init()
	}
	if !utils.GetElementByID("uploadForm").IsNull() {
		a.upload.Init()
	}

	jww.INFO.Print("Memoria controllers started")
}
