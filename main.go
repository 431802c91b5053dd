////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package main

import (
	"os"
	"os/signal"
	"syscall"
	"syscall/js"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/memoria/memoria-wasm/logging"
	"gitlab.com/memoria/memoria-wasm/storage"
	"gitlab.com/memoria/memoria-wasm/wasm"
)

func main() {
	logging.InitLogger(jww.LevelInfo)

	if err := storage.CheckAndStoreVersion(); err != nil {
		jww.FATAL.Panicf("Failed to check stored version: %+v", err)
	}

	wasm.Start()

	// wasm/gallery.go
	js.Global().Set("refreshGallery", js.FuncOf(wasm.RefreshGallery))
	js.Global().Set("downloadImageByIndex",
		js.FuncOf(wasm.DownloadImageByIndex))
	js.Global().Set("showDeleteConfirm", js.FuncOf(wasm.ShowDeleteConfirm))
	js.Global().Set("closeModal", js.FuncOf(wasm.CloseModal))
	js.Global().Set("confirmDelete", js.FuncOf(wasm.ConfirmDelete))

	// wasm/lightbox.go
	js.Global().Set("openLightbox", js.FuncOf(wasm.OpenLightbox))
	js.Global().Set("closeLightbox", js.FuncOf(wasm.CloseLightbox))
	js.Global().Set("navigateLightbox", js.FuncOf(wasm.NavigateLightbox))
	js.Global().Set("downloadCurrentImage",
		js.FuncOf(wasm.DownloadCurrentImage))
	js.Global().Set("deleteFromLightbox", js.FuncOf(wasm.DeleteFromLightbox))
	js.Global().Set("toggleZoom", js.FuncOf(wasm.ToggleZoom))

	// wasm/slideshow.go
	js.Global().Set("startSlideshow", js.FuncOf(wasm.StartSlideshow))
	js.Global().Set("stopSlideshow", js.FuncOf(wasm.StopSlideshow))
	js.Global().Set("toggleSlideshow", js.FuncOf(wasm.ToggleSlideshow))
	js.Global().Set("nextSlide", js.FuncOf(wasm.NextSlide))
	js.Global().Set("previousSlide", js.FuncOf(wasm.PreviousSlide))

	// wasm/comments.go
	js.Global().Set("loadComments", js.FuncOf(wasm.LoadComments))
	js.Global().Set("initCommentForm", js.FuncOf(wasm.InitCommentForm))
	js.Global().Set("addComment", js.FuncOf(wasm.AddComment))
	js.Global().Set("deleteComment", js.FuncOf(wasm.DeleteComment))

	// wasm/music.go
	js.Global().Set("toggleMusicMenu", js.FuncOf(wasm.ToggleMusicMenu))
	js.Global().Set("toggleMusicPlayPause",
		js.FuncOf(wasm.ToggleMusicPlayPause))
	js.Global().Set("changeMusic", js.FuncOf(wasm.ChangeMusic))
	js.Global().Set("playMusic", js.FuncOf(wasm.PlayMusic))
	js.Global().Set("pauseMusic", js.FuncOf(wasm.PauseMusic))

	// wasm/storage.go
	js.Global().Set("resetPreferences", js.FuncOf(wasm.ResetPreferences))
	js.Global().Set("purgeState", js.FuncOf(wasm.PurgeState))

	// wasm/logging.go
	js.Global().Set("getRecentLogs", js.FuncOf(wasm.GetRecentLogs))
	js.Global().Set("logLevel", js.FuncOf(wasm.LogLevel))

	// wasm/version.go
	js.Global().Set("getVersion", js.FuncOf(wasm.GetVersion))

	// Wait until the user terminates the program
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	os.Exit(0)
}
