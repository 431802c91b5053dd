////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package music implements the background music player. Playback runs on a
// single hidden Audio element; the selected track, volume, and playing flag
// persist in localStorage so the mood survives page loads.
package music

import (
	"fmt"
	"strconv"
	"syscall/js"

	jsoniter "github.com/json-iterator/go"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/memoria/memoria-wasm/banner"
	"gitlab.com/memoria/memoria-wasm/storage"
	"gitlab.com/memoria/memoria-wasm/utils"
	"gitlab.com/memoria/memoria-wasm/view"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// playlistURL is the optional track manifest produced by the playlist tool.
// When it is missing or unreadable, the built-in track table is used.
const playlistURL = "/static/music/playlist.json"

// Element IDs the page provides.
const (
	playerID     = "musicPlayer"
	menuID       = "musicMenu"
	musicBtnID   = "musicBtn"
	playBtnID    = "musicPlayBtn"
	volSliderID  = "volumeSlider"
	volDisplayID = "volumeValue"
)

// Track is one entry of the background playlist.
type Track struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	File   string `json:"file"`
}

// defaultTracks is used until (or instead of) the playlist manifest.
var defaultTracks = []Track{
	{Number: 1, Title: "Gentle Memories", File: "/static/music/music1.mp3"},
	{Number: 2, Title: "Warm Afternoon", File: "/static/music/music2.mp3"},
	{Number: 3, Title: "Quiet Moments", File: "/static/music/music3.mp3"},
}

// Controller drives the music player widget.
type Controller struct {
	ui     *view.UIState
	tracks []Track

	// audio is the lazily created Audio element; js.Null until first play.
	audio js.Value

	current int
	volume  int
	playing bool

	onError js.Func
}

// New creates a music controller with the device's saved preferences.
func New(ui *view.UIState) *Controller {
	c := &Controller{
		ui:      ui,
		tracks:  defaultTracks,
		audio:   js.Null(),
		current: storage.LoadMusicTrack(),
		volume:  clampVolume(storage.LoadMusicVolume()),
	}
	if c.trackByNumber(c.current) == nil {
		c.current = storage.DefaultMusicTrack
	}

	c.onError = js.FuncOf(func(js.Value, []js.Value) any {
		jww.ERROR.Printf("Audio element failed to load track %d", c.current)
		banner.ShowError("Could not play music")
		c.playing = false
		storage.SaveMusicPlaying(false)
		c.updateControls()
		return nil
	})
	return c
}

// Init binds the volume slider, fetches the playlist manifest, and resumes
// playback if music was playing on the last page load. Autoplay may be
// blocked by the browser; the player then simply stays paused.
func (c *Controller) Init() {
	c.bindVolumeSlider()
	c.applyVolume()
	c.updateControls()
	c.markActiveTrack()

	go func() {
		c.loadPlaylist()
		if storage.LoadMusicPlaying() {
			c.Play()
		}
	}()
}

// IsPlaying reports whether music is currently playing.
func (c *Controller) IsPlaying() bool {
	return c.playing
}

// Play starts (or resumes) the selected track.
func (c *Controller) Play() {
	track := c.trackByNumber(c.current)
	if track == nil {
		return
	}

	audio := c.ensureAudio(track.File)
	promise := audio.Call("play")

	go func() {
		if _, err := utils.Await(promise); err != nil {
			// Usually autoplay rejection before the first user gesture
			jww.WARN.Printf("Playback of track %d refused: %s",
				track.Number, utils.JsErrorMessage(err))
			c.playing = false
			storage.SaveMusicPlaying(false)
			c.updateControls()
			return
		}

		jww.DEBUG.Printf("Playing track %d (%s)", track.Number, track.Title)
		c.playing = true
		storage.SaveMusicPlaying(true)
		c.updateControls()
	}()
}

// Pause pauses playback, keeping the position.
func (c *Controller) Pause() {
	if !c.audio.IsNull() {
		c.audio.Call("pause")
	}
	c.playing = false
	storage.SaveMusicPlaying(false)
	c.updateControls()
}

// Toggle flips between playing and paused.
func (c *Controller) Toggle() {
	if c.playing {
		c.Pause()
	} else {
		c.Play()
	}
}

// ChangeTrack switches to the numbered track. An unknown number is ignored.
// Playback carries over: if music was playing, the new track starts
// immediately.
func (c *Controller) ChangeTrack(number int) {
	track := c.trackByNumber(number)
	if track == nil {
		jww.WARN.Printf("Unknown track number %d", number)
		return
	}

	c.current = number
	storage.SaveMusicTrack(number)
	c.markActiveTrack()
	c.CloseMenu()

	if !c.audio.IsNull() {
		c.audio.Set("src", track.File)
	}
	if c.playing {
		c.Play()
	}
}

// SetVolume applies a slider volume percentage in [0, 100] and persists it.
func (c *Controller) SetVolume(volume int) {
	c.volume = clampVolume(volume)
	storage.SaveMusicVolume(c.volume)
	c.applyVolume()
}

// ToggleMenu opens or closes the track selection menu.
func (c *Controller) ToggleMenu() {
	menu := utils.GetElementByID(menuID)
	if menu.IsNull() {
		return
	}

	if c.MenuOpen() {
		c.CloseMenu()
		return
	}
	utils.AddClass(menu, "active")
	c.ui.Activate(view.ViewMusicMenu)
}

// CloseMenu closes the track selection menu if it is open.
func (c *Controller) CloseMenu() {
	menu := utils.GetElementByID(menuID)
	if menu.IsNull() {
		return
	}
	utils.RemoveClass(menu, "active")
	c.ui.Deactivate(view.ViewMusicMenu)
}

// MenuOpen reports whether the track selection menu is open.
func (c *Controller) MenuOpen() bool {
	menu := utils.GetElementByID(menuID)
	return !menu.IsNull() && utils.HasClass(menu, "active")
}

// ensureAudio creates the Audio element on first use and keeps its source in
// sync with the selected track.
func (c *Controller) ensureAudio(src string) js.Value {
	if c.audio.IsNull() {
		c.audio = js.Global().Get("Audio").New(src)
		c.audio.Set("loop", true)
		c.audio.Call("addEventListener", "error", c.onError)
		c.applyVolume()
		return c.audio
	}

	if c.audio.Get("src").String() != src &&
		!hasSuffixPath(c.audio.Get("src").String(), src) {
		c.audio.Set("src", src)
	}
	return c.audio
}

// hasSuffixPath reports whether the absolute audio src resolves to the
// relative manifest path.
func hasSuffixPath(absolute, relative string) bool {
	if len(absolute) < len(relative) {
		return false
	}
	return absolute[len(absolute)-len(relative):] == relative
}

// loadPlaylist replaces the built-in track table with the manifest written by
// the playlist tool. Any failure keeps the defaults. Blocking; must be called
// from a goroutine.
func (c *Controller) loadPlaylist() {
	promise := js.Global().Call("fetch", playlistURL)
	resp, err := utils.Await(promise)
	if err != nil || !resp[0].Get("ok").Bool() {
		jww.DEBUG.Printf("No playlist manifest at %s; using built-in tracks",
			playlistURL)
		return
	}

	body, err := utils.Await(resp[0].Call("text"))
	if err != nil {
		return
	}

	var tracks []Track
	if jsonErr := json.Unmarshal([]byte(body[0].String()), &tracks); jsonErr != nil {
		jww.WARN.Printf("Unreadable playlist manifest: %+v", jsonErr)
		return
	}
	if len(tracks) == 0 {
		return
	}

	c.tracks = tracks
	if c.trackByNumber(c.current) == nil {
		c.current = tracks[0].Number
	}
	c.markActiveTrack()
	jww.INFO.Printf("Loaded playlist manifest with %d tracks", len(tracks))
}

func (c *Controller) trackByNumber(number int) *Track {
	for i := range c.tracks {
		if c.tracks[i].Number == number {
			return &c.tracks[i]
		}
	}
	return nil
}

// bindVolumeSlider initialises the slider from the saved volume and applies
// slider movements live.
func (c *Controller) bindVolumeSlider() {
	slider := utils.GetElementByID(volSliderID)
	if slider.IsNull() {
		return
	}

	slider.Set("value", c.volume)
	utils.AddEventListener(slider, "input", func(js.Value) {
		volume, err := strconv.Atoi(slider.Get("value").String())
		if err != nil {
			return
		}
		c.SetVolume(volume)
	})
}

// applyVolume pushes the current volume to the Audio element and the label.
func (c *Controller) applyVolume() {
	if !c.audio.IsNull() {
		c.audio.Set("volume", float64(c.volume)/100)
	}
	if display := utils.GetElementByID(volDisplayID); !display.IsNull() {
		utils.SetText(display, fmt.Sprintf("%d%%", c.volume))
	}
}

// updateControls mirrors the playing state on the widget buttons.
func (c *Controller) updateControls() {
	if playBtn := utils.GetElementByID(playBtnID); !playBtn.IsNull() {
		if c.playing {
			utils.SetText(playBtn, "⏸️")
		} else {
			utils.SetText(playBtn, "▶️")
		}
	}

	if musicBtn := utils.GetElementByID(musicBtnID); !musicBtn.IsNull() {
		if c.playing {
			utils.AddClass(musicBtn, "playing")
		} else {
			utils.RemoveClass(musicBtn, "playing")
		}
	}
}

// markActiveTrack highlights the selected entry in the track menu.
func (c *Controller) markActiveTrack() {
	options := utils.QuerySelectorAll(".music-option")
	for i := 0; i < options.Length(); i++ {
		option := options.Index(i)
		number, err := strconv.Atoi(option.Get("dataset").Get("track").String())
		if err != nil {
			continue
		}
		if number == c.current {
			utils.AddClass(option, "active")
		} else {
			utils.RemoveClass(option, "active")
		}
	}
}

func clampVolume(volume int) int {
	if volume < 0 {
		return 0
	}
	if volume > 100 {
		return 100
	}
	return volume
}
