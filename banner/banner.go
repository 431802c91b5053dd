////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package banner shows transient user-facing messages in the page's message
// area. Every failed operation ends in exactly one of these; nothing is ever
// surfaced as an unhandled rejection.
package banner

import (
	"time"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/memoria/memoria-wasm/format"
	"gitlab.com/memoria/memoria-wasm/utils"
)

// messageElementID is the element the banner renders into. Pages without it
// silently drop messages.
const messageElementID = "message"

// dismissAfter is how long a banner stays up before it clears itself.
const dismissAfter = 5 * time.Second

// dismissTimer is the pending clear for the currently shown banner. Showing
// a new banner cancels it so an old timer cannot clear a new message.
var dismissTimer *utils.Timeout

// Show displays a transient success banner.
func Show(text string) {
	show(text, "success")
}

// ShowError displays a transient error banner and logs the message.
func ShowError(text string) {
	jww.ERROR.Printf("User-visible error: %s", text)
	show(text, "error")
}

func show(text, kind string) {
	messageDiv := utils.GetElementByID(messageElementID)
	if messageDiv.IsNull() {
		return
	}

	utils.SetInnerHTML(messageDiv, `<div class="message `+kind+`">`+
		format.EscapeHTML(text)+`</div>`)

	dismissTimer.Stop()
	dismissTimer = utils.NewTimeout(func() {
		utils.SetInnerHTML(messageDiv, "")
	}, dismissAfter)
}
