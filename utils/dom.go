////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package utils

import (
	"syscall/js"
)

var (
	// Document is the Javascript document object for the current page.
	//
	//  - Documentation:
	//    https://developer.mozilla.org/en-US/docs/Web/API/Document
	Document = js.Global().Get("document")

	// Window is the Javascript global window object.
	//
	//  - Documentation:
	//    https://developer.mozilla.org/en-US/docs/Web/API/Window
	Window = js.Global()
)

// GetElementByID returns the element with the given ID or [js.Null] if no such
// element exists. Underneath, it calls document.getElementById().
//
//  - Documentation:
//    https://developer.mozilla.org/en-US/docs/Web/API/Document/getElementById
func GetElementByID(id string) js.Value {
	return Document.Call("getElementById", id)
}

// QuerySelector returns the first element matching the given CSS selector or
// [js.Null] if there is no match.
//
//  - Documentation:
//    https://developer.mozilla.org/en-US/docs/Web/API/Document/querySelector
func QuerySelector(selector string) js.Value {
	return Document.Call("querySelector", selector)
}

// QuerySelectorAll returns a static NodeList of all elements matching the
// given CSS selector.
//
//  - Documentation:
//    https://developer.mozilla.org/en-US/docs/Web/API/Document/querySelectorAll
func QuerySelectorAll(selector string) js.Value {
	return Document.Call("querySelectorAll", selector)
}

// AddClass adds the class to the element's class list.
func AddClass(element js.Value, class string) {
	element.Get("classList").Call("add", class)
}

// RemoveClass removes the class from the element's class list.
func RemoveClass(element js.Value, class string) {
	element.Get("classList").Call("remove", class)
}

// HasClass reports whether the element's class list contains the class.
func HasClass(element js.Value, class string) bool {
	return element.Get("classList").Call("contains", class).Bool()
}

// SetText sets the element's textContent property.
func SetText(element js.Value, text string) {
	element.Set("textContent", text)
}

// SetInnerHTML sets the element's innerHTML property. The caller is
// responsible for escaping any untrusted text placed in the markup.
func SetInnerHTML(element js.Value, html string) {
	element.Set("innerHTML", html)
}

// SetStyle sets a single CSS property on the element's inline style. The
// property name uses the camelCase form (e.g. "animationDelay").
func SetStyle(element js.Value, property, value string) {
	element.Get("style").Set(property, value)
}

// AddEventListener attaches the handler to the target for the given event
// type. The returned [js.Func] must be released once the listener is no
// longer needed.
//
//  - Documentation:
//    https://developer.mozilla.org/en-US/docs/Web/API/EventTarget/addEventListener
func AddEventListener(
	target js.Value, event string, handler func(event js.Value)) js.Func {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			handler(args[0])
		} else {
			handler(js.Undefined())
		}
		return nil
	})
	target.Call("addEventListener", event, fn)
	return fn
}

// LockBodyScroll disables page scrolling while a modal viewer is open.
func LockBodyScroll() {
	SetStyle(Document.Get("body"), "overflow", "hidden")
}

// UnlockBodyScroll restores page scrolling after a modal viewer closes.
func UnlockBodyScroll() {
	SetStyle(Document.Get("body"), "overflow", "")
}

// Confirm shows the browser's blocking confirmation dialog and reports the
// user's choice. Underneath, it calls window.confirm().
//
//  - Documentation:
//    https://developer.mozilla.org/en-US/docs/Web/API/Window/confirm
func Confirm(question string) bool {
	return Window.Call("confirm", question).Bool()
}

// PreloadImage starts a background fetch of the image asset at the given URL
// by assigning it to a detached Image element.
func PreloadImage(url string) {
	img := js.Global().Get("Image").New()
	img.Set("src", url)
}
