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
	"time"
)

// Interval wraps a Javascript interval timer. Every view that starts an
// Interval must stop it on teardown so no ticks fire against a torn-down
// view.
//
//  - Documentation:
//    https://developer.mozilla.org/en-US/docs/Web/API/Window/setInterval
type Interval struct {
	id js.Value
	fn js.Func
}

// NewInterval schedules f to run every period until Stop is called.
func NewInterval(f func(), period time.Duration) *Interval {
	fn := js.FuncOf(func(js.Value, []js.Value) any {
		f()
		return nil
	})
	id := js.Global().Call("setInterval", fn, period.Milliseconds())
	return &Interval{id: id, fn: fn}
}

// Stop clears the interval and releases its callback. It is safe to call on a
// nil Interval.
func (i *Interval) Stop() {
	if i == nil {
		return
	}
	js.Global().Call("clearInterval", i.id)
	i.fn.Release()
}

// Timeout wraps a Javascript one-shot timer.
//
//  - Documentation:
//    https://developer.mozilla.org/en-US/docs/Web/API/Window/setTimeout
type Timeout struct {
	id    js.Value
	fn    js.Func
	fired bool
}

// NewTimeout schedules f to run once after delay. The callback releases
// itself after firing.
func NewTimeout(f func(), delay time.Duration) *Timeout {
	t := &Timeout{}
	t.fn = js.FuncOf(func(js.Value, []js.Value) any {
		t.fired = true
		f()
		t.fn.Release()
		return nil
	})
	t.id = js.Global().Call("setTimeout", t.fn, delay.Milliseconds())
	return t
}

// Stop cancels the timeout if it has not fired yet. It is safe to call on a
// nil Timeout.
func (t *Timeout) Stop() {
	if t == nil || t.fired {
		return
	}
	js.Global().Call("clearTimeout", t.id)
	t.fn.Release()
	t.fired = true
}
