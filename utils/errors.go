////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package utils

import (
	"fmt"
	"syscall/js"
)

// JsError converts the error to a Javascript Error.
func JsError(err error) js.Value {
	return Error.New(err.Error())
}

// JsTrace converts the error to a Javascript Error that includes the error's
// stack trace.
func JsTrace(err error) js.Value {
	return Error.New(fmt.Sprintf("%+v", err))
}

// JsErrorMessage extracts a printable message from a rejected promise's
// arguments. The rejection reason is usually an Error object, but Javascript
// allows any value to be thrown.
func JsErrorMessage(rejection []js.Value) string {
	if len(rejection) == 0 {
		return "unknown Javascript error"
	}

	reason := rejection[0]
	if reason.Type() == js.TypeObject {
		if msg := reason.Get("message"); msg.Type() == js.TypeString {
			return msg.String()
		}
	}

	return JsToJson(reason)
}

// Throw throws a Javascript exception of the given type. It never returns.
func Throw(exception Exception, err error) {
	throw(exception, fmt.Sprintf("%+v", err))
}

func throw(_ Exception, message string) {
	panic(message)
}

// Exception are the possible Javascript error types that can be thrown.
type Exception string

const (
	// RangeError occurs when a numeric variable or parameter is outside its
	// valid range.
	RangeError Exception = "RangeError"

	// TypeError occurs when an operation could not be performed, typically
	// (but not exclusively) when a value is not of the expected type.
	TypeError Exception = "TypeError"
)
