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
	"testing"

	"github.com/pkg/errors"
)

// Tests that JsError returns a Javascript Error object with the expected
// message.
func TestJsError(t *testing.T) {
	err := errors.New("test error")
	expectedErr := err.Error()
	jsError := JsError(err).Get("message").String()

	if jsError != expectedErr {
		t.Errorf("Failed to get expected error message."+
			"\nexpected: %s\nreceived: %s", expectedErr, jsError)
	}
}

// Tests that JsTrace returns a Javascript Error object with the expected
// message and stack trace.
func TestJsTrace(t *testing.T) {
	err := errors.New("test error")
	expectedErr := fmt.Sprintf("%+v", err)
	jsError := JsTrace(err).Get("message").String()

	if jsError != expectedErr {
		t.Errorf("Failed to get expected error message."+
			"\nexpected: %s\nreceived: %s", expectedErr, jsError)
	}
}

// Tests that JsErrorMessage extracts the message from an Error rejection,
// stringifies a non-Error rejection, and falls back on an empty rejection.
func TestJsErrorMessage(t *testing.T) {
	err := errors.New("rejection reason")
	message := JsErrorMessage([]js.Value{JsError(err)})
	if message != err.Error() {
		t.Errorf("Failed to get message from Error rejection."+
			"\nexpected: %s\nreceived: %s", err.Error(), message)
	}

	message = JsErrorMessage([]js.Value{js.ValueOf(42)})
	if message != "42" {
		t.Errorf("Failed to stringify non-Error rejection."+
			"\nexpected: %s\nreceived: %s", "42", message)
	}

	message = JsErrorMessage(nil)
	if message != "unknown Javascript error" {
		t.Errorf("Wrong fallback for empty rejection: %s", message)
	}
}
