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
	"testing"

	"github.com/pkg/errors"
)

// Tests that a promise created by CreatePromise resolves to the value passed
// to resolve.
func TestCreatePromise_Resolve(t *testing.T) {
	expected := "expected result"
	promise := CreatePromise(
		func(resolve, reject func(args ...interface{}) js.Value) {
			resolve(expected)
		})

	result, awaitErr := Await(promise.(js.Value))
	if awaitErr != nil {
		t.Fatalf("Promise rejected: %s", JsErrorMessage(awaitErr))
	}

	if len(result) < 1 || result[0].String() != expected {
		t.Errorf("Failed to get expected result."+
			"\nexpected: %s\nreceived: %v", expected, result)
	}
}

// Tests that a promise created by CreatePromise rejects with the error
// passed to reject.
func TestCreatePromise_Reject(t *testing.T) {
	expected := errors.New("expected rejection")
	promise := CreatePromise(
		func(resolve, reject func(args ...interface{}) js.Value) {
			reject(JsError(expected))
		})

	result, awaitErr := Await(promise.(js.Value))
	if awaitErr == nil {
		t.Fatalf("Promise did not reject; resolved to %v", result)
	}

	if message := JsErrorMessage(awaitErr); message != expected.Error() {
		t.Errorf("Failed to get expected rejection."+
			"\nexpected: %s\nreceived: %s", expected.Error(), message)
	}
}
