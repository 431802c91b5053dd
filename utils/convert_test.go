////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package utils

import (
	"bytes"
	"testing"
)

// Tests that bytes copied to Javascript with CopyBytesToJS and copied back
// with CopyBytesToGo match the original.
func TestCopyBytesToJS_CopyBytesToGo(t *testing.T) {
	values := [][]byte{
		[]byte("some value"),
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{},
	}

	for i, value := range values {
		jsArray := CopyBytesToJS(value)

		if !jsArray.InstanceOf(Uint8Array) {
			t.Errorf("Value %d is not a Uint8Array: %v", i, jsArray)
		}
		if jsArray.Length() != len(value) {
			t.Errorf("Wrong length for value %d."+
				"\nexpected: %d\nreceived: %d",
				i, len(value), jsArray.Length())
		}

		copied := CopyBytesToGo(jsArray)
		if !bytes.Equal(value, copied) {
			t.Errorf("Copied value %d does not match original."+
				"\nexpected: %v\nreceived: %v", i, value, copied)
		}
	}
}

// Tests that a JSON object converted with JsonToJS and converted back with
// JsToJson matches the original.
func TestJsonToJS_JsToJson(t *testing.T) {
	inputJSON := []byte(`{"id":"abc123","count":5}`)

	jsObj, err := JsonToJS(inputJSON)
	if err != nil {
		t.Fatalf("Failed to convert JSON to a Javascript object: %+v", err)
	}

	if id := jsObj.Get("id").String(); id != "abc123" {
		t.Errorf("Wrong id field.\nexpected: %q\nreceived: %q", "abc123", id)
	}
	if count := jsObj.Get("count").Int(); count != 5 {
		t.Errorf("Wrong count field.\nexpected: %d\nreceived: %d", 5, count)
	}
}
