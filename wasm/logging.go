////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package wasm

import (
	"syscall/js"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/memoria/memoria-wasm/logging"
	"gitlab.com/memoria/memoria-wasm/utils"
)

// GetRecentLogs returns the contents of the in-memory log buffer, for bug
// reports from the browser console.
//
// Returns a promise:
//   - Resolves to the log contents (Uint8Array).
//   - Rejected with a Javascript Error if logging was never initialised.
func GetRecentLogs(js.Value, []js.Value) interface{} {
	return utils.CreatePromise(
		func(resolve, reject func(args ...interface{}) js.Value) {
			logs := logging.GetRecentLogs()
			if logs == nil {
				reject(utils.JsError(
					errors.New("logging has not been initialised")))
				return
			}
			resolve(utils.CopyBytesToJS(logs))
		})
}

// LogLevel sets the log threshold. Levels below the threshold are dropped
// before they reach the console or the buffer.
//
// Parameters:
//   - args[0] - log level (int): 0 = TRACE through 6 = FATAL.
//
// Returns:
//   - Throws a TypeError if the log level is out of range.
func LogLevel(_ js.Value, args []js.Value) interface{} {
	threshold := jww.Threshold(args[0].Int())
	if threshold < jww.LevelTrace || threshold > jww.LevelFatal {
		err := errors.Errorf("log level is not valid: log level: %d", threshold)
		utils.Throw(utils.TypeError, err)
		return nil
	}

	logging.InitLogger(threshold)
	return nil
}
