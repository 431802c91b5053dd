////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package logging

import (
	"io"

	"github.com/armon/circbuf"
	jww "github.com/spf13/jwalterweatherman"
)

// recentLogMaxSize is the size, in bytes, of the in-memory buffer that
// retains the most recent log output for diagnostics. Older logs are
// overwritten once the buffer is full.
const recentLogMaxSize = 64 * 1024

// recentLogs retains the tail of the log output so it can be exported to
// Javascript for bug reports without any file system.
var recentLogs *RecentLogListener

// InitLogger redirects all jwalterweatherman logging at or above the
// threshold to the Javascript console and to the in-memory recent-log
// buffer. It is called once at startup, before any other package logs;
// calling it again (to change the threshold) replaces the listeners and
// empties the recent-log buffer.
func InitLogger(threshold jww.Threshold) {
	recentLogs = NewRecentLogListener(threshold)
	consoleLog := NewJsConsoleLogListener(threshold)

	jww.SetLogListeners(consoleLog.Listen, recentLogs.Listen)
	jww.SetStdoutThreshold(jww.LevelFatal)

	jww.INFO.Printf("Logging initialised at threshold %d", threshold)
}

// GetRecentLogs returns the contents of the recent-log buffer. Returns nil if
// InitLogger has not been called.
func GetRecentLogs() []byte {
	if recentLogs == nil {
		return nil
	}
	return recentLogs.Bytes()
}

// RecentLogListener stores the most recent log output in a circular buffer,
// overwriting the oldest entries once full.
type RecentLogListener struct {
	threshold jww.Threshold
	b         *circbuf.Buffer
}

// NewRecentLogListener initialises a new [RecentLogListener] at the given
// threshold.
func NewRecentLogListener(threshold jww.Threshold) *RecentLogListener {
	// NewBuffer only errors on a non-positive size
	b, _ := circbuf.NewBuffer(recentLogMaxSize)
	return &RecentLogListener{
		threshold: threshold,
		b:         b,
	}
}

// Listen is called for every logging event. This function adheres to the
// [jwalterweatherman.LogListener] type.
func (rl *RecentLogListener) Listen(t jww.Threshold) io.Writer {
	if t < rl.threshold {
		return nil
	}
	return rl.b
}

// Bytes returns the retained log output, oldest first.
func (rl *RecentLogListener) Bytes() []byte {
	return rl.b.Bytes()
}
