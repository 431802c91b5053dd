////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// package main is its own utility that is compiled separate from the WASM
// bundle. It scans a directory of audio files and writes the JSON playlist
// manifest the in-browser music player loads on startup.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Flag variables.
var (
	musicDir, basePath, outputPath, logFile string
	logLevel                                int
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var cmd = &cobra.Command{
	Use: "buildPlaylist",
	Short: "Scans a directory of audio files and writes the JSON playlist " +
		"manifest consumed by the gallery's music player. Refer to the " +
		"flags for details.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {

		// Initialize the logging
		initLog(jww.Threshold(logLevel), logFile)

		jww.INFO.Printf("Scanning music directory %s", musicDir)
		entries, err := os.ReadDir(musicDir)
		if err != nil {
			jww.FATAL.Panicf("Failed to read music directory: %+v", err)
		}

		filenames := make([]string, 0, len(entries))
		for _, entry := range entries {
			if !entry.IsDir() {
				filenames = append(filenames, entry.Name())
			}
		}

		tracks := BuildManifest(filenames, basePath)
		if len(tracks) == 0 {
			jww.WARN.Printf("No audio files found in %s", musicDir)
		}

		manifestJSON, err := json.MarshalIndent(tracks, "", "  ")
		if err != nil {
			jww.FATAL.Panicf("Failed to encode manifest: %+v", err)
		}

		if err = os.WriteFile(outputPath, manifestJSON, 0644); err != nil {
			jww.FATAL.Panicf(
				"Failed to write manifest to %s: %+v", outputPath, err)
		}

		jww.INFO.Printf("Wrote manifest of %d tracks to %s",
			len(tracks), outputPath)
	},
}

// init is the initialization function for Cobra which defines flags.
func init() {
	cmd.Flags().StringVarP(&musicDir, "dir", "d", "static/music",
		"Directory to scan for audio files.")
	cmd.Flags().StringVarP(&basePath, "base", "b", "/static/music",
		"URL prefix the page serves the music directory under.")
	cmd.Flags().StringVarP(&outputPath, "output", "o",
		"static/music/playlist.json", "Output JSON manifest path.")
	cmd.Flags().StringVarP(&logFile, "log", "l", "-",
		"Log output path. By default, logs are printed to stdout. "+
			"To disable logging, set this to empty (\"\").")
	cmd.Flags().IntVarP(&logLevel, "logLevel", "v", 4,
		"Verbosity level of logging. 0 = TRACE, 1 = DEBUG, 2 = INFO, "+
			"3 = WARN, 4 = ERROR, 5 = CRITICAL, 6 = FATAL")
}

// initLog will enable JWW logging to the given log path with the given
// threshold. If log path is empty, then logging is not enabled. Panics if the
// log file cannot be opened or if the threshold is invalid.
func initLog(threshold jww.Threshold, logPath string) {
	if logPath == "" {
		// Do not enable logging if no log file is set
		return
	} else if logPath != "-" {
		// Set the log file if stdout is not selected

		// Disable stdout output
		jww.SetStdoutOutput(io.Discard)

		// Use log file
		logOutput, err :=
			os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}
		jww.SetLogOutput(logOutput)
	}

	if threshold < jww.LevelTrace || threshold > jww.LevelFatal {
		panic("Invalid log threshold: " + strconv.Itoa(int(threshold)))
	}

	// Display microseconds if the threshold is set to TRACE or DEBUG
	if threshold == jww.LevelTrace || threshold == jww.LevelDebug {
		jww.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}

	// Enable logging
	jww.SetStdoutThreshold(threshold)
	jww.SetLogThreshold(threshold)
	jww.INFO.Printf("Log level set to: %s", threshold)
}
