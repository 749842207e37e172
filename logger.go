package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// setupLogging writes to stderr and, when logDir is set, to a timestamped
// file inside it. Debug enables debug level output.
func setupLogging(debug bool, logDir string) (zerolog.Logger, func()) {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	closeFn := func() {}

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "could not create log directory: %v\n", err)
		} else {
			ts := time.Now().Format("20060102-150405")
			f, err := os.Create(filepath.Join(logDir, fmt.Sprintf("imstyles-%s.log", ts)))
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not create log file: %v\n", err)
			} else {
				out = zerolog.MultiLevelWriter(out, f)
				closeFn = func() { _ = f.Close() }
			}
		}
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closeFn
}
