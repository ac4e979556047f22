// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetDefaultLogger logs to stderr until the configuration is loaded.
func SetDefaultLogger() {
	log.Logger = log.Output(ConsoleWriter(os.Stderr))
}

// isTerminal returns true if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConsoleWriter returns a human-readable zerolog writer for f.
//
// Colors and the compact request line are only used when f is a terminal.
func ConsoleWriter(f *os.File) io.Writer {
	return consoleWriter(f, !isTerminal(f))
}

func consoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	w := zerolog.ConsoleWriter{Out: out, NoColor: noColor, TimeFormat: time.DateTime}

	if !noColor {
		w.FormatPrepare = compactRequestLine
	}

	return w
}

// compactRequestLine folds the fields logged by Span.Log into the message,
// e.g. "200 GET   /profile/api".
func compactRequestLine(m map[string]any) error {
	if sys, ok := m["sys"]; ok && sys == "http" {
		m["message"] = fmt.Sprintf("%v %-5v %v", m["status_code"], m["method"], m["url"])
		delete(m, "sys")
		delete(m, "method")
		delete(m, "status_code")
		delete(m, "url")
		delete(m, "request_id")
	}

	return nil
}
