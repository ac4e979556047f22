// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codeberg.org/themegate/themegate/core/audit"
)

const logFilePermissions = 0o666

// setupAudit configures the global logger from cfg.Log.
func (cfg *ServerConfig) setupAudit() {
	level := zerolog.InfoLevel

	if cfg.Development.InDevelopment {
		level = zerolog.DebugLevel
	} else if parsed, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		level = parsed
	}

	zerolog.SetGlobalLevel(level)

	writers := []io.Writer{}

	if len(cfg.Log.Outputs) == 0 {
		writers = append(writers, audit.ConsoleWriter(os.Stderr))
	}

	for _, output := range cfg.Log.Outputs {
		var w io.Writer

		switch output {
		case "/dev/stdout":
			w = audit.ConsoleWriter(os.Stdout)
		case "/dev/stderr":
			w = audit.ConsoleWriter(os.Stderr)
		default:
			file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions) // #nosec:G302,G304
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", output, err)

				continue
			}

			if cfg.Log.Format == "json" {
				w = file
			} else {
				w = audit.ConsoleWriter(file)
			}
		}

		writers = append(writers, w)
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))
}
