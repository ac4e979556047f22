// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

func (cfg *ServerConfig) print() {
	log.Info().
		Str("version", BuildVersion).
		Str("revision", cfg.Build.Revision()).
		Str("instance", cfg.Instance.InstanceID).
		Msg("Starting themegate")

	configYAML, err := cfg.marshalYAML()
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal config to YAML for printing")

		return
	}

	log.Info().
		Msg("Application configuration:")
	fmt.Fprintln(os.Stderr, string(configYAML))
}

// marshalYAML renders the configuration as indented YAML with readable durations.
func (cfg *ServerConfig) marshalYAML() ([]byte, error) {
	out, err := yaml.MarshalWithOptions(
		*cfg,
		yaml.Indent(2),
		GetDurationEncoderOption(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return out, nil
}
