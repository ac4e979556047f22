// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/themegate/themegate/core/idgen"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host                     string      `env:"THEMEGATE_HOST,overwrite" yaml:"host"`
		Port                     string      `env:"THEMEGATE_PORT,overwrite" yaml:"port"`
		UnixSocket               string      `env:"THEMEGATE_UNIXSOCKET" yaml:"unixSocket"`
		RawUnixSocketPermissions string      `env:"THEMEGATE_UNIXSOCKET_PERMISSIONS" yaml:"unixSocketPermissions"`
		UnixSocketPermissions    os.FileMode `yaml:"-"`
		UnixSocketUser           string      `env:"THEMEGATE_UNIXSOCKET_USER" yaml:"unixSocketUser"`
		UnixSocketGroup          string      `env:"THEMEGATE_UNIXSOCKET_GROUP" yaml:"unixSocketGroup"`
	} `yaml:"basic"`

	Preferences struct {
		// DefaultTheme is given to visitors without a theme cookie.
		DefaultTheme   string `env:"THEMEGATE_DEFAULT_THEME,overwrite" yaml:"defaultTheme"`
		ResultsPerPage int    `env:"THEMEGATE_RESULTS_PER_PAGE,overwrite" yaml:"resultsPerPage"`
	} `yaml:"preferences"`

	// Redirects maps exact request paths to redirect targets.
	Redirects map[string]string `yaml:"redirects"`

	Compression struct {
		Enabled bool `env:"THEMEGATE_COMPRESSION,overwrite" yaml:"enabled"`
	} `yaml:"compression"`

	Instance struct {
		StartingTime string `yaml:"-"`
		InstanceID   string `yaml:"-"`
	} `yaml:"instance"`

	Development struct {
		InDevelopment bool `env:"THEMEGATE_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"THEMEGATE_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"THEMEGATE_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"THEMEGATE_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`

	Limiter struct {
		Enabled         bool          `env:"THEMEGATE_LIMITER,overwrite" yaml:"enabled"`
		Rate            float64       `env:"THEMEGATE_LIMITER_RATE,overwrite" yaml:"rate"`
		Burst           int           `env:"THEMEGATE_LIMITER_BURST,overwrite" yaml:"burst"`
		PassIPs         []string      `env:"THEMEGATE_LIMITER_PASS_IPS,overwrite" yaml:"passList"`
		IPv4Prefix      int           `env:"THEMEGATE_LIMITER_IPV4_PREFIX,overwrite" yaml:"ipv4Prefix"`
		IPv6Prefix      int           `env:"THEMEGATE_LIMITER_IPV6_PREFIX,overwrite" yaml:"ipv6Prefix"`
		CleanupInterval time.Duration `env:"THEMEGATE_LIMITER_CLEANUP_INTERVAL,overwrite" yaml:"cleanupInterval"`
	} `yaml:"limiter"`
}

// LoadConfig loads the configuration from various sources.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue, configFlagUserSet := parseCommandLineArgs()

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (THEMEGATE_CONFIGFILE)
	// 3. Default path with fallback check
	if configFlagUserSet {
		configFilePath = parsedConfigFlagValue
	} else if envVar := os.Getenv("THEMEGATE_CONFIGFILE"); envVar != "" {
		configFilePath = envVar
	} else {
		configFilePath = parsedConfigFlagValue
		// Then, perform a fallback check for "./config.yml".
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	if err := cfg.load(configFilePath); err != nil {
		return err
	}

	cfg.setupAudit()
	cfg.print()

	// Heuristically check for containerized environment and warn if host is not a wildcard address.
	if isContainerized() && cfg.Basic.UnixSocket == "" && cfg.Basic.Host != "0.0.0.0" && cfg.Basic.Host != "::" {
		log.Warn().
			Str("host", cfg.Basic.Host).
			Msg("Running in a containerized environment but host is not a wildcard address (e.g., '0.0.0.0' or '::'). This may prevent the service from being accessible outside the container.")
	}

	return nil
}

// load applies defaults, the YAML file at configFilePath, .env and the
// environment, in that order, then validates the result.
func (cfg *ServerConfig) load(configFilePath string) error {
	cfg.SetDefaults()

	cfg.Build.load()

	cfg.Instance.InstanceID = idgen.Make()
	cfg.Instance.StartingTime = time.Now().UTC().Format("2006-01-02 15:04")

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	return nil
}

var skippedPaths = []string{"/healthz", "/favicon.ico"}

// ShouldSkipServerLogging determines if a request should bypass request logging.
//
// Only exact paths are skipped.
func (cfg *ServerConfig) ShouldSkipServerLogging(path string) bool {
	return slices.Contains(skippedPaths, path)
}

// isContainerized checks for common indicators of a containerized environment.
//
// This is a heuristic and may not be 100% accurate.
func isContainerized() bool {
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}

	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	if _, err := os.Stat("/.containerenv"); err == nil {
		return true
	}

	// #nosec G304 -- We are checking for the existence and content of a well-known system file for heuristics.
	cgroup, err := os.ReadFile("/proc/self/cgroup")
	if err == nil {
		content := string(cgroup)

		return strings.Contains(content, "docker") ||
			strings.Contains(content, "kubepods") ||
			strings.Contains(content, "containerd") ||
			strings.Contains(content, "lxc") ||
			strings.Contains(content, "crio") ||
			// systemd-nspawn containers
			strings.Contains(content, ".machine")
	}

	return false
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
