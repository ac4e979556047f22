// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "flag"

const configFlagName = "config"

// parseCommandLineArgs defines and parses flags, returning the value of the "config" flag
// and whether the user set it explicitly.
func parseCommandLineArgs() (string, bool) {
	if flag.Lookup(configFlagName) == nil {
		flag.String(configFlagName, "./config.yaml", "Path to a themegate configuration file in YAML format.")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	userSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == configFlagName {
			userSet = true
		}
	})

	return flag.Lookup(configFlagName).Value.String(), userSet
}
