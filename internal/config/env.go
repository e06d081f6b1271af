// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads [StructuredConfig] from the process environment. Prefixed
// variables (APP_*, STORAGE_DB_*, SERVER_*) come from the `envPrefix` tags;
// the unprefixed MONGO_URI and PORT land in [Legacy] and are only consulted
// when defaults are applied.
//
// A value that cannot be converted to its field type (e.g.
// SERVER_REQUEST_TIMEOUT=soon) fails the whole load.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
