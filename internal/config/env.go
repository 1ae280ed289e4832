// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment by the `env` and
// `envPrefix` tags of [StructuredConfig]. Values of SERVER_ALLOWED_ORIGINS
// are trimmed and empty items dropped, so "a, b," yields [a b].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Server.AllowedOrigins = cleanOrigins(cfg.Server.AllowedOrigins)
	return nil
}

func cleanOrigins(origins []string) []string {
	if len(origins) == 0 {
		return nil
	}

	cleaned := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			cleaned = append(cleaned, origin)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}
