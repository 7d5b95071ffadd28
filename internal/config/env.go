// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment.
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

// parseEnvFrom maps environ onto cfg through the `env` and `envPrefix` tags of
// [StructuredConfig]. Blank variables count as unset so that they do not mask
// flag or file values during the merge.
func parseEnvFrom(cfg any, environ map[string]string) error {
	set := make(map[string]string, len(environ))
	for k, v := range environ {
		if strings.TrimSpace(v) != "" {
			set[k] = v
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: set}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
