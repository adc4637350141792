// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The mapping lives in
// the `env` and `envPrefix` struct tags on [StructuredConfig]; see that
// type for the full variable list.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
