package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment using the env and
// envPrefix tags of [StructuredConfig]. Unset variables leave fields zero so
// later sources and defaults can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{UseFieldNameByDefault: false}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
