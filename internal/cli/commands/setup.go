package commands

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/queryc/internal/config"
	"github.com/leapstack-labs/queryc/pkg/lower"

	// Register the built-in dialect lowering tables.
	_ "github.com/leapstack-labs/queryc/pkg/dialects/mssql"
)

// loadConfig loads the project config from the nearest queryc.yaml, falling
// back to defaults when no config file exists.
func loadConfig() (*config.ProjectConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	var cfg *config.ProjectConfig
	if root := config.FindProjectRoot(cwd); root != "" {
		cfg, err = config.LoadFromDir(root)
		if err != nil {
			return nil, err
		}
	}
	if cfg == nil {
		cfg = &config.ProjectConfig{}
		cfg.ApplyDefaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveRegistry picks the lowering table for a command: the --dialect flag
// when set, the project config otherwise.
func resolveRegistry(flagValue string) (string, *lower.Registry, error) {
	name := flagValue
	if name == "" {
		cfg, err := loadConfig()
		if err != nil {
			return "", nil, err
		}
		name = cfg.Dialect
	}
	reg, ok := lower.Get(name)
	if !ok {
		return "", nil, fmt.Errorf("unknown dialect %q (registered: %v)", name, lower.List())
	}
	return name, reg, nil
}
