// Package config provides project configuration for the queryc CLI.
// It is decoupled from CLI concerns so other tools can load the same file.
package config

import (
	"fmt"

	"github.com/leapstack-labs/queryc/pkg/lower"
)

// ProjectConfig is the queryc.yaml schema.
type ProjectConfig struct {
	// Dialect selects the lowering table for CLI commands.
	Dialect string `koanf:"dialect"`

	// Output selects how tabular command output is printed: table or csv.
	Output string `koanf:"output"`
}

// ApplyDefaults fills unset fields with their defaults.
func (c *ProjectConfig) ApplyDefaults() {
	if c.Dialect == "" {
		c.Dialect = "mssql"
	}
	if c.Output == "" {
		c.Output = "table"
	}
}

// Validate checks that the configured values are usable.
func (c *ProjectConfig) Validate() error {
	if _, ok := lower.Get(c.Dialect); !ok {
		return fmt.Errorf("unknown dialect %q (registered: %v)", c.Dialect, lower.List())
	}
	switch c.Output {
	case "table", "csv":
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	return nil
}
