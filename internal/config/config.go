// Package config loads backpack settings from defaults, YAML files, a .env
// file and the environment, in increasing priority. CLI flags are applied by
// the caller on top.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNoVariables is returned when the variable list is empty.
var ErrNoVariables = errors.New("no variables configured")

// Config is the full set of runtime settings.
type Config struct {
	// Variables offered by every chooser.
	Variables []string `yaml:"variables"`
	// SelectedVars seeds the per-graph selection; defaults to Variables.
	SelectedVars []string        `yaml:"selected_vars"`
	AltScreen    bool            `yaml:"alt_screen"`
	DebugLog     string          `yaml:"debug_log"`
	Telemetry    TelemetryConfig `yaml:"telemetry"`
}

// TelemetryConfig configures the OTLP trace exporter. An empty Endpoint
// disables export.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// DefaultConfig returns built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Variables: []string{"CH4", "CO2", "H2O"},
		AltScreen: true,
		Telemetry: TelemetryConfig{
			ServiceName: "backpack",
			Insecure:    true,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if len(c.Variables) == 0 {
		return ErrNoVariables
	}
	for i, v := range c.Variables {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("variables[%d] is empty", i)
		}
	}
	for i, v := range c.SelectedVars {
		if v != "" && !slices.Contains(c.Variables, v) {
			return fmt.Errorf("selected_vars[%d] %q is not a configured variable", i, v)
		}
	}
	return nil
}

// SplitList parses a comma separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
