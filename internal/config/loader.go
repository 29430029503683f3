package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the loader.
const (
	EnvVariables    = "BACKPACK_VARIABLES"
	EnvDebugLog     = "BACKPACK_DEBUG_LOG"
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvOTLPInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	EnvServiceName  = "OTEL_SERVICE_NAME"
)

// ConfigPaths are searched lowest priority first.
var ConfigPaths = []string{
	"~/.config/backpack/config.yaml",
	"./.backpack.yaml",
}

// Loader reads configuration files and environment.
type Loader struct {
	configPaths []string
	envFile     string
	lookupEnv   func(string) (string, bool)
}

// NewLoader creates a loader using ConfigPaths, ./.env and the process environment.
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		envFile:     ".env",
		lookupEnv:   os.LookupEnv,
	}
}

// Load builds a Config. When customPath is set only that file is read and it
// must exist; otherwise every existing file in ConfigPaths is merged in order.
func (l *Loader) Load(customPath string) (*Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		if err := loadFile(cfg, customPath); err != nil {
			return nil, fmt.Errorf("load config %s: %w", customPath, err)
		}
	} else {
		for _, p := range l.configPaths {
			path := expandPath(p)
			err := loadFile(cfg, path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	dotenv, err := l.readEnvFile()
	if err != nil {
		return nil, err
	}
	l.applyEnv(cfg, dotenv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// readEnvFile returns the .env entries, or nil when the file does not exist.
func (l *Loader) readEnvFile() (map[string]string, error) {
	if l.envFile == "" {
		return nil, nil
	}
	vals, err := godotenv.Read(l.envFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.envFile, err)
	}
	return vals, nil
}

// applyEnv overrides cfg from the environment. Real environment variables
// win over .env entries.
func (l *Loader) applyEnv(cfg *Config, dotenv map[string]string) {
	get := func(key string) (string, bool) {
		if v, ok := l.lookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := get(EnvVariables); ok {
		cfg.Variables = SplitList(v)
	}
	if v, ok := get(EnvDebugLog); ok {
		cfg.DebugLog = v
	}
	if v, ok := get(EnvOTLPEndpoint); ok {
		cfg.Telemetry.Endpoint = v
	}
	if v, ok := get(EnvServiceName); ok && v != "" {
		cfg.Telemetry.ServiceName = v
	}
	if v, ok := get(EnvOTLPInsecure); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("config: ignoring %s=%q: %v", EnvOTLPInsecure, v, err)
		} else {
			cfg.Telemetry.Insecure = b
		}
	}
}

func expandPath(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
