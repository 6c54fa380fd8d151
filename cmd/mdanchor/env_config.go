package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-mdanchor/internal/config"
)

// envPrefix is shared by every recognized environment variable.
const envPrefix = "MDANCHOR_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string        // MDANCHOR_CONFIG: config file name or path
	OutputDir    string        // MDANCHOR_OUTPUT_DIR: default output directory
	Style        string        // MDANCHOR_STYLE: document style name or path
	HeaderPrefix string        // MDANCHOR_HEADER_PREFIX: heading id prefix
	AssetPath    string        // MDANCHOR_ASSET_PATH: custom styles/templates directory
	Timeout      time.Duration // MDANCHOR_TIMEOUT: per-file render timeout
	Workers      int           // MDANCHOR_WORKERS: parallel workers
}

// knownEnvVars lists valid MDANCHOR_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDANCHOR_CONFIG":        true,
	"MDANCHOR_OUTPUT_DIR":    true,
	"MDANCHOR_STYLE":         true,
	"MDANCHOR_HEADER_PREFIX": true,
	"MDANCHOR_ASSET_PATH":    true,
	"MDANCHOR_TIMEOUT":       true,
	"MDANCHOR_WORKERS":       true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed or non-positive durations and counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:   getenv("MDANCHOR_CONFIG"),
		OutputDir:    getenv("MDANCHOR_OUTPUT_DIR"),
		Style:        getenv("MDANCHOR_STYLE"),
		HeaderPrefix: getenv("MDANCHOR_HEADER_PREFIX"),
		AssetPath:    getenv("MDANCHOR_ASSET_PATH"),
	}

	if timeout := getenv("MDANCHOR_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("MDANCHOR_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDANCHOR_* variables.
// Helps catch typos like MDANCHOR_OUTPUTDIR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Style != "" && cfg.Output.Style == "" {
		cfg.Output.Style = env.Style
	}
	if env.HeaderPrefix != "" && cfg.Anchors.HeaderPrefix == "" {
		cfg.Anchors.HeaderPrefix = env.HeaderPrefix
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
}
