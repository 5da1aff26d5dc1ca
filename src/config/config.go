package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the eunicode configuration loaded from JSON or YAML.
type Config struct {
	// KeepColors keeps SGR color sequences when filtering escapes.
	KeepColors *bool `json:"keepColors,omitempty" yaml:"keepColors,omitempty"`
	// Operations lists the transformations applied to normalized text, in order.
	Operations []string     `json:"operations,omitempty" yaml:"operations,omitempty"`
	Output     OutputConfig `json:"output" yaml:"output"`
	Server     ServerConfig `json:"server" yaml:"server"`
}

// OutputConfig controls where sanitized text is written.
type OutputConfig struct {
	Files     []string `json:"files,omitempty" yaml:"files,omitempty"`
	Clipboard *bool    `json:"clipboard,omitempty" yaml:"clipboard,omitempty"`
}

// ServerConfig controls how MCP clients connect in serve mode.
type ServerConfig struct {
	Transport string     `json:"transport" yaml:"transport"` // "stdio" or "http"
	HTTP      HTTPConfig `json:"http" yaml:"http"`
}

// HTTPConfig holds HTTP listener settings.
type HTTPConfig struct {
	Addr string `json:"addr" yaml:"addr"` // e.g. ":8080"
	Path string `json:"path" yaml:"path"` // e.g. "/mcp"
}

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"

	DefaultHTTPAddr = ":8080"
	DefaultHTTPPath = "/mcp"
)

// Operation names accepted in Operations.
const (
	OpStrip   = "strip"
	OpDefang  = "defang"
	OpCensor  = "censor"
	OpSlugify = "slugify"
)

var knownOps = map[string]struct{}{
	OpStrip:   {},
	OpDefang:  {},
	OpCensor:  {},
	OpSlugify: {},
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var cfg Config
	applyDefaults(&cfg)
	return cfg
}

// Load reads and parses a config file, applies defaults, and validates.
// Files ending in .yaml or .yml are parsed as YAML, everything else as JSON.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.KeepColors == nil {
		cfg.KeepColors = boolPtr(false)
	}
	if cfg.Output.Clipboard == nil {
		cfg.Output.Clipboard = boolPtr(false)
	}
	if cfg.Server.Transport == "" {
		cfg.Server.Transport = TransportStdio
	}
	if cfg.Server.HTTP.Addr == "" {
		cfg.Server.HTTP.Addr = DefaultHTTPAddr
	}
	if cfg.Server.HTTP.Path == "" {
		cfg.Server.HTTP.Path = DefaultHTTPPath
	}
}

func validate(cfg Config) error {
	if cfg.Server.Transport != TransportStdio && cfg.Server.Transport != TransportHTTP {
		return fmt.Errorf("server transport must be %q or %q, got %q",
			TransportStdio, TransportHTTP, cfg.Server.Transport)
	}

	if !strings.HasPrefix(cfg.Server.HTTP.Path, "/") {
		return fmt.Errorf("server http path %q must start with \"/\"", cfg.Server.HTTP.Path)
	}

	if err := ValidateOperations(cfg.Operations); err != nil {
		return err
	}

	for i, f := range cfg.Output.Files {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("output.files[%d]: path is empty", i)
		}
	}

	return nil
}

// ValidateOperations checks that every name is a known operation and that
// none repeats.
func ValidateOperations(ops []string) error {
	seen := make(map[string]struct{}, len(ops))
	for i, op := range ops {
		if _, ok := knownOps[op]; !ok {
			return fmt.Errorf("operations[%d]: unknown operation %q", i, op)
		}
		if _, dup := seen[op]; dup {
			return fmt.Errorf("operations[%d]: duplicate operation %q", i, op)
		}
		seen[op] = struct{}{}
	}
	return nil
}

// Merge returns base with the set fields of override applied on top.
// Nil pointers, empty slices and empty strings in override keep the base
// value.
func Merge(base Config, override *Config) Config {
	if override == nil {
		return base
	}

	merged := base

	if override.KeepColors != nil {
		merged.KeepColors = override.KeepColors
	}
	if len(override.Operations) > 0 {
		merged.Operations = override.Operations
	}
	if len(override.Output.Files) > 0 {
		merged.Output.Files = override.Output.Files
	}
	if override.Output.Clipboard != nil {
		merged.Output.Clipboard = override.Output.Clipboard
	}
	if override.Server.Transport != "" {
		merged.Server.Transport = override.Server.Transport
	}
	if override.Server.HTTP.Addr != "" {
		merged.Server.HTTP.Addr = override.Server.HTTP.Addr
	}
	if override.Server.HTTP.Path != "" {
		merged.Server.HTTP.Path = override.Server.HTTP.Path
	}

	return merged
}

// Bool dereferences an optional flag, treating nil as false.
func Bool(b *bool) bool { return b != nil && *b }

func boolPtr(b bool) *bool { return &b }
