// Package config loads tool defaults from JSONC or YAML files.
//
// Precedence, highest wins:
//  1. defaults
//  2. global user config ($XDG_CONFIG_HOME/enasubmit/config.json or ~/.config/enasubmit/config.json)
//  3. project config (.enasubmit.json in the working directory)
//  4. explicit file given with --config
//  5. command-line flags (applied by the caller)
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".enasubmit.json"

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigInvalid  = errors.New("invalid config file")
)

// Log levels accepted in log_level.
var levels = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}

type S3 struct {
	Region    string `json:"region,omitempty" yaml:"region,omitempty"`
	Endpoint  string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	PathStyle bool   `json:"path_style,omitempty" yaml:"path_style,omitempty"` //nolint:tagliatelle // snake_case for config file

	// Static credentials; when unset the SDK's default chain applies.
	AccessKeyID     string `json:"access_key_id,omitempty" yaml:"access_key_id,omitempty"`         //nolint:tagliatelle
	SecretAccessKey string `json:"secret_access_key,omitempty" yaml:"secret_access_key,omitempty"` //nolint:tagliatelle
	SessionToken    string `json:"session_token,omitempty" yaml:"session_token,omitempty"`         //nolint:tagliatelle
}

// Config holds values shared by every tool.
type Config struct {
	CentreName string `json:"centre_name,omitempty" yaml:"centre_name,omitempty"` //nolint:tagliatelle // snake_case for config file
	Checklist  string `json:"checklist,omitempty" yaml:"checklist,omitempty"`
	// Attributes is a path to a sample attribute list, relative paths
	// resolved against the file that set it.
	Attributes string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Strain     bool   `json:"strain,omitempty" yaml:"strain,omitempty"`
	Threads    int    `json:"threads,omitempty" yaml:"threads,omitempty"`
	LogLevel   string `json:"log_level,omitempty" yaml:"log_level,omitempty"` //nolint:tagliatelle // snake_case for config file
	S3         S3     `json:"s3,omitempty" yaml:"s3,omitempty"`
}

// Sources records which files contributed.
type Sources struct {
	Global   string
	Project  string
	Explicit string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Threads: 1, LogLevel: "warn"}
}

// Load merges defaults, the global file, the project file and an optional
// explicit file. env is consulted for XDG_CONFIG_HOME before the process
// environment.
func Load(workDir, explicit string, env []string) (Config, Sources, error) {
	cfg := Default()
	var src Sources

	if p := globalPath(env); p != "" {
		g, ok, err := loadFile(p, false)
		if err != nil {
			return Config{}, Sources{}, err
		}
		if ok {
			cfg = merge(cfg, g)
			src.Global = p
		}
	}

	p := filepath.Join(workDir, FileName)
	f, ok, err := loadFile(p, false)
	if err != nil {
		return Config{}, Sources{}, err
	}
	if ok {
		cfg = merge(cfg, f)
		src.Project = p
	}

	if explicit != "" {
		p = explicit
		if !filepath.IsAbs(p) {
			p = filepath.Join(workDir, p)
		}
		f, _, err := loadFile(p, true)
		if err != nil {
			return Config{}, Sources{}, err
		}
		cfg = merge(cfg, f)
		src.Explicit = p
	}

	if err := Validate(cfg); err != nil {
		return Config{}, Sources{}, err
	}
	return cfg, src, nil
}

// Validate checks values that would otherwise fail late.
func Validate(c Config) error {
	if c.Threads < 0 {
		return fmt.Errorf("%w: threads must be >= 0", ErrConfigInvalid)
	}
	if !levels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: unknown log_level %q", ErrConfigInvalid, c.LogLevel)
	}
	return nil
}

func globalPath(env []string) string {
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "XDG_CONFIG_HOME="); ok && after != "" {
			return filepath.Join(after, "enasubmit", "config.json")
		}
	}
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, "enasubmit", "config.json")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "enasubmit", "config.json")
	}
	return ""
}

func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if mustExist {
				return Config{}, false, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}
	if cfg.Attributes != "" && !filepath.IsAbs(cfg.Attributes) {
		cfg.Attributes = filepath.Join(filepath.Dir(path), cfg.Attributes)
	}
	return cfg, true, nil
}

// Parse decodes a config document; ext ".yaml"/".yml" selects YAML,
// anything else is JSONC.
func Parse(data []byte, ext string) (Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		std, err := hujson.Standardize(data)
		if err != nil {
			return Config{}, fmt.Errorf("invalid JSONC: %w", err)
		}
		dec := json.NewDecoder(bytes.NewReader(std))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("invalid JSON: %w", err)
		}
	}
	return cfg, nil
}

func merge(base, o Config) Config {
	if o.CentreName != "" {
		base.CentreName = o.CentreName
	}
	if o.Checklist != "" {
		base.Checklist = o.Checklist
	}
	if o.Attributes != "" {
		base.Attributes = o.Attributes
	}
	if o.Strain {
		base.Strain = true
	}
	if o.Threads != 0 {
		base.Threads = o.Threads
	}
	if o.LogLevel != "" {
		base.LogLevel = o.LogLevel
	}
	if o.S3.Region != "" {
		base.S3.Region = o.S3.Region
	}
	if o.S3.Endpoint != "" {
		base.S3.Endpoint = o.S3.Endpoint
	}
	if o.S3.PathStyle {
		base.S3.PathStyle = true
	}
	if o.S3.AccessKeyID != "" {
		base.S3.AccessKeyID = o.S3.AccessKeyID
		base.S3.SecretAccessKey = o.S3.SecretAccessKey
		base.S3.SessionToken = o.S3.SessionToken
	}
	return base
}
