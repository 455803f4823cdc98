// Package config holds the harness configuration: which external tools to
// invoke, how local cases are recognised, and where the remote corpus lives.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Config describes one harness run. Zero-value fields fall back to the
// defaults in Default(), so a config file only needs to name what it changes.
type Config struct {
	// Converter is the conversion tool; invoked as `<converter> <input> <dialect>`
	// inside the case directory and expected to produce <dialect>.dl there.
	Converter string `json:"converter" yaml:"converter"`
	// Compiler is the compiler under test; invoked as `<compiler> -i <dialect>.dl -L <lib_path>`.
	Compiler string `json:"compiler" yaml:"compiler"`
	LibPath  string `json:"lib_path" yaml:"lib_path"`
	Dialect  string `json:"dialect" yaml:"dialect"`

	// Marker filters local case directories: only names containing it run.
	Marker string `json:"marker" yaml:"marker"`
	// Input is the fixed input filename for local cases.
	Input string `json:"input" yaml:"input"`

	RemoteURL string `json:"remote_url" yaml:"remote_url"`
	// SvnBin is the export-capable version-control client used for the
	// remote corpus.
	SvnBin string `json:"svn_bin" yaml:"svn_bin"`
	// RemoteExt is the extension of the per-case input derived from the
	// remote directory name (<name>.<ext>).
	RemoteExt string `json:"remote_ext" yaml:"remote_ext"`
	// RemoteLimit caps run-wide attempted cases during remote discovery.
	RemoteLimit int `json:"remote_limit" yaml:"remote_limit"`
}

// Default returns the configuration matching the canonical corpus layout:
// the harness runs from the parent of the case directories, with tools and
// libraries two levels up.
func Default() Config {
	return Config{
		Converter:   "../../tools/souffle-converter.py",
		Compiler:    "ddlog",
		LibPath:     "../../lib",
		Dialect:     "souffle",
		Marker:      "souffle",
		Input:       "test.dl",
		RemoteURL:   "https://github.com/souffle-lang/souffle/trunk/tests/evaluation",
		SvnBin:      "svn",
		RemoteExt:   "dl",
		RemoteLimit: 10,
	}
}

// LoadFromPath reads a config file (YAML or JSON) and returns the parsed
// Config with defaults applied. Format is detected by extension
// (.yaml/.yml/.json) or by content (first non-whitespace char).
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config from bytes. ext is the file extension for the format
// hint; empty = detect from content.
func Load(data []byte, ext string) (*Config, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}

	var c Config
	switch {
	case ext == ".yaml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	case ext == ".json":
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	case strings.HasPrefix(strings.TrimSpace(string(data)), "{"):
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Converter == "" {
		c.Converter = d.Converter
	}
	if c.Compiler == "" {
		c.Compiler = d.Compiler
	}
	if c.LibPath == "" {
		c.LibPath = d.LibPath
	}
	if c.Dialect == "" {
		c.Dialect = d.Dialect
	}
	if c.Marker == "" {
		c.Marker = d.Marker
	}
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.RemoteURL == "" {
		c.RemoteURL = d.RemoteURL
	}
	if c.SvnBin == "" {
		c.SvnBin = d.SvnBin
	}
	if c.RemoteExt == "" {
		c.RemoteExt = d.RemoteExt
	}
	if c.RemoteLimit == 0 {
		c.RemoteLimit = d.RemoteLimit
	}
}
