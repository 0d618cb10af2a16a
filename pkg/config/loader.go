package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file
const DefaultPath = ".restyle.yaml"

// 🔌 Parser turns raw config bytes into a RestyleConfig
type Parser interface {
	// 📝 Parse parses the config; filename is used in diagnostics
	Parse(ctx context.Context, data []byte, filename string) (*RestyleConfig, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers, first match wins
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

func init() {
	Register(&YAMLParser{})
	Register(&DotfileParser{})
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// 🎯 Load reads, parses and validates a config file. The format is picked
// from the file extension: .yaml/.yml, .hcl, .json, or .restyle (YAML, then HCL).
func Load(ctx context.Context, path string) (*RestyleConfig, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("unsupported config file extension %q", ext(path))
	}

	cfg, err := p.Parse(ctx, data, path)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("resolving config path: %w", err)
	}
	cfg.location = abs

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Str("root", cfg.RootDir()).
		Strs("presets", cfg.Presets).
		Int("passes", len(cfg.Passes)).
		Msg("configuration loaded")

	return cfg, nil
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func (p *YAMLParser) CanParse(filename string) bool {
	e := ext(filename)
	return e == ".yaml" || e == ".yml"
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte, filename string) (*RestyleConfig, error) {
	var cfg RestyleConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// 🔧 DotfileParser handles extensionless .restyle files, trying YAML then HCL
type DotfileParser struct{}

func (p *DotfileParser) CanParse(filename string) bool {
	return filepath.Base(filename) == ".restyle" || ext(filename) == ".restyle"
}

func (p *DotfileParser) Parse(ctx context.Context, data []byte, filename string) (*RestyleConfig, error) {
	cfg, yamlErr := (&YAMLParser{}).Parse(ctx, data, filename)
	if yamlErr == nil {
		return cfg, nil
	}

	cfg, hclErr := (&HCLParser{}).Parse(ctx, data, filename)
	if hclErr == nil {
		return cfg, nil
	}

	zerolog.Ctx(ctx).Debug().AnErr("yaml", yamlErr).AnErr("hcl", hclErr).Msg("dotfile did not parse")
	return nil, errors.Errorf("failed to parse %s as YAML or HCL: %w", filename, hclErr)
}
