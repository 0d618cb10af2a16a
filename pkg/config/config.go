// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"path/filepath"

	"github.com/walteh/restyle/pkg/discover"
	"github.com/walteh/restyle/pkg/operation"
	"github.com/walteh/restyle/pkg/presets"
	"github.com/walteh/restyle/pkg/scope"
	"github.com/walteh/restyle/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📚 RestyleConfig represents the complete configuration
type RestyleConfig struct {
	Root         string       `json:"root" yaml:"root" hcl:"root"`
	Backup       bool         `json:"backup,omitempty" yaml:"backup,omitempty" hcl:"backup,optional"`
	Extensions   []string     `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,optional"`
	ExcludedDirs []string     `json:"excluded_dirs,omitempty" yaml:"excluded_dirs,omitempty" hcl:"excluded_dirs,optional"`
	Presets      []string     `json:"presets,omitempty" yaml:"presets,omitempty" hcl:"presets,optional"`
	Passes       []PassConfig `json:"passes,omitempty" yaml:"passes,omitempty" hcl:"pass,block"`

	location string // absolute path of the file the config was loaded from
}

// 📦 PassConfig is one custom pass. Unset discovery fields fall back to the
// top level values.
type PassConfig struct {
	Name             string          `json:"name" yaml:"name" hcl:"name,label"`
	Extensions       []string        `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,optional"`
	ExcludedDirs     []string        `json:"excluded_dirs,omitempty" yaml:"excluded_dirs,omitempty" hcl:"excluded_dirs,optional"`
	Files            []string        `json:"files,omitempty" yaml:"files,omitempty" hcl:"files,optional"`
	Hint             string          `json:"hint,omitempty" yaml:"hint,omitempty" hcl:"hint,optional"`
	NoChangesMessage string          `json:"no_changes_message,omitempty" yaml:"no_changes_message,omitempty" hcl:"no_changes_message,optional"`
	Rulesets         []RulesetConfig `json:"rulesets" yaml:"rulesets" hcl:"ruleset,block"`
}

// 📋 RulesetConfig is an ordered rule list, optionally scoped by path
type RulesetConfig struct {
	Name  string       `json:"name" yaml:"name" hcl:"name,label"`
	When  *WhenConfig  `json:"when,omitempty" yaml:"when,omitempty" hcl:"when,block"`
	Rules []RuleConfig `json:"rules" yaml:"rules" hcl:"rule,block"`
}

// 🎯 WhenConfig is a path predicate; every set field must hold
type WhenConfig struct {
	ContainsAny []string `json:"contains_any,omitempty" yaml:"contains_any,omitempty" hcl:"contains_any,optional"`
	ContainsAll []string `json:"contains_all,omitempty" yaml:"contains_all,omitempty" hcl:"contains_all,optional"`
	Filename    string   `json:"filename,omitempty" yaml:"filename,omitempty" hcl:"filename,optional"`
	Glob        string   `json:"glob,omitempty" yaml:"glob,omitempty" hcl:"glob,optional"`
}

// 🔄 RuleConfig is a single pattern and its replacement template
type RuleConfig struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty" hcl:"name,optional"`
	Pattern string `json:"pattern" yaml:"pattern" hcl:"pattern"`
	Replace string `json:"replace" yaml:"replace" hcl:"replace"`
}

// ❌ ValidationError names the offending field of an invalid config
type ValidationError struct {
	Field   string
	Problem string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Problem
}

func invalid(field, format string, args ...any) error {
	return errors.WithStack(&ValidationError{Field: field, Problem: fmt.Sprintf(format, args...)})
}

// Location returns the file the config was loaded from, if any
func (cfg *RestyleConfig) Location() string {
	return cfg.location
}

// RootDir returns the root resolved against the config file's directory
func (cfg *RestyleConfig) RootDir() string {
	if filepath.IsAbs(cfg.Root) || cfg.location == "" {
		return filepath.Clean(cfg.Root)
	}
	return filepath.Join(filepath.Dir(cfg.location), cfg.Root)
}

// Options returns the runner options the config asks for
func (cfg *RestyleConfig) Options() operation.Options {
	return operation.Options{Backup: cfg.Backup}
}

// 🔍 Validate checks that the config describes at least one runnable pass
// and that every rule compiles
func (cfg *RestyleConfig) Validate() error {
	if cfg.Root == "" {
		return invalid("root", "is required")
	}
	if len(cfg.Presets) == 0 && len(cfg.Passes) == 0 {
		return invalid("presets", "at least one preset or pass is required")
	}

	for i, name := range cfg.Presets {
		if _, err := presets.Lookup(name); err != nil {
			return invalid(fmt.Sprintf("presets[%d]", i), "%s", err.Error())
		}
	}

	validator := text.NewRegexpValidator()
	seen := map[string]bool{}
	for i, p := range cfg.Passes {
		field := fmt.Sprintf("passes[%d]", i)
		if p.Name == "" {
			return invalid(field+".name", "is required")
		}
		if seen[p.Name] {
			return invalid(field+".name", "duplicate pass %q", p.Name)
		}
		seen[p.Name] = true

		if len(p.Rulesets) == 0 {
			return invalid(field+".rulesets", "pass %q has no rulesets", p.Name)
		}
		for j, rs := range p.Rulesets {
			rsField := fmt.Sprintf("%s.rulesets[%d]", field, j)
			if rs.Name == "" {
				return invalid(rsField+".name", "is required")
			}
			if len(rs.Rules) == 0 {
				return invalid(rsField+".rules", "ruleset %q has no rules", rs.Name)
			}
			if err := rs.predicate().Validate(); err != nil {
				return invalid(rsField+".when", "%s", err.Error())
			}
			if err := validator.ValidateRules(rs.rules()); err != nil {
				return invalid(rsField, "%s", err.Error())
			}
		}
	}

	return nil
}

func (w *WhenConfig) predicate() scope.Predicate {
	if w == nil {
		return scope.Predicate{}
	}
	return scope.Predicate{
		ContainsAny: w.ContainsAny,
		ContainsAll: w.ContainsAll,
		Filename:    w.Filename,
		Glob:        w.Glob,
	}
}

func (rs RulesetConfig) predicate() scope.Predicate {
	return rs.When.predicate()
}

func (rs RulesetConfig) rules() []text.Rule {
	out := make([]text.Rule, 0, len(rs.Rules))
	for _, r := range rs.Rules {
		out = append(out, text.Rule{Name: r.Name, Pattern: r.Pattern, Replace: r.Replace})
	}
	return out
}

func orDefault(v, def []string) []string {
	if len(v) > 0 {
		return v
	}
	return def
}

// 🔧 BuildPasses expands the config into runnable passes: presets first, in
// the listed order, then custom passes
func (cfg *RestyleConfig) BuildPasses() ([]operation.Pass, error) {
	root := cfg.RootDir()
	source := cfg.Location()
	if source == "" {
		source = "config"
	}

	out := make([]operation.Pass, 0, len(cfg.Presets)+len(cfg.Passes))
	for _, name := range cfg.Presets {
		p, err := presets.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p.Pass(root))
	}

	extensions := orDefault(cfg.Extensions, discover.DefaultExtensions)
	excluded := orDefault(cfg.ExcludedDirs, discover.DefaultExcludedDirs)

	for _, p := range cfg.Passes {
		table := make(scope.Table, 0, len(p.Rulesets))
		for _, rs := range p.Rulesets {
			table = append(table, scope.Entry{
				When: rs.predicate(),
				Rules: text.Ruleset{
					Name:   rs.Name,
					Source: source + ": pass " + p.Name,
					Rules:  rs.rules(),
				},
			})
		}

		out = append(out, operation.Pass{
			Name:   p.Name,
			Source: source,
			Discovery: discover.Options{
				Root:         root,
				Extensions:   orDefault(p.Extensions, extensions),
				ExcludedDirs: orDefault(p.ExcludedDirs, excluded),
				Files:        p.Files,
			},
			Table:            table,
			Hint:             p.Hint,
			NoChangesMessage: p.NoChangesMessage,
		})
	}

	return out, nil
}
