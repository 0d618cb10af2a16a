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

// Package scope selects which rulesets apply to a file based on its path.
//
// A Table is an ordered list of (predicate, ruleset) entries. Selection runs
// once per file and concatenates, in table order, the rules of every entry
// whose predicate matches. The text engine itself never looks at paths.
package scope

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/restyle/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Predicate is a condition over a slash-separated file path.
// Every non-empty field must hold. The zero Predicate matches every path.
type Predicate struct {
	ContainsAny []string `json:"contains_any,omitempty" yaml:"contains_any,omitempty"` // at least one substring present
	ContainsAll []string `json:"contains_all,omitempty" yaml:"contains_all,omitempty"` // every substring present
	Filename    string   `json:"filename,omitempty" yaml:"filename,omitempty"`         // exact base name
	Glob        string   `json:"glob,omitempty" yaml:"glob,omitempty"`                 // doublestar pattern over the whole path
}

// IsZero reports whether the predicate has no conditions
func (p Predicate) IsZero() bool {
	return len(p.ContainsAny) == 0 && len(p.ContainsAll) == 0 && p.Filename == "" && p.Glob == ""
}

// Validate checks the glob syntax
func (p Predicate) Validate() error {
	if p.Glob != "" && !doublestar.ValidatePattern(p.Glob) {
		return errors.Errorf("invalid glob pattern %q", p.Glob)
	}
	return nil
}

// Match reports whether the path satisfies the predicate
func (p Predicate) Match(filePath string) bool {
	if len(p.ContainsAny) > 0 {
		found := false
		for _, s := range p.ContainsAny {
			if strings.Contains(filePath, s) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, s := range p.ContainsAll {
		if !strings.Contains(filePath, s) {
			return false
		}
	}

	if p.Filename != "" && path.Base(filePath) != p.Filename {
		return false
	}

	if p.Glob != "" {
		// pattern validity is checked up front by Compile
		matched, err := doublestar.Match(p.Glob, filePath)
		if err != nil || !matched {
			return false
		}
	}

	return true
}

// String renders the predicate for logs and listings
func (p Predicate) String() string {
	if p.IsZero() {
		return "*"
	}
	var parts []string
	if len(p.ContainsAny) > 0 {
		parts = append(parts, "contains any of ["+strings.Join(p.ContainsAny, ", ")+"]")
	}
	if len(p.ContainsAll) > 0 {
		parts = append(parts, "contains all of ["+strings.Join(p.ContainsAll, ", ")+"]")
	}
	if p.Filename != "" {
		parts = append(parts, "filename is "+p.Filename)
	}
	if p.Glob != "" {
		parts = append(parts, "matches "+p.Glob)
	}
	return strings.Join(parts, " and ")
}

// 📦 Entry pairs a predicate with the ruleset it unlocks
type Entry struct {
	When  Predicate
	Rules text.Ruleset
}

// Table is an ordered list of entries
type Table []Entry

// RuleCount returns the total number of rules in the table
func (t Table) RuleCount() int {
	n := 0
	for _, e := range t {
		n += len(e.Rules.Rules)
	}
	return n
}

type compiledEntry struct {
	when  Predicate
	rules *text.CompiledRuleset
}

// CompiledTable is a validated table with every ruleset compiled
type CompiledTable struct {
	entries []compiledEntry
}

// Selection is the outcome of evaluating a table against one path
type Selection struct {
	Rules    *text.CompiledRuleset
	Rulesets []string // names of the matching entries, in order
}

// 🔧 Compile validates every predicate and compiles every ruleset.
// The first broken rule aborts with a *text.RuleError.
func Compile(t Table) (*CompiledTable, error) {
	out := &CompiledTable{entries: make([]compiledEntry, 0, len(t))}
	for i, e := range t {
		if err := e.When.Validate(); err != nil {
			return nil, errors.Errorf("ruleset %d (%s): %w", i, e.Rules.Name, err)
		}
		rules, err := text.Compile(e.Rules)
		if err != nil {
			return nil, err
		}
		out.entries = append(out.entries, compiledEntry{when: e.When, rules: rules})
	}
	return out, nil
}

// Select returns the concatenation of every matching entry's rules
func (t *CompiledTable) Select(filePath string) Selection {
	var sel Selection
	matched := make([]*text.CompiledRuleset, 0, len(t.entries))
	for _, e := range t.entries {
		if !e.when.Match(filePath) {
			continue
		}
		matched = append(matched, e.rules)
		sel.Rulesets = append(sel.Rulesets, e.rules.Name)
	}

	var empty *text.CompiledRuleset
	sel.Rules = empty.Concat(matched...)
	return sel
}
