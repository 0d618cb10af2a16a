// Package presets holds the built-in rulesets for the dark mode rollout.
//
// The rule lists are fixtures: their order was tuned file by file against a
// real codebase and reordering any of them changes the output.
package presets

import (
	"sort"
	"strings"

	"github.com/walteh/restyle/pkg/discover"
	"github.com/walteh/restyle/pkg/operation"
	"github.com/walteh/restyle/pkg/scope"
	"github.com/walteh/restyle/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎨 Preset is a named, ready to run pass definition
type Preset struct {
	Name             string
	Description      string
	Extensions       []string
	ExcludedDirs     []string
	Files            []string // explicit targets, relative to the root
	Table            scope.Table
	Hint             string
	NoChangesMessage string
	OptIn            bool // never selected implicitly
}

// RuleCount returns the number of rules across every ruleset
func (p Preset) RuleCount() int {
	return p.Table.RuleCount()
}

// Pass turns the preset into a pass rooted at root
func (p Preset) Pass(root string) operation.Pass {
	return operation.Pass{
		Name:   p.Name,
		Source: "preset " + p.Name,
		Discovery: discover.Options{
			Root:         root,
			Extensions:   append([]string(nil), p.Extensions...),
			ExcludedDirs: append([]string(nil), p.ExcludedDirs...),
			Files:        append([]string(nil), p.Files...),
		},
		Table:            p.Table,
		Hint:             p.Hint,
		NoChangesMessage: p.NoChangesMessage,
	}
}

func base(name string, rules []text.Rule) scope.Table {
	return scope.Table{{
		Rules: text.Ruleset{Name: name, Source: "preset " + name, Rules: rules},
	}}
}

var registry = map[string]Preset{
	DarkTheme.Name:      DarkTheme,
	RemainingDark.Name:  RemainingDark,
	Contrast.Name:       Contrast,
	ContrastTokens.Name: ContrastTokens,
}

// order in which the legacy scripts were meant to run
var defaultOrder = []string{DarkTheme.Name, RemainingDark.Name, Contrast.Name}

// ErrUnknownPreset is returned by Lookup for names not in the registry
var ErrUnknownPreset = errors.Base("unknown preset")

// 🔍 Lookup returns the preset registered under name
func Lookup(name string) (Preset, error) {
	p, ok := registry[name]
	if !ok {
		return Preset{}, errors.Errorf("%w %q (known: %s)", ErrUnknownPreset, name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// All returns every preset sorted by name
func All() []Preset {
	out := make([]Preset, 0, len(registry))
	for _, name := range Names() {
		out = append(out, registry[name])
	}
	return out
}

// Names returns every preset name, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defaults returns the non opt-in presets in rollout order
func Defaults() []Preset {
	out := make([]Preset, 0, len(defaultOrder))
	for _, name := range defaultOrder {
		out = append(out, registry[name])
	}
	return out
}
