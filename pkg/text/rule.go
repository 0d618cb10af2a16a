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

package text

import (
	"fmt"
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// Rule is a single pattern/replacement pair.
//
// Pattern uses RE2 syntax. Replace is expanded with regexp.Expand semantics,
// so capture groups are referenced as $1, ${1} or ${name}. Write ${1} when the
// group reference is directly followed by a letter, digit or underscore.
type Rule struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Pattern string `json:"pattern" yaml:"pattern"`
	Replace string `json:"replace" yaml:"replace"`
}

// Label returns the rule name, falling back to the pattern
func (r Rule) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Pattern
}

// Ruleset is an ordered list of rules. Later rules see the output of earlier ones.
type Ruleset struct {
	Name   string
	Source string // where the ruleset was defined, e.g. a preset name or config path
	Rules  []Rule
}

// RuleError reports a rule that cannot be compiled
type RuleError struct {
	Source  string
	Ruleset string
	Index   int
	Rule    Rule
	Err     error
}

func (e *RuleError) Error() string {
	where := e.Ruleset
	if e.Source != "" {
		where = e.Source + ": " + where
	}
	return fmt.Sprintf("%s: rule %d (%s): invalid pattern %q: %v", where, e.Index, e.Rule.Label(), e.Rule.Pattern, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

type compiledRule struct {
	rule Rule
	re   *regexp.Regexp
}

// CompiledRuleset is an immutable, ready to apply ruleset.
// It is safe for concurrent use.
type CompiledRuleset struct {
	Name  string
	rules []compiledRule
}

// Compile compiles every pattern of the ruleset, failing on the first invalid one
func Compile(rs Ruleset) (*CompiledRuleset, error) {
	out := &CompiledRuleset{
		Name:  rs.Name,
		rules: make([]compiledRule, 0, len(rs.Rules)),
	}
	for i, rule := range rs.Rules {
		if rule.Pattern == "" {
			return nil, &RuleError{Source: rs.Source, Ruleset: rs.Name, Index: i, Rule: rule, Err: errors.New("pattern is empty")}
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, &RuleError{Source: rs.Source, Ruleset: rs.Name, Index: i, Rule: rule, Err: err}
		}
		out.rules = append(out.rules, compiledRule{rule: rule, re: re})
	}
	return out, nil
}

// MustCompile is like Compile but panics on error. Meant for built-in rulesets.
func MustCompile(rs Ruleset) *CompiledRuleset {
	c, err := Compile(rs)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of rules
func (c *CompiledRuleset) Len() int {
	if c == nil {
		return 0
	}
	return len(c.rules)
}

// Rules returns a copy of the source rules in order
func (c *CompiledRuleset) Rules() []Rule {
	if c == nil {
		return nil
	}
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.rule
	}
	return out
}

// Concat returns a new ruleset running c's rules followed by each of others, in order
func (c *CompiledRuleset) Concat(others ...*CompiledRuleset) *CompiledRuleset {
	out := &CompiledRuleset{}
	if c != nil {
		out.Name = c.Name
		out.rules = append(out.rules, c.rules...)
	}
	for _, o := range others {
		if o == nil {
			continue
		}
		if out.Name == "" {
			out.Name = o.Name
		}
		out.rules = append(out.rules, o.rules...)
	}
	return out
}

// Apply runs every rule in order over doc. It never fails: a rule with no
// match leaves the text as is.
func (c *CompiledRuleset) Apply(doc string) *ReplacementResult {
	result := &ReplacementResult{
		OriginalContent: doc,
		Hits:            make([]RuleHit, 0, c.Len()),
	}

	current := doc
	if c != nil {
		for i, r := range c.rules {
			hit := RuleHit{Index: i, Name: r.rule.Label()}

			matches := r.re.FindAllStringIndex(current, -1)
			if len(matches) > 0 {
				next := r.re.ReplaceAllString(current, r.rule.Replace)
				hit.Matches = len(matches)
				hit.Changed = next != current
				result.ReplacementCount += len(matches)
				current = next
			}

			result.Hits = append(result.Hits, hit)
		}
	}

	result.ModifiedContent = current
	result.WasModified = current != doc
	return result
}
