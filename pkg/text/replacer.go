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

// RuleHit records what a single rule did during one application
type RuleHit struct {
	// Index is the position of the rule in the applied ruleset
	Index int

	// Name is the rule name, or its pattern when unnamed
	Name string

	// Matches is the number of non-overlapping matches replaced
	Matches int

	// Changed is true when the rule's replacements altered the text
	Changed bool
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates the final content differs from the original
	WasModified bool

	// ReplacementCount is the number of matches replaced across all rules
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent string

	// ModifiedContent is the content after replacements
	ModifiedContent string

	// Hits holds one entry per applied rule, in application order
	Hits []RuleHit
}

// ChangedRules returns the hits whose rule altered the text
func (r *ReplacementResult) ChangedRules() []RuleHit {
	var out []RuleHit
	for _, h := range r.Hits {
		if h.Changed {
			out = append(out, h)
		}
	}
	return out
}

// RuleValidator checks rules before they are compiled for a run
type RuleValidator interface {
	// ValidateRules checks that all rules are valid
	ValidateRules(rules []Rule) error
}
