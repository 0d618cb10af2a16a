package text

// IdempotenceReport describes what a second application of a ruleset did
type IdempotenceReport struct {
	// Stable is true when re-applying the ruleset to its own output changes nothing
	Stable bool

	// First is the result of applying the ruleset to the input document
	First *ReplacementResult

	// Second is the result of applying the ruleset to First.ModifiedContent
	Second *ReplacementResult

	// Offenders are the rules that changed the text on the second pass
	Offenders []RuleHit
}

// CheckIdempotent applies the ruleset twice and reports whether the second
// application is a no-op.
//
// A single pass can already compound edits (a later rule re-matching what an
// earlier one inserted); this only detects drift across runs.
func (c *CompiledRuleset) CheckIdempotent(doc string) *IdempotenceReport {
	first := c.Apply(doc)
	second := c.Apply(first.ModifiedContent)
	return &IdempotenceReport{
		Stable:    !second.WasModified,
		First:     first,
		Second:    second,
		Offenders: second.ChangedRules(),
	}
}
