package text

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// RegexpValidator implements RuleValidator using RE2 regular expressions
type RegexpValidator struct{}

// NewRegexpValidator creates a new RegexpValidator
func NewRegexpValidator() *RegexpValidator {
	return &RegexpValidator{}
}

// ValidateRules implements RuleValidator.ValidateRules
func (r *RegexpValidator) ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Pattern == "" {
			return errors.Errorf("rule %d: pattern is required", i)
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return errors.Errorf("rule %d: invalid pattern: %w", i, err)
		}
	}
	return nil
}
