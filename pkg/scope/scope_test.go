package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/restyle/pkg/text"
)

func TestPredicate_Match(t *testing.T) {
	tests := []struct {
		name string
		when Predicate
		path string
		want bool
	}{
		{name: "zero_matches_all", when: Predicate{}, path: "components/Header.tsx", want: true},
		{name: "contains_any_first", when: Predicate{ContainsAny: []string{"VacationRequestModal.tsx", "vacations/page.tsx"}}, path: "components/modals/VacationRequestModal.tsx", want: true},
		{name: "contains_any_second", when: Predicate{ContainsAny: []string{"VacationRequestModal.tsx", "vacations/page.tsx"}}, path: "app/(dashboard)/vacations/page.tsx", want: true},
		{name: "contains_any_none", when: Predicate{ContainsAny: []string{"VacationRequestModal.tsx"}}, path: "app/(dashboard)/page.tsx", want: false},
		{name: "contains_all", when: Predicate{ContainsAll: []string{"page.tsx", "(dashboard)"}}, path: "app/(dashboard)/overtime/page.tsx", want: true},
		{name: "contains_all_partial", when: Predicate{ContainsAll: []string{"page.tsx", "(dashboard)"}}, path: "app/login/page.tsx", want: false},
		{name: "filename_exact", when: Predicate{Filename: "page.tsx"}, path: "app/login/page.tsx", want: true},
		{name: "filename_is_not_suffix", when: Predicate{Filename: "page.tsx"}, path: "app/login/homepage.tsx", want: false},
		{name: "glob", when: Predicate{Glob: "app/**/page.tsx"}, path: "app/(dashboard)/requests/page.tsx", want: true},
		{name: "glob_miss", when: Predicate{Glob: "components/**"}, path: "app/page.tsx", want: false},
		{name: "conditions_and", when: Predicate{ContainsAny: []string{"requests"}, Filename: "page.tsx"}, path: "app/requests/layout.tsx", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.when.Match(tt.path))
		})
	}
}

func TestPredicate_String(t *testing.T) {
	assert.Equal(t, "*", Predicate{}.String())
	assert.Equal(t, "contains any of [a, b] and filename is c.tsx",
		Predicate{ContainsAny: []string{"a", "b"}, Filename: "c.tsx"}.String())
}

func TestCompiledTable_Select(t *testing.T) {
	table := Table{
		{
			Rules: text.Ruleset{Name: "base", Rules: []text.Rule{
				{Pattern: `text-gray-500"`, Replace: `text-gray-500 dark:text-gray-400"`},
			}},
		},
		{
			When: Predicate{ContainsAll: []string{"requests/page.tsx"}},
			Rules: text.Ruleset{Name: "requests", Rules: []text.Rule{
				{Pattern: `className="mt-2 p-3 bg-gray-50([^"]*?)"`, Replace: `className="mt-2 p-3 bg-gray-100 dark:bg-gray-700${1} dark:text-gray-200"`},
			}},
		},
	}

	compiled, err := Compile(table)
	require.NoError(t, err)

	content := `<p className="mt-2 p-3 bg-gray-50 rounded text-gray-500">`

	scoped := compiled.Select("app/(dashboard)/requests/page.tsx")
	assert.Equal(t, []string{"base", "requests"}, scoped.Rulesets)
	assert.Equal(t, 2, scoped.Rules.Len())

	other := compiled.Select("app/(dashboard)/vacations/page.tsx")
	assert.Equal(t, []string{"base"}, other.Rulesets)
	assert.Equal(t, 1, other.Rules.Len())

	// same content, different path: only the matching path gets the scoped rule
	assert.Equal(t, `<p className="mt-2 p-3 bg-gray-100 dark:bg-gray-700 rounded text-gray-500 dark:text-gray-400 dark:text-gray-200">`,
		scoped.Rules.Apply(content).ModifiedContent)
	assert.Equal(t, `<p className="mt-2 p-3 bg-gray-50 rounded text-gray-500 dark:text-gray-400">`,
		other.Rules.Apply(content).ModifiedContent)
}

func TestCompiledTable_SelectNothing(t *testing.T) {
	compiled, err := Compile(Table{{
		When:  Predicate{Filename: "Modal.tsx"},
		Rules: text.Ruleset{Name: "modal", Rules: []text.Rule{{Pattern: "x", Replace: "y"}}},
	}})
	require.NoError(t, err)

	sel := compiled.Select("components/Header.tsx")
	assert.Empty(t, sel.Rulesets)
	assert.Equal(t, 0, sel.Rules.Len())

	result := sel.Rules.Apply("x")
	assert.False(t, result.WasModified)
}

func TestCompile_Errors(t *testing.T) {
	_, err := Compile(Table{{
		When:  Predicate{Glob: "app/[page.tsx"},
		Rules: text.Ruleset{Name: "bad-glob"},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ruleset 0 (bad-glob): invalid glob pattern")

	_, err = Compile(Table{{
		Rules: text.Ruleset{Name: "bad-rule", Source: "contrast", Rules: []text.Rule{{Pattern: "(("}}},
	}})
	require.Error(t, err)
	var ruleErr *text.RuleError
	assert.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "contrast", ruleErr.Source)
}

func TestTable_RuleCount(t *testing.T) {
	table := Table{
		{Rules: text.Ruleset{Rules: make([]text.Rule, 3)}},
		{Rules: text.Ruleset{Rules: make([]text.Rule, 2)}},
	}
	assert.Equal(t, 5, table.RuleCount())
}
