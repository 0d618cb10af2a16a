package presets

import (
	"github.com/walteh/restyle/pkg/scope"
	"github.com/walteh/restyle/pkg/text"
)

var contrastFiles = []string{
	"app/(dashboard)/page.tsx",
	"app/(dashboard)/vacations/page.tsx",
	"app/(dashboard)/requests/page.tsx",
	"app/(dashboard)/recurring/page.tsx",
	"app/(dashboard)/overtime/page.tsx",
	"app/(dashboard)/statistics/page.tsx",
	"components/modals/VacationRequestModal.tsx",
}

var contrastTable = scope.Table{
	{
		When: scope.Predicate{ContainsAny: []string{"VacationRequestModal.tsx", "vacations/page.tsx"}},
		Rules: text.Ruleset{Name: "balance-cards", Source: "preset contrast", Rules: []text.Rule{
			{Name: "days-blue", Pattern: `className="text-3xl font-bold text-blue-600"`, Replace: `className="text-3xl font-bold text-blue-500 dark:text-blue-400"`},
			{Name: "days-green", Pattern: `className="text-3xl font-bold text-green-600"`, Replace: `className="text-3xl font-bold text-green-500 dark:text-green-400"`},
			{Name: "secondary-btn", Pattern: `className="px-4 py-2 rounded-lg font-medium bg-white text-gray-700 border border-gray-300 hover:bg-gray-50"`, Replace: `className="px-4 py-2 rounded-lg font-medium bg-white dark:bg-gray-700 text-gray-700 dark:text-white border border-gray-300 dark:border-gray-600 hover:bg-gray-50 dark:hover:bg-gray-600"`},
		}},
	},
	{
		When: scope.Predicate{ContainsAll: []string{"page.tsx", "(dashboard)"}},
		Rules: text.Ruleset{Name: "dashboard-buttons", Source: "preset contrast", Rules: []text.Rule{
			{Name: "outline-btn", Pattern: `className="px-4 py-2([^"]*?)bg-white([^"]*?)border([^"]*?)"`, Replace: `className="px-4 py-2${1}bg-white dark:bg-gray-700${2}border dark:border-gray-600 dark:text-white${3}"`},
			{Name: "primary-btn", Pattern: `className="px-4 py-2 bg-blue-600 hover:bg-blue-700 text-white rounded-lg font-medium transition-colors"`, Replace: `className="px-4 py-2 bg-blue-600 hover:bg-blue-700 dark:bg-blue-500 dark:hover:bg-blue-600 text-white rounded-lg font-medium transition-colors"`},
		}},
	},
	{
		When: scope.Predicate{ContainsAny: []string{"requests/page.tsx"}},
		Rules: text.Ruleset{Name: "request-comments", Source: "preset contrast", Rules: []text.Rule{
			{Name: "comment", Pattern: `className="mt-2 p-3 bg-gray-50([^"]*?)"`, Replace: `className="mt-2 p-3 bg-gray-100 dark:bg-gray-700${1} dark:text-gray-200"`},
		}},
	},
	{
		When: scope.Predicate{ContainsAny: []string{"recurring/page.tsx"}},
		Rules: text.Ruleset{Name: "rule-cards", Source: "preset contrast", Rules: []text.Rule{
			{Name: "card", Pattern: `className="p-6 bg-gray-50([^"]*?)"`, Replace: `className="p-6 bg-white dark:bg-gray-800${1}"`},
		}},
	},
	{
		When: scope.Predicate{ContainsAny: []string{"overtime/page.tsx", "statistics/page.tsx"}},
		Rules: text.Ruleset{Name: "filter-buttons", Source: "preset contrast", Rules: []text.Rule{
			{Name: "filter-btn", Pattern: `className="px-4 py-2 rounded-lg font-medium([^"]*?)bg-white([^"]*?)"`, Replace: `className="px-4 py-2 rounded-lg font-medium${1}bg-gray-100 dark:bg-gray-700${2} dark:text-white dark:border-gray-600"`},
		}},
	},
}

// Contrast raises contrast on a fixed list of dashboard files
var Contrast = Preset{
	Name:        "contrast",
	Description: "raise dark mode contrast on dashboard pages and the vacation modal",
	Files:       contrastFiles,
	Table:       contrastTable,
	Hint:        "restart: rm -rf .next && npm run dev",
}

var contrastTokenRules = []text.Rule{
	{Name: "blue-inline-color", Pattern: `(className="[^"]*text-blue-600[^"]*")`, Replace: `${1} style={{ color: "#3b82f6" }}`},
	{Name: "blue-600", Pattern: `text-blue-600`, Replace: `text-blue-400 dark:text-blue-300`},
	{Name: "blue-700", Pattern: `text-blue-700`, Replace: `text-blue-500 dark:text-blue-300`},
	{Name: "bg-100-700", Pattern: `bg-gray-100 dark:bg-gray-700`, Replace: `bg-gray-200 dark:bg-gray-700`},
	{Name: "outline-btn", Pattern: `className="px-4 py-2 bg-white dark:bg-gray-800 border`, Replace: `className="px-4 py-2 bg-white dark:bg-gray-700 border`},
	{Name: "bg-50-700", Pattern: `bg-gray-50 dark:bg-gray-700`, Replace: `bg-gray-50 dark:bg-gray-800/50`},
	{Name: "filter-btn", Pattern: `className="px-4 py-2 rounded-lg font-medium dark:text-white dark:bg-gray-800`, Replace: `className="px-4 py-2 rounded-lg font-medium dark:text-white dark:bg-gray-700`},
	{Name: "white-text-700", Pattern: `bg-white dark:bg-gray-800 text-gray-700 dark:text-gray-300`, Replace: `bg-gray-100 dark:bg-gray-700 text-gray-700 dark:text-gray-200`},
	{Name: "bg-50-900", Pattern: `bg-gray-50 dark:bg-gray-900`, Replace: `bg-gray-50 dark:bg-gray-800`},
}

// ContrastTokens is the global token list that never ran as part of contrast.
// It is only applied when asked for by name.
var ContrastTokens = Preset{
	Name:        "contrast-tokens",
	Description: "global blue/gray token bumps (opt-in, not part of contrast)",
	Files:       contrastFiles,
	Table:       base("contrast-tokens", contrastTokenRules),
	Hint:        "restart: rm -rf .next && npm run dev",
	OptIn:       true,
}
