package presets

import "github.com/walteh/restyle/pkg/text"

var remainingDarkRules = []text.Rule{
	// "Filters" and "More" buttons
	{Name: "btn-gray-100", Pattern: `className="px-4 py-2 bg-gray-100([^"]*)"`, Replace: `className="px-4 py-2 bg-gray-100 dark:bg-gray-700 dark:text-white${1}"`},
	{Name: "btn-white-border", Pattern: `className="px-4 py-2 bg-white border([^"]*)"`, Replace: `className="px-4 py-2 bg-white dark:bg-gray-800 border dark:border-gray-700 dark:text-white${1}"`},

	// status filter buttons
	{Name: "filter-btn", Pattern: `className="px-4 py-2 rounded-lg font-medium([^"]*)"`, Replace: `className="px-4 py-2 rounded-lg font-medium dark:text-white dark:bg-gray-800 dark:border-gray-700${1}"`},
	{Name: "white-text-700", Pattern: `bg-white text-gray-700`, Replace: `bg-white dark:bg-gray-800 text-gray-700 dark:text-gray-300`},

	// requested days block
	{Name: "panel-blue-50", Pattern: `className="bg-blue-50([^"]*)"`, Replace: `className="bg-blue-50 dark:bg-gray-700${1}"`},
	{Name: "panel-white-p6", Pattern: `className="bg-white p-6([^"]*)"`, Replace: `className="bg-white dark:bg-gray-800 p-6${1}"`},

	// request comments
	{Name: "comment-mt2", Pattern: `className="mt-2 p-3 bg-gray-50([^"]*)"`, Replace: `className="mt-2 p-3 bg-gray-50 dark:bg-gray-700 dark:text-gray-300${1}"`},
	{Name: "comment-p3", Pattern: `className="p-3 bg-gray-50([^"]*)"`, Replace: `className="p-3 bg-gray-50 dark:bg-gray-700 dark:text-gray-300${1}"`},

	// rule cards
	{Name: "rule-card", Pattern: `className="p-6 bg-gray-50([^"]*)"`, Replace: `className="p-6 bg-gray-50 dark:bg-gray-900 dark:text-white${1}"`},

	// statistics month navigation
	{Name: "month-nav", Pattern: `className="p-2 hover:bg-gray-100([^"]*)"`, Replace: `className="p-2 hover:bg-gray-100 dark:hover:bg-gray-700 dark:text-gray-300${1}"`},

	{Name: "border-100", Pattern: `border-gray-100([^-])`, Replace: `border-gray-100 dark:border-gray-700${1}`},
	{Name: "text-400", Pattern: `text-gray-400([^-])`, Replace: `text-gray-400 dark:text-gray-500${1}`},
}

// RemainingDark is the follow-up sweep for spots the first pass missed
var RemainingDark = Preset{
	Name:             "remaining-dark",
	Description:      "follow-up dark: fixes for buttons, panels, comments, rule cards and gray accents",
	ExcludedDirs:     []string{"node_modules", ".next"},
	Extensions:       []string{".tsx"},
	Table:            base("remaining-dark", remainingDarkRules),
	NoChangesMessage: "no additional changes needed",
	Hint:             "restart: rm -rf .next && npm run dev",
}
