package presets

import "github.com/walteh/restyle/pkg/text"

// darkThemeRules adds dark: variants next to the light palette classes.
// Order is load-bearing: the quote-anchored and space-anchored twins of a
// token run back to back and the space twin re-matches what the quote twin
// inserted.
var darkThemeRules = []text.Rule{
	// white cards
	{Name: "card-2xl", Pattern: `className="bg-white rounded-2xl shadow-lg`, Replace: `className="bg-white dark:bg-gray-800 rounded-2xl shadow-lg`},
	{Name: "card-lg", Pattern: `className="bg-white rounded-lg shadow-lg`, Replace: `className="bg-white dark:bg-gray-800 rounded-lg shadow-lg`},

	// backgrounds
	{Name: "bg-50-border-b", Pattern: `bg-gray-50 border-b"`, Replace: `bg-gray-50 dark:bg-gray-900 border-b dark:border-gray-700"`},
	{Name: "bg-50-border", Pattern: `bg-gray-50 border"`, Replace: `bg-gray-50 dark:bg-gray-900 border dark:border-gray-700"`},
	{Name: "bg-50-quote", Pattern: `(\s)bg-gray-50"`, Replace: `${1}bg-gray-50 dark:bg-gray-900"`},
	{Name: "bg-50-space", Pattern: `(\s)bg-gray-50 `, Replace: `${1}bg-gray-50 dark:bg-gray-900 `},

	// text
	{Name: "text-900-quote", Pattern: `text-gray-900"`, Replace: `text-gray-900 dark:text-white"`},
	{Name: "text-900-space", Pattern: `text-gray-900 `, Replace: `text-gray-900 dark:text-white `},
	{Name: "text-700-quote", Pattern: `text-gray-700"`, Replace: `text-gray-700 dark:text-gray-300"`},
	{Name: "text-700-space", Pattern: `text-gray-700 `, Replace: `text-gray-700 dark:text-gray-300 `},
	{Name: "text-500-quote", Pattern: `text-gray-500"`, Replace: `text-gray-500 dark:text-gray-400"`},
	{Name: "text-500-space", Pattern: `text-gray-500 `, Replace: `text-gray-500 dark:text-gray-400 `},
	{Name: "text-600-quote", Pattern: `text-gray-600"`, Replace: `text-gray-600 dark:text-gray-300"`},
	{Name: "text-600-space", Pattern: `text-gray-600 `, Replace: `text-gray-600 dark:text-gray-300 `},

	// hover
	{Name: "hover-50-quote", Pattern: `hover:bg-gray-50"`, Replace: `hover:bg-gray-50 dark:hover:bg-gray-700"`},
	{Name: "hover-50-space", Pattern: `hover:bg-gray-50 `, Replace: `hover:bg-gray-50 dark:hover:bg-gray-700 `},

	// borders and inputs
	{Name: "input-lg", Pattern: `border-gray-300 rounded-lg"`, Replace: `border-gray-300 dark:border-gray-700 dark:bg-gray-900 dark:text-white rounded-lg"`},
	{Name: "input-md", Pattern: `border-gray-300 rounded-md"`, Replace: `border-gray-300 dark:border-gray-700 dark:bg-gray-900 dark:text-white rounded-md"`},
	{Name: "border-200-quote", Pattern: `border-gray-200"`, Replace: `border-gray-200 dark:border-gray-700"`},
	{Name: "border-200-space", Pattern: `border-gray-200 `, Replace: `border-gray-200 dark:border-gray-700 `},

	// table rows
	{Name: "row-quote", Pattern: `bg-white hover:bg-gray-50"`, Replace: `bg-white dark:bg-gray-900 hover:bg-gray-50 dark:hover:bg-gray-800"`},
	{Name: "row-space", Pattern: `bg-white hover:bg-gray-50 `, Replace: `bg-white dark:bg-gray-900 hover:bg-gray-50 dark:hover:bg-gray-800 `},
}

// DarkTheme is the first dark mode sweep over every .tsx file
var DarkTheme = Preset{
	Name:         "dark-theme",
	Description:  "add dark: variants for cards, backgrounds, text, hovers, borders and table rows",
	ExcludedDirs: []string{"node_modules", ".next"},
	Extensions:   []string{".tsx"},
	Table:        base("dark-theme", darkThemeRules),
	Hint:         "next steps: rm -rf .next && npm run dev",
}
