/*
Package config loads restyle configuration files.

	            +---------------+
	            | RestyleConfig |
	            +-------+-------+
	                    |
	   +--------+-------+--------+----------+
	   |        |                |          |
	+--+---+ +--+--+         +---+--+  +----+----+
	| YAML | | HCL |         | JSON |  | dotfile |
	+------+ +-----+         +------+  +---------+

🎯 Purpose:
- Replace hard-coded roots, file lists and rule tables with a file
- Reuse the built-in presets by name
- Reject typos early: unknown fields, unknown presets, broken patterns

📝 Shape (YAML):

	root: ./web
	backup: false
	extensions: [.tsx]
	excluded_dirs: [node_modules, .next]
	presets: [dark-theme, remaining-dark]
	passes:
	  - name: badges
	    hint: rm -rf .next && npm run dev
	    rulesets:
	      - name: base
	        rules:
	          - pattern: 'bg-green-100([^-])'
	            replace: 'bg-green-100 dark:bg-green-900${1}'
	      - name: dashboard-only
	        when:
	          contains_all: [page.tsx, (dashboard)]
	        rules:
	          - pattern: 'text-green-800"'
	            replace: 'text-green-800 dark:text-green-200"'

The same in HCL uses blocks for passes, rulesets and rules:

	root = "${env.APP_DIR}/web"
	pass "badges" {
	  ruleset "base" {
	    rule {
	      pattern = "bg-green-100([^-])"
	      replace = "bg-green-100 dark:bg-green-900$1"
	    }
	  }
	}

🔄 Flow:
1. Pick a parser from the file extension
2. Decode, rejecting unknown fields
3. Validate
4. Expand into operation.Pass values with BuildPasses()

A relative root is resolved against the directory of the config file.
*/
package config
