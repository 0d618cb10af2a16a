/*
Package operation runs passes: discover files, pick rules, rewrite, report.

	+-------------+
	|  discover   |
	|  (targets)  |
	+------+------+
	       |
	+------+------+
	|    scope    |
	|  (select)   |
	+------+------+
	       |
	+------+------+
	|    text     |
	|  (rewrite)  |
	+------+------+
	       |
	+------+------+
	|   status    |
	| (disk, log) |
	+-------------+

🔄 Flow of a pass:
 1. Compile the rule table. A broken pattern stops here, before any file is read.
 2. Discover targets (walk or explicit list).
 3. For each target, in order: read, select rulesets for its path, apply,
    write back only when the content changed.
 4. Print the summary and the pass hint.

⚡ Failure model:
  - Rule errors abort the pass.
  - Per-file errors (unreadable, not UTF-8, write failure) are recorded as
    failed files and the pass moves on.
  - Files listed explicitly but absent are reported as missing.
  - Writes go through symlinks; the link itself is kept.

⏪ Backups: with Options.Backup the first write of a file in a runner leaves
a .bak copy next to it. Restore puts those copies back.

🔍 Example:

	console := log.New(os.Stdout, zerolog.Nop())
	runner := operation.NewRunner(console, operation.Options{DryRun: true})
	summary, err := runner.Run(ctx, presets.DarkTheme.Pass("."))
*/
package operation
