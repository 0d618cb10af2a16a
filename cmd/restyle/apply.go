package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/restyle/pkg/log"
	"github.com/walteh/restyle/pkg/operation"
)

type applyOpts struct {
	dryRun bool
	backup bool
}

// newApplyCmd creates the apply command
func newApplyCmd(o *rootOpts) *cobra.Command {
	a := &applyOpts{}

	cmd := &cobra.Command{
		Use:   "apply [preset...]",
		Short: "Rewrite files with the given presets or the config file",
		Long: `Apply runs each pass in order. For every target file it:
1. Reads the file
2. Selects the rulesets whose path predicate matches
3. Applies the rules in order
4. Writes the file back only if the content changed

Files that cannot be read are reported and skipped. A broken rule stops
the run before any file is touched.`,
		Example: `  restyle apply dark-theme remaining-dark
  restyle apply --config .restyle.hcl --backup
  restyle apply contrast --root ./web --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, o, args, operation.Options{DryRun: a.dryRun, Backup: a.backup})
		},
	}

	cmd.Flags().BoolVar(&a.dryRun, "dry-run", false, "report what would change without writing")
	cmd.Flags().BoolVar(&a.backup, "backup", false, "keep a .bak copy of every rewritten file")

	return cmd
}

// newCheckCmd creates the check command, a dry run of apply
func newCheckCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "check [preset...]",
		Short: "Show which files apply would change",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, o, args, operation.Options{DryRun: true})
		},
	}
}

func runApply(cmd *cobra.Command, o *rootOpts, args []string, flags operation.Options) error {
	ctx := cmd.Context()
	console := log.FromContext(ctx)

	passes, opts, err := o.resolvePasses(ctx, args)
	if err != nil {
		return err
	}
	opts.DryRun = flags.DryRun
	opts.Backup = opts.Backup || flags.Backup

	names := make([]string, 0, len(passes))
	for _, p := range passes {
		names = append(names, p.Name)
	}
	verb := "applying"
	if opts.DryRun {
		verb = "checking"
	}
	console.Header(verb + " " + strings.Join(names, ", "))

	_, err = operation.NewRunner(console, opts).RunAll(ctx, passes)
	return err
}
