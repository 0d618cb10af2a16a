package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/restyle/pkg/log"
	"github.com/walteh/restyle/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

var errUnstable = errors.Base("rules are not idempotent")

// newVerifyCmd creates the verify command
func newVerifyCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [preset...]",
		Short: "Report files that would change again on a second run",
		Long: `Verify applies each pass twice in memory and lists the files whose
content still changes on the second application, together with the rules
responsible. Nothing is written. The command fails when any file is unstable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)

			passes, opts, err := o.resolvePasses(ctx, args)
			if err != nil {
				return err
			}
			opts.DryRun = true
			runner := operation.NewRunner(console, opts)

			unstable := 0
			for _, pass := range passes {
				report, err := runner.Verify(ctx, pass)
				if err != nil {
					return err
				}
				printReport(console, report)
				unstable += len(report.Unstable)
			}

			if unstable > 0 {
				return errors.Errorf("%d files: %w", unstable, errUnstable)
			}
			return nil
		},
	}
}

func printReport(console *log.Logger, r *operation.VerifyReport) {
	console.Header("verify " + r.Pass)

	for _, f := range r.Failed {
		console.Errorf("%s: %v", f.Path, f.Error)
	}
	for _, f := range r.Unstable {
		rules := make([]string, 0, len(f.Offenders))
		for _, h := range f.Offenders {
			rules = append(rules, h.Name)
		}
		console.Warningf("%s keeps changing (%s)", f.Path, strings.Join(rules, ", "))
	}

	if r.Stable() {
		console.Successf("%d files stable, %d pending changes", r.Checked, r.Pending)
	} else {
		console.Warningf("%d of %d files unstable", len(r.Unstable), r.Checked)
	}
}
