package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/restyle/pkg/log"
	"github.com/walteh/restyle/pkg/operation"
)

// newRestoreCmd creates the restore command, the undo of apply --backup
func newRestoreCmd(o *rootOpts) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "restore [preset...]",
		Short: "Put back the .bak copies left by apply --backup",
		Long: `Restore looks at the same files apply would visit and, for every file
with a .bak copy next to it, replaces the file with the copy and removes
the copy. Files without a backup are left as they are.`,
		Example: `  restyle apply dark-theme remaining-dark --backup
  restyle restore dark-theme remaining-dark`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)

			passes, opts, err := o.resolvePasses(ctx, args)
			if err != nil {
				return err
			}
			opts.DryRun = dryRun

			names := make([]string, 0, len(passes))
			for _, p := range passes {
				names = append(names, p.Name)
			}
			console.Header("restoring " + strings.Join(names, ", "))

			runner := operation.NewRunner(console, opts)
			for _, pass := range passes {
				if _, err := runner.Restore(ctx, pass); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the files that would be restored")

	return cmd
}
