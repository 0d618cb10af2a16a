package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/restyle/pkg/presets"
	"gitlab.com/tozd/go/errors"
)

// newPresetsCmd lists the built-in presets
func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"NAME", "RULES", "TARGETS", "DESCRIPTION"}}
			for _, p := range presets.All() {
				targets := "walk " + fmt.Sprint(p.Extensions)
				if len(p.Files) > 0 {
					targets = strconv.Itoa(len(p.Files)) + " files"
				}
				name := p.Name
				if p.OptIn {
					name += " (opt-in)"
				}
				data = append(data, []string{name, strconv.Itoa(p.RuleCount()), targets, p.Description})
			}

			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering presets: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
