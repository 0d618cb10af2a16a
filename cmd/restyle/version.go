// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/restyle/pkg/presets"
)

// buildInfo identifies a binary and the rule fixtures compiled into it.
// Output of the legacy presets depends on their exact rule lists, so the
// counts are part of what a bug report needs.
type buildInfo struct {
	Version  string         `json:"version"`
	Revision string         `json:"revision,omitempty"`
	Dirty    bool           `json:"dirty,omitempty"`
	Go       string         `json:"go"`
	Platform string         `json:"platform"`
	Presets  map[string]int `json:"presets"`
}

func readBuildInfo() buildInfo {
	info := buildInfo{
		Version:  "dev",
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Presets:  map[string]int{},
	}
	for _, p := range presets.All() {
		info.Presets[p.Name] = p.RuleCount()
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// 🎨 print writes the human readable form, e.g.
//
//	restyle v0.3.0 (1a2b3c4d, dirty) go1.23.5 linux/amd64
//	presets: contrast=8 contrast-tokens=9 dark-theme=22 remaining-dark=12
func (b buildInfo) print(w io.Writer) {
	var rev []string
	if b.Revision != "" {
		rev = append(rev, shortRevision(b.Revision))
	}
	if b.Dirty {
		rev = append(rev, "dirty")
	}
	suffix := ""
	if len(rev) > 0 {
		suffix = " (" + strings.Join(rev, ", ") + ")"
	}
	fmt.Fprintf(w, "restyle %s%s %s %s\n", b.Version, suffix, b.Go, b.Platform)

	counts := make([]string, 0, len(b.Presets))
	for _, name := range presets.Names() {
		counts = append(counts, fmt.Sprintf("%s=%d", name, b.Presets[name]))
	}
	fmt.Fprintf(w, "presets: %s\n", strings.Join(counts, " "))
}

func shortRevision(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// newVersionCmd prints build information
func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version and built-in preset information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := readBuildInfo()
			if !asJSON {
				info.print(cmd.OutOrStdout())
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
