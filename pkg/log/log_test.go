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

package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(symbol, path, status, detail string) string {
	return strings.TrimRight(fmt.Sprintf("  %s %-45s %-13s %s", symbol, path, status, detail), " ")
}

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:         "components/Header.tsx",
					Status:       "modified",
					IsModified:   true,
					Replacements: 2,
					Rulesets:     []string{"base"},
				})
			},
			wantLogs: []string{
				row("✓", "components/Header.tsx", "modified", "2 replacements [base]"),
			},
		},
		{
			name: "log_pass_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.StartPassOperation(context.Background(), PassOperation{
					Name:    "dark-theme",
					Source:  "preset",
					Root:    "/tmp/web",
					Targets: 12,
				})
				logger.EndPassOperation(context.Background())
			},
			wantLogs: []string{
				"◆ dark-theme • 12 files",
			},
		},
		{
			name: "log_dry_run_pass",
			op: func(t *testing.T, logger *Logger) {
				logger.StartPassOperation(context.Background(), PassOperation{
					Name:    "contrast",
					DryRun:  true,
					Targets: 7,
				})
			},
			wantLogs: []string{
				"◆ contrast • 7 files (dry run)",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("applying dark-theme")
			},
			wantLogs: []string{
				"restyle • applying dark-theme",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			tt.op(t, logger)

			output := strings.Trim(buf.String(), "\n")
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, lines[i], "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileOperationFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "modified",
			op:   FileOperation{Path: "app/page.tsx", Status: "modified", IsModified: true, Replacements: 3, Rulesets: []string{"base", "dashboard-pages"}},
			want: row("✓", "app/page.tsx", "modified", "3 replacements [base, dashboard-pages]"),
		},
		{
			name: "dry_run",
			op:   FileOperation{Path: "app/page.tsx", Status: "would-modify", IsModified: true, IsDryRun: true, Replacements: 1},
			want: row("~", "app/page.tsx", "would-modify", "1 replacements"),
		},
		{
			name: "missing",
			op:   FileOperation{Path: "app/(dashboard)/overtime/page.tsx", Status: "missing", IsMissing: true},
			want: row("⚠", "app/(dashboard)/overtime/page.tsx", "missing", ""),
		},
		{
			name: "failed",
			op:   FileOperation{Path: "a.tsx", Status: "failed", IsFailed: true},
			want: row("✗", "a.tsx", "failed", ""),
		},
		{
			name: "unchanged",
			op:   FileOperation{Path: "a.tsx", Status: "unchanged"},
			want: row("•", "a.tsx", "unchanged", ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			logger.LogFileOperation(context.Background(), tt.op)

			assert.Equal(t, tt.want, strings.TrimRight(buf.String(), "\n"), "formatted output should match")
		})
	}
}
