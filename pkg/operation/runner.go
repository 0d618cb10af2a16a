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

package operation

import (
	"context"
	"io"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/restyle/pkg/discover"
	"github.com/walteh/restyle/pkg/log"
	"github.com/walteh/restyle/pkg/scope"
	"github.com/walteh/restyle/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidUTF8 marks files that are not valid UTF-8 text
var ErrInvalidUTF8 = errors.Base("content is not valid UTF-8")

// 🏃 Runner executes passes one file at a time
type Runner struct {
	console *log.Logger
	opts    Options

	// files already backed up by this runner; the first backup wins so a
	// .bak holds the content from before the whole run
	backedUp map[string]bool
}

// 🏗️ NewRunner creates a new runner. A nil console discards output.
func NewRunner(console *log.Logger, opts Options) *Runner {
	if console == nil {
		console = log.New(io.Discard, zerolog.Nop())
	}
	return &Runner{
		console:  console,
		opts:     opts,
		backedUp: map[string]bool{},
	}
}

// 📦 prepared is a pass ready to iterate
type prepared struct {
	table   *scope.CompiledTable
	targets []discover.Target
	mgr     *status.Manager
	root    string
}

func (r *Runner) prepare(ctx context.Context, pass Pass) (*prepared, error) {
	// rules first: a broken pattern must fail before any file is looked at
	table, err := scope.Compile(pass.Table)
	if err != nil {
		return nil, errors.Errorf("compiling %s: %w", pass.Name, err)
	}

	root, err := filepath.Abs(pass.Discovery.Root)
	if err != nil {
		return nil, errors.Errorf("resolving root: %w", err)
	}

	targets, err := discover.Find(ctx, pass.Discovery)
	if err != nil {
		return nil, errors.Errorf("discovering files for %s: %w", pass.Name, err)
	}

	return &prepared{
		table:   table,
		targets: targets,
		mgr:     status.NewManager(root, nil),
		root:    root,
	}, nil
}

// 🏃 Run executes one pass and prints its summary.
// Only rule, discovery and cancellation errors are returned; per-file
// problems end up in the summary.
func (r *Runner) Run(ctx context.Context, pass Pass) (*Summary, error) {
	logger := zerolog.Ctx(ctx).With().Str("pass", pass.Name).Logger()
	ctx = logger.WithContext(ctx)

	p, err := r.prepare(ctx, pass)
	if err != nil {
		return nil, err
	}

	r.console.StartPassOperation(ctx, log.PassOperation{
		Name:    pass.Name,
		Source:  pass.Source,
		Root:    p.root,
		DryRun:  r.opts.DryRun,
		Targets: len(p.targets),
	})
	defer r.console.EndPassOperation(ctx)

	p.mgr.StartOperation(ctx, len(p.targets))
	for i, target := range p.targets {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("running %s: %w", pass.Name, err)
		}
		info := r.processFile(ctx, p, target)
		p.mgr.TrackFile(ctx, info)
		r.report(ctx, info)
		p.mgr.UpdateProgress(ctx, i+1)
	}
	p.mgr.FinishOperation(ctx)

	summary := &Summary{
		Pass:   pass.Name,
		Root:   p.root,
		DryRun: r.opts.DryRun,
		Files:  p.mgr.ListFiles(ctx),
		Counts: p.mgr.Summary(),
	}
	for _, f := range summary.Files {
		if f.Status == status.StatusModified || f.Status == status.StatusWouldModify {
			summary.Replacements += f.Replacements
		}
	}

	r.printSummary(pass, summary)
	return summary, nil
}

// 🔁 RunAll executes passes in order, stopping at the first fatal error
func (r *Runner) RunAll(ctx context.Context, passes []Pass) ([]*Summary, error) {
	summaries := make([]*Summary, 0, len(passes))
	for _, pass := range passes {
		s, err := r.Run(ctx, pass)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// 📄 processFile handles one target; it never returns an error, failures
// are recorded on the returned info
func (r *Runner) processFile(ctx context.Context, p *prepared, target discover.Target) status.FileInfo {
	info := status.FileInfo{Path: target.Path}

	if target.Missing {
		info.Status = status.StatusMissing
		return info
	}

	content, err := p.mgr.ReadFile(ctx, target.Path)
	if err != nil {
		return failed(info, err)
	}
	if !utf8.Valid(content) {
		return failed(info, ErrInvalidUTF8)
	}

	sel := p.table.Select(target.Path)
	info.Rulesets = sel.Rulesets

	result := sel.Rules.Apply(string(content))
	info.Replacements = result.ReplacementCount
	if !result.WasModified {
		info.Status = status.StatusUnchanged
		return info
	}

	if r.opts.DryRun {
		info.Status = status.StatusWouldModify
		return info
	}

	if key := filepath.Join(p.root, filepath.FromSlash(target.Path)); r.opts.Backup && !r.backedUp[key] {
		if err := p.mgr.BackupFile(ctx, target.Path); err != nil {
			return failed(info, err)
		}
		r.backedUp[key] = true
	}

	if err := p.mgr.WriteFileAtomic(ctx, target.Path, []byte(result.ModifiedContent)); err != nil {
		return failed(info, err)
	}

	info.Status = status.StatusModified
	return info
}

func failed(info status.FileInfo, err error) status.FileInfo {
	info.Status = status.StatusFailed
	info.Error = err
	return info
}

// 📝 report prints the console line for a processed file
func (r *Runner) report(ctx context.Context, info status.FileInfo) {
	op := log.FileOperation{
		Path:         info.Path,
		Replacements: info.Replacements,
		Rulesets:     info.Rulesets,
	}
	switch info.Status {
	case status.StatusModified:
		op.Status = "modified"
		op.IsModified = true
	case status.StatusWouldModify:
		op.Status = "would modify"
		op.IsDryRun = true
	case status.StatusMissing:
		op.Status = "not found"
		op.IsMissing = true
		op.Replacements = 0
	case status.StatusFailed:
		op.Status = "failed"
		op.IsFailed = true
		op.Replacements = 0
	default:
		return
	}
	r.console.LogFileOperation(ctx, op)
	if info.Error != nil {
		r.console.Errorf("%s: %v", info.Path, info.Error)
	}
}

// 📊 printSummary prints the closing lines of a pass
func (r *Runner) printSummary(pass Pass, s *Summary) {
	r.console.LogNewline()

	changed := s.Changed()
	switch {
	case changed == 0 && pass.NoChangesMessage != "":
		r.console.Info(pass.NoChangesMessage)
	case s.DryRun:
		r.console.Successf("would update %d files", changed)
	default:
		r.console.Successf("updated %d files", changed)
	}

	if n := len(s.Missing()); n > 0 {
		r.console.Warningf("%d files not found", n)
	}
	if n := len(s.Failed()); n > 0 {
		r.console.Warningf("%d files failed", n)
	}

	if pass.Hint != "" && !s.DryRun {
		r.console.LogNewline()
		r.console.Info(pass.Hint)
	}
	r.console.LogNewline()
}

// 🔍 Verify applies every file's rules twice in memory and reports files
// whose second application still changes the text. Nothing is written.
func (r *Runner) Verify(ctx context.Context, pass Pass) (*VerifyReport, error) {
	logger := zerolog.Ctx(ctx).With().Str("pass", pass.Name).Logger()
	ctx = logger.WithContext(ctx)

	p, err := r.prepare(ctx, pass)
	if err != nil {
		return nil, err
	}

	report := &VerifyReport{Pass: pass.Name}
	for _, target := range p.targets {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("verifying %s: %w", pass.Name, err)
		}
		if target.Missing {
			continue
		}

		content, err := p.mgr.ReadFile(ctx, target.Path)
		if err != nil {
			report.Failed = append(report.Failed, failed(status.FileInfo{Path: target.Path}, err))
			continue
		}
		if !utf8.Valid(content) {
			report.Failed = append(report.Failed, failed(status.FileInfo{Path: target.Path}, ErrInvalidUTF8))
			continue
		}

		sel := p.table.Select(target.Path)
		idem := sel.Rules.CheckIdempotent(string(content))
		report.Checked++
		if idem.First.WasModified {
			report.Pending++
		}
		if !idem.Stable {
			logger.Debug().Str("path", target.Path).Int("offenders", len(idem.Offenders)).Msg("unstable file")
			report.Unstable = append(report.Unstable, UnstableFile{
				Path:      target.Path,
				Rulesets:  sel.Rulesets,
				Offenders: idem.Offenders,
			})
		}
	}

	return report, nil
}

// ⏪ Restore puts back the .bak copies a backed-up run left for the pass's
// targets and removes them. Files without a backup are left alone.
func (r *Runner) Restore(ctx context.Context, pass Pass) (*Summary, error) {
	logger := zerolog.Ctx(ctx).With().Str("pass", pass.Name).Logger()
	ctx = logger.WithContext(ctx)

	p, err := r.prepare(ctx, pass)
	if err != nil {
		return nil, err
	}

	r.console.StartPassOperation(ctx, log.PassOperation{
		Name:    pass.Name,
		Source:  pass.Source,
		Root:    p.root,
		DryRun:  r.opts.DryRun,
		Targets: len(p.targets),
	})
	defer r.console.EndPassOperation(ctx)

	for _, target := range p.targets {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("restoring %s: %w", pass.Name, err)
		}
		if target.Missing {
			continue
		}

		info := r.restoreFile(ctx, p, target)
		p.mgr.TrackFile(ctx, info)

		switch info.Status {
		case status.StatusModified, status.StatusWouldModify:
			r.console.LogFileOperation(ctx, log.FileOperation{
				Path:       info.Path,
				Status:     "restored",
				IsModified: !r.opts.DryRun,
				IsDryRun:   r.opts.DryRun,
			})
		case status.StatusFailed:
			r.report(ctx, info)
		}
	}

	summary := &Summary{
		Pass:   pass.Name,
		Root:   p.root,
		DryRun: r.opts.DryRun,
		Files:  p.mgr.ListFiles(ctx),
		Counts: p.mgr.Summary(),
	}

	r.console.LogNewline()
	switch n := summary.Changed(); {
	case n == 0:
		r.console.Infof("no backups found under %s", p.root)
	case summary.DryRun:
		r.console.Successf("would restore %d files", n)
	default:
		r.console.Successf("restored %d files", n)
	}
	if n := len(summary.Failed()); n > 0 {
		r.console.Warningf("%d files failed", n)
	}
	r.console.LogNewline()

	return summary, nil
}

func (r *Runner) restoreFile(ctx context.Context, p *prepared, target discover.Target) status.FileInfo {
	info := status.FileInfo{Path: target.Path}

	ok, err := p.mgr.FileExists(ctx, target.Path+".bak")
	if err != nil {
		return failed(info, err)
	}
	if !ok {
		info.Status = status.StatusUnchanged
		return info
	}

	if r.opts.DryRun {
		info.Status = status.StatusWouldModify
		return info
	}
	if err := p.mgr.RestoreFile(ctx, target.Path); err != nil {
		return failed(info, err)
	}
	info.Status = status.StatusModified
	return info
}
