package operation

import (
	"github.com/walteh/restyle/pkg/discover"
	"github.com/walteh/restyle/pkg/scope"
	"github.com/walteh/restyle/pkg/status"
	"github.com/walteh/restyle/pkg/text"
)

// 🎯 Pass is one run of a rule table over a set of files
type Pass struct {
	Name             string
	Source           string // preset or config file the pass came from
	Discovery        discover.Options
	Table            scope.Table
	Hint             string // printed after the summary, e.g. a restart command
	NoChangesMessage string // printed instead of the count when nothing changed
}

// 🔧 Options controls how passes touch the disk
type Options struct {
	DryRun bool // compute everything, write nothing
	Backup bool // copy <file> to <file>.bak before overwriting
}

// 📊 Summary is the outcome of one pass
type Summary struct {
	Pass         string
	Root         string
	DryRun       bool
	Files        []status.FileInfo // every target, sorted by path
	Counts       status.Summary
	Replacements int
}

// Changed returns the number of files that were (or would be) rewritten
func (s *Summary) Changed() int {
	return s.Counts[status.StatusModified] + s.Counts[status.StatusWouldModify]
}

// Failed returns the files that could not be processed
func (s *Summary) Failed() []status.FileInfo {
	return s.filter(status.StatusFailed)
}

// Missing returns the explicitly listed files that were not found
func (s *Summary) Missing() []status.FileInfo {
	return s.filter(status.StatusMissing)
}

func (s *Summary) filter(st status.FileStatus) []status.FileInfo {
	var out []status.FileInfo
	for _, f := range s.Files {
		if f.Status == st {
			out = append(out, f)
		}
	}
	return out
}

// 🔁 UnstableFile is a file whose content keeps changing on re-application
type UnstableFile struct {
	Path      string
	Rulesets  []string
	Offenders []text.RuleHit // rules that changed the text on the second application
}

// 🔍 VerifyReport is the outcome of an idempotence audit of one pass
type VerifyReport struct {
	Pass     string
	Checked  int
	Pending  int // files the first application would change
	Unstable []UnstableFile
	Failed   []status.FileInfo
}

// Stable reports whether every checked file converges after one application
func (r *VerifyReport) Stable() bool {
	return len(r.Unstable) == 0
}
