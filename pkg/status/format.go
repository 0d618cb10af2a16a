package status

import (
	"fmt"
	"strings"
)

// FileFormatter defines how file status and progress should be formatted
type FileFormatter interface {
	// FormatFileStatus formats a per-file status message
	FormatFileStatus(info FileInfo) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileStatus formats a file status message with emojis
func (f *DefaultFileFormatter) FormatFileStatus(info FileInfo) string {
	var msg string
	switch info.Status {
	case StatusModified:
		msg = fmt.Sprintf("📝 Modified %s", info.Path)
	case StatusWouldModify:
		msg = fmt.Sprintf("🔍 Would modify %s", info.Path)
	case StatusMissing:
		msg = fmt.Sprintf("⚠️  Not found %s", info.Path)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s", info.Path)
	default:
		return fmt.Sprintf("👍 Unchanged %s", info.Path)
	}
	if info.Replacements > 0 {
		msg += fmt.Sprintf(" (%d replacements", info.Replacements)
		if len(info.Rulesets) > 0 {
			msg += " via " + strings.Join(info.Rulesets, ", ")
		}
		msg += ")"
	}
	return msg
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
