package status

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 🧪 TestDefaultFileFormatter tests the default file formatter implementation
func TestDefaultFileFormatter(t *testing.T) {
	tests := []struct {
		name string
		info FileInfo
		want string
	}{
		{
			name: "modified_file",
			info: FileInfo{Path: "components/Header.tsx", Status: StatusModified, Replacements: 3, Rulesets: []string{"base", "modals"}},
			want: "📝 Modified components/Header.tsx (3 replacements via base, modals)",
		},
		{
			name: "modified_without_rulesets",
			info: FileInfo{Path: "a.tsx", Status: StatusModified, Replacements: 1},
			want: "📝 Modified a.tsx (1 replacements)",
		},
		{
			name: "dry_run",
			info: FileInfo{Path: "a.tsx", Status: StatusWouldModify},
			want: "🔍 Would modify a.tsx",
		},
		{
			name: "missing",
			info: FileInfo{Path: "app/page.tsx", Status: StatusMissing},
			want: "⚠️  Not found app/page.tsx",
		},
		{
			name: "failed",
			info: FileInfo{Path: "a.tsx", Status: StatusFailed, Replacements: 4},
			want: "❌ Failed a.tsx",
		},
		{
			name: "unchanged",
			info: FileInfo{Path: "a.tsx", Status: StatusUnchanged},
			want: "👍 Unchanged a.tsx",
		},
	}

	f := NewDefaultFileFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatFileStatus(tt.info))
		})
	}
}

func TestDefaultFileFormatter_FormatProgress(t *testing.T) {
	f := NewDefaultFileFormatter()

	assert.Equal(t, "⏳ Progress: 1/4 (25%)", f.FormatProgress(1, 4))
	assert.Equal(t, "✅ Progress: 4/4 (100%)", f.FormatProgress(4, 4))
	assert.Equal(t, "✅ Progress: 0/0 (0%)", f.FormatProgress(0, 0))
}

func TestDefaultFileFormatter_FormatError(t *testing.T) {
	f := NewDefaultFileFormatter()

	assert.Equal(t, "", f.FormatError(nil))
	assert.Equal(t, "❌ Error: boom", f.FormatError(fmt.Errorf("boom")))
}
