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

package status

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func newTestManager(t *testing.T) (context.Context, *Manager, string) {
	dir := t.TempDir()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())
	return ctx, NewManager(dir, nil), dir
}

func TestManager_WriteFileAtomic(t *testing.T) {
	ctx, mgr, dir := newTestManager(t)

	path := filepath.Join(dir, "page.tsx")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, mgr.WriteFileAtomic(ctx, "page.tsx", []byte("new")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "mode should be preserved")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files should be left behind")
}

func TestManager_WriteFileAtomic_Symlink(t *testing.T) {
	ctx, mgr, dir := newTestManager(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shared"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "app"), 0o755))
	target := filepath.Join(dir, "shared", "Card.tsx")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o640))
	link := filepath.Join(dir, "app", "page.tsx")
	require.NoError(t, os.Symlink(filepath.Join("..", "shared", "Card.tsx"), link))

	require.NoError(t, mgr.WriteFileAtomic(ctx, "app/page.tsx", []byte("new")))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.Equal(t, os.ModeSymlink, info.Mode()&os.ModeSymlink, "link should stay a link")

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	info, err = os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestManager_WriteFileAtomic_MissingDir(t *testing.T) {
	ctx, mgr, _ := newTestManager(t)

	err := mgr.WriteFileAtomic(ctx, "nope/page.tsx", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating temp file")
}

func TestManager_ReadFile(t *testing.T) {
	ctx, mgr, dir := newTestManager(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "app", "(dashboard)"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app", "(dashboard)", "page.tsx"), []byte("hello"), 0o644))

	content, err := mgr.ReadFile(ctx, "app/(dashboard)/page.tsx")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	_, err = mgr.ReadFile(ctx, "missing.tsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestManager_FileExists(t *testing.T) {
	ctx, mgr, dir := newTestManager(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.tsx"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	ok, err := mgr.FileExists(ctx, "a.tsx")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = mgr.FileExists(ctx, "sub")
	require.NoError(t, err)
	assert.False(t, ok, "directories are not files")

	ok, err = mgr.FileExists(ctx, "b.tsx")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_BackupAndRestore(t *testing.T) {
	ctx, mgr, dir := newTestManager(t)

	path := filepath.Join(dir, "page.tsx")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	require.NoError(t, mgr.BackupFile(ctx, "page.tsx"))
	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "original", string(backup))

	require.NoError(t, mgr.WriteFileAtomic(ctx, "page.tsx", []byte("changed")))
	require.NoError(t, mgr.RestoreFile(ctx, "page.tsx"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(content))
	assert.NoFileExists(t, path+".bak")

	// backing up a missing file is a no-op
	require.NoError(t, mgr.BackupFile(ctx, "missing.tsx"))
	assert.NoFileExists(t, filepath.Join(dir, "missing.tsx.bak"))

	err = mgr.RestoreFile(ctx, "missing.tsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backup file does not exist")
}

func TestManager_Tracking(t *testing.T) {
	ctx, mgr, _ := newTestManager(t)

	mgr.StartOperation(ctx, 3)
	mgr.TrackFile(ctx, FileInfo{Path: "b.tsx", Status: StatusModified, Replacements: 2, Rulesets: []string{"base"}})
	mgr.UpdateProgress(ctx, 1)
	mgr.TrackFile(ctx, FileInfo{Path: "a.tsx", Status: StatusUnchanged})
	mgr.UpdateProgress(ctx, 2)
	mgr.TrackFile(ctx, FileInfo{Path: "c.tsx", Status: StatusFailed, Error: errors.New("permission denied")})
	mgr.UpdateProgress(ctx, 3)
	mgr.FinishOperation(ctx)

	files := mgr.ListFiles(ctx)
	require.Len(t, files, 3)
	assert.Equal(t, "a.tsx", files[0].Path)
	assert.Equal(t, "b.tsx", files[1].Path)
	assert.Equal(t, "c.tsx", files[2].Path)

	assert.Equal(t, 2, files[1].Replacements)
	assert.Equal(t, []string{"base"}, files[1].Rulesets)

	summary := mgr.Summary()
	assert.Equal(t, 1, summary[StatusModified])
	assert.Equal(t, 1, summary[StatusUnchanged])
	assert.Equal(t, 1, summary[StatusFailed])
	assert.Equal(t, 0, summary[StatusMissing])
}

func TestFileStatus_String(t *testing.T) {
	assert.Equal(t, "modified", StatusModified.String())
	assert.Equal(t, "would-modify", StatusWouldModify.String())
	assert.Equal(t, "unchanged", StatusUnchanged.String())
	assert.Equal(t, "missing", StatusMissing.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", StatusUnknown.String())
}
