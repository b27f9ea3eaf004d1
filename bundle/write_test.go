package bundle_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/mvi_template/bundle"
)

func TestWriteAll_writes_files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	files := []bundle.File{
		{Path: "ProfileView.swift", Content: "struct ProfileView {}\n", Mode: 0o644},
		{Path: "scripts/run.sh", Content: "#!/bin/sh\n", Mode: 0o755},
	}

	require.NoError(t, bundle.WriteAll(dir, files, false))

	got, err := os.ReadFile(filepath.Join(dir, "ProfileView.swift")) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "struct ProfileView {}\n", string(got))

	st, err := os.Stat(filepath.Join(dir, "scripts", "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), st.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteAll_refuses_existing_without_partial_write(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	existing := filepath.Join(dir, "B.swift")
	require.NoError(t, os.WriteFile(existing, []byte("keep"), 0o600))

	files := []bundle.File{
		{Path: "A.swift", Content: "a", Mode: 0o644},
		{Path: "B.swift", Content: "b", Mode: 0o644},
	}

	err := bundle.WriteAll(dir, files, false)
	require.ErrorIs(t, err, bundle.ErrExists)

	_, err = os.Stat(filepath.Join(dir, "A.swift"))
	require.ErrorIs(t, err, os.ErrNotExist)

	got, err := os.ReadFile(existing) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "keep", string(got))
}

func TestWriteAll_rejects_duplicate_paths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	files := []bundle.File{
		{Path: "A.swift", Content: "first", Mode: 0o644},
		{Path: "./A.swift", Content: "second", Mode: 0o644},
	}

	for _, overwrite := range []bool{false, true} {
		err := bundle.WriteAll(dir, files, overwrite)
		require.ErrorIs(t, err, bundle.ErrDuplicatePath)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteAll_overwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	existing := filepath.Join(dir, "A.swift")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o600))

	err := bundle.WriteAll(
		dir,
		[]bundle.File{{Path: "A.swift", Content: "new", Mode: 0o644}},
		true,
	)
	require.NoError(t, err)

	got, err := os.ReadFile(existing) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestPrint_single_file(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := bundle.Print(&buf, []bundle.File{{Path: "A.swift", Content: "a\n"}})
	require.NoError(t, err)
	assert.Equal(t, "a\n", buf.String())
}

func TestPrint_multiple_files(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := bundle.Print(&buf, []bundle.File{
		{Path: "A.swift", Content: "a\n"},
		{Path: "B.swift", Content: "b\n"},
	})
	require.NoError(t, err)
	assert.Equal(
		t,
		"==> A.swift <==\na\n\n==> B.swift <==\nb\n",
		buf.String(),
	)
}
