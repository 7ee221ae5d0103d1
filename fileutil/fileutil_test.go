// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTempPersists(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, ".tmp")

	f, err := CreateTemp(prefix, ".bat")
	require.NoError(t, err)

	path := f.Name()
	_, err = f.WriteString("@echo hi\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// The file must survive the close; the caller owns deletion.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "@echo hi\n", string(data))

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, ".tmp"), "name %q should carry the prefix", base)
	assert.True(t, strings.HasSuffix(base, ".bat"), "name %q should carry the suffix", base)
}

func TestCreateTempUniqueNames(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, ".tmp")

	a, err := CreateTemp(prefix, "")
	require.NoError(t, err)
	defer func() { _ = a.Close() }()
	b, err := CreateTemp(prefix, "")
	require.NoError(t, err)
	defer func() { _ = b.Close() }()

	assert.NotEqual(t, a.Name(), b.Name())
}

func TestCreateTempMissingDir(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "nope", ".tmp")
	_, err := CreateTemp(prefix, "")
	assert.Error(t, err)
}

func TestWriteTemp(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteTemp(filepath.Join(dir, ".tmp"), ".sh", "echo ok\n")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "echo ok\n", string(data))
}

func TestDigest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	tests := []struct {
		algorithm string
		expected  string
	}{
		{"md5", "5d41402abc4b2a76b9719d911017c592"},
		{"sha1", "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{"sha256", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
	}
	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			got, err := Digest(path, tt.algorithm)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDigestUnknownAlgorithm(t *testing.T) {
	_, err := Digest("anything", "crc99")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestDigestMissingFile(t *testing.T) {
	_, err := Digest(filepath.Join(t.TempDir(), "missing"), "sha256")
	assert.Error(t, err)
}

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "0 B"},
		{42, "42 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1042, "1 KB"},
		{1024*1024 - 1, "1024 KB"},
		{10004242, "9.5 MB"},
		{100000004242, "93.13 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, HumanBytes(tt.n), "n=%d", tt.n)
	}
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, AtomicWriteFile(path, []byte("first"), 0o644))
	require.NoError(t, AtomicWriteFile(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEnsureDirAndFileExists(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, EnsureDir(nested))
	require.NoError(t, EnsureDir(nested)) // idempotent

	assert.False(t, FileExists(nested, "f.txt"))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "f.txt"), nil, 0o644))
	assert.True(t, FileExists(nested, "f.txt"))
}
