// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package fileutil

import (
	"crypto/md5"  // #nosec G501 - md5 retained for package metadata compatibility
	"crypto/sha1" // #nosec G505 - sha1 retained for package metadata compatibility
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
)

// ErrUnknownAlgorithm indicates an unrecognized digest algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// digestChunkSize is the read size used when hashing files (256 KiB).
const digestChunkSize = 262144

// digestConstructors maps algorithm names to hash constructors.
var digestConstructors = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha224": sha256.New224,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// Digest computes the named digest of a file's contents and returns it
// as a lowercase hex string. The file is read in 256 KiB chunks so
// arbitrarily large files hash in constant memory.
//
// Supported algorithms: md5, sha1, sha224, sha256, sha384, sha512.
func Digest(path, algorithm string) (string, error) {
	newHash, ok := digestConstructors[algorithm]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	f, err := os.Open(path) // #nosec G304 - path supplied by caller
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := newHash()
	buf := make([]byte, digestChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// MD5File returns the md5 digest of a file as a hex string.
func MD5File(path string) (string, error) {
	return Digest(path, "md5")
}
