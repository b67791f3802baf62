// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package finalize

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DedupHardlinks walks root and replaces files with identical content by
// hard links to a single inode. File content is never altered, so a
// previously written completion marker stays valid. It returns the number of
// files that were linked.
//
// This runs on the host filesystem directly: afero has no hard-link
// operation.
func DedupHardlinks(root string) (int, error) {
	bySize := make(map[int64][]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		bySize[info.Size()] = append(bySize[info.Size()], path)

		return nil
	})
	if err != nil {
		return 0, err
	}

	linked := 0

	for _, paths := range bySize {
		if len(paths) < 2 {
			continue
		}

		n, err := linkIdentical(paths)
		linked += n

		if err != nil {
			return linked, err
		}
	}

	return linked, nil
}

// linkIdentical hashes the candidate files and links every duplicate to the
// first file seen with the same content.
func linkIdentical(paths []string) (int, error) {
	byHash := make(map[string]string)
	linked := 0

	for _, path := range paths {
		sum, err := hashFile(path)
		if err != nil {
			return linked, err
		}

		first, ok := byHash[sum]
		if !ok {
			byHash[sum] = path
			continue
		}

		same, err := sameInode(first, path)
		if err != nil {
			return linked, err
		}

		if same {
			continue
		}

		if err := relink(first, path); err != nil {
			return linked, err
		}

		linked++
	}

	return linked, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func sameInode(a, b string) (bool, error) {
	ai, err := os.Stat(a)
	if err != nil {
		return false, err
	}

	bi, err := os.Stat(b)
	if err != nil {
		return false, err
	}

	return os.SameFile(ai, bi), nil
}

// relink replaces dup with a hard link to src.
func relink(src, dup string) error {
	if err := os.Remove(dup); err != nil {
		return err
	}

	return os.Link(src, dup)
}
