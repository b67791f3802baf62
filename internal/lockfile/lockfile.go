// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lockfile implements the advisory run lock that keeps two batch
// runs from executing at the same time.
//
// The lock is presence-based: acquisition creates a file with O_EXCL and
// fails if the file already exists. There is no TTL; a lock left behind by
// a hard-killed process must be removed by an operator.
package lockfile

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	// ErrLockHeld is returned when the lock file already exists.
	ErrLockHeld = errors.New("lock file already exists, another instance is running")
	// ErrCreateLock is returned when the lock file could not be created.
	ErrCreateLock = errors.New("could not create lock file")
	// ErrReleaseLock is returned when the lock file could not be removed.
	ErrReleaseLock = errors.New("could not remove lock file")
)

// Lock represents exclusive ownership of a batch run.
type Lock struct {
	Path       string
	AcquiredAt time.Time

	mu       sync.Mutex
	released bool
}

// Acquire creates the lock file at path. It returns ErrLockHeld if the file
// already exists.
func Acquire(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrLockHeld
		}

		return nil, errors.Join(ErrCreateLock, err)
	}

	l := &Lock{
		Path:       path,
		AcquiredAt: time.Now().UTC(),
	}

	fmt.Fprintf(f, "%d %s\n", os.Getpid(), l.AcquiredAt.Format(time.RFC3339)) //nolint:errcheck

	if err := f.Close(); err != nil {
		return nil, errors.Join(ErrCreateLock, err)
	}

	return l, nil
}

// Release removes the lock file. It is safe to call more than once; only the
// first call removes the file.
func (l *Lock) Release() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.released {
		return nil
	}

	l.released = true

	if err := os.Remove(l.Path); err != nil && !os.IsNotExist(err) {
		return errors.Join(ErrReleaseLock, err)
	}

	return nil
}
