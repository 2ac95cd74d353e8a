package config

import (
	"errors"
	"os"
	"path/filepath"
)

const lockFileName = "state.lock"

var errLockHeld = errors.New("lock already held")

// FileLock is an advisory lock held on a separate lock file in the same directory as the file it
// guards.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a lock guarding path.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: filepath.Join(filepath.Dir(path), lockFileName)}
}

// Lock blocks until it holds the lock exclusively.
func (l *FileLock) Lock() error {
	return l.acquire(os.O_CREATE|os.O_RDWR, true)
}

// RLock blocks until it holds a shared lock.
func (l *FileLock) RLock() error {
	return l.acquire(os.O_CREATE|os.O_RDONLY, false)
}

// Unlock releases the lock. Unlocking a lock that is not held does nothing.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	if err := unlockFile(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (l *FileLock) acquire(flag int, exclusive bool) error {
	if l.file != nil {
		return errLockHeld
	}
	f, err := os.OpenFile(l.path, flag, 0644)
	if err != nil {
		return &IOError{Path: l.path, Err: err}
	}
	if err := lockFile(f, exclusive); err != nil {
		_ = f.Close()
		return err
	}
	l.file = f
	return nil
}
