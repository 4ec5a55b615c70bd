// Package filelock serializes migrations of the same base directory across
// processes with an advisory flock.
package filelock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"

	"github.com/azuracast/envmigrate/internal/messages"
)

type fileLock struct {
	file *os.File
}

var (
	flockFn   = unix.Flock
	lockSleep = time.Sleep
	tempDir   = os.TempDir
)

var (
	lockWaitTimeout = 30 * time.Second
	lockPollEvery   = 100 * time.Millisecond
)

// PathFor returns the lock file used for baseDir. It lives in the temp
// directory so the application tree is left untouched.
func PathFor(baseDir string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(baseDir)))
	return filepath.Join(tempDir(), "envmigrate-"+hex.EncodeToString(sum[:6])+".lock")
}

// WithLock acquires an exclusive lock on path, runs fn, and releases the lock.
func WithLock(path string, fn func() error) error {
	lock, err := acquire(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.release()
	}()
	return fn()
}

func acquire(path string) (*fileLock, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf(messages.FilelockOpenFmt, path, err)
	}
	if err := lockFile(file); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf(messages.FilelockLockFmt, path, err)
	}
	return &fileLock{file: file}, nil
}

func (l *fileLock) release() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := flockFn(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		_ = l.file.Close()
		return err
	}
	return l.file.Close()
}

// lockFile polls for the exclusive lock until lockWaitTimeout elapses.
func lockFile(file *os.File) error {
	deadline := time.Now().Add(lockWaitTimeout)
	for {
		err := flockFn(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			return err
		}
		if time.Now().After(deadline) {
			return fmt.Errorf(messages.FilelockTimeoutFmt, lockWaitTimeout)
		}
		lockSleep(lockPollEvery)
	}
}
