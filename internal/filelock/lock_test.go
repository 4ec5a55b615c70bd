package filelock

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestPathFor(t *testing.T) {
	dir := t.TempDir()
	orig := tempDir
	t.Cleanup(func() { tempDir = orig })
	tempDir = func() string { return dir }

	a := PathFor("/var/azuracast/www")
	b := PathFor("/var/azuracast/www/")
	c := PathFor("/srv/other")

	assert.Equal(t, a, b, "trailing slash must not change the lock")
	assert.NotEqual(t, a, c)
	assert.Equal(t, dir, filepath.Dir(a))
	assert.True(t, strings.HasPrefix(filepath.Base(a), "envmigrate-"))
	assert.True(t, strings.HasSuffix(a, ".lock"))
}

func TestWithLock_RunsFn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.lock")
	called := false
	err := WithLock(path, func() error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.FileExists(t, path)
}

func TestWithLock_ReturnsFnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.lock")
	boom := errors.New("boom")
	assert.ErrorIs(t, WithLock(path, func() error { return boom }), boom)

	// The lock is released after a failing fn.
	require.NoError(t, WithLock(path, func() error { return nil }))
}

func TestWithLock_OpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "test.lock")
	err := WithLock(path, func() error {
		t.Fatalf("fn must not run")
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open lock file")
}

func TestWithLock_Timeout(t *testing.T) {
	origFlock, origSleep, origTimeout := flockFn, lockSleep, lockWaitTimeout
	t.Cleanup(func() {
		flockFn, lockSleep, lockWaitTimeout = origFlock, origSleep, origTimeout
	})
	lockWaitTimeout = 0
	lockSleep = func(time.Duration) {}
	flockFn = func(fd int, how int) error {
		if how == unix.LOCK_UN {
			return nil
		}
		return unix.EWOULDBLOCK
	}

	path := filepath.Join(t.TempDir(), "test.lock")
	err := WithLock(path, func() error {
		t.Fatalf("fn must not run")
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestWithLock_RetriesUntilAvailable(t *testing.T) {
	origFlock, origSleep := flockFn, lockSleep
	t.Cleanup(func() { flockFn, lockSleep = origFlock, origSleep })
	attempts := 0
	lockSleep = func(time.Duration) {}
	flockFn = func(fd int, how int) error {
		if how == unix.LOCK_UN {
			return nil
		}
		attempts++
		if attempts < 3 {
			return unix.EAGAIN
		}
		return nil
	}

	path := filepath.Join(t.TempDir(), "test.lock")
	require.NoError(t, WithLock(path, func() error { return nil }))
	assert.Equal(t, 3, attempts)
}

func TestWithLock_FlockError(t *testing.T) {
	origFlock := flockFn
	t.Cleanup(func() { flockFn = origFlock })
	flockFn = func(fd int, how int) error { return unix.EBADF }

	path := filepath.Join(t.TempDir(), "test.lock")
	err := WithLock(path, func() error { return nil })
	require.ErrorIs(t, err, unix.EBADF)
}
