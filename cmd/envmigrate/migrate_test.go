package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azuracast/envmigrate/internal/filelock"
	"github.com/azuracast/envmigrate/internal/migrate"
	"github.com/azuracast/envmigrate/internal/prompt"
	"github.com/azuracast/envmigrate/internal/testutil"
)

const legacyIni = "application_env = \"development\"\ndb_host = \"azuracast\"\ndb_password = \"pw\"\n"

type failingWriteSystem struct{}

func (failingWriteSystem) ReadFile(string) ([]byte, error) { return nil, fs.ErrNotExist }

func (failingWriteSystem) WriteFileAtomic(string, []byte, os.FileMode) error {
	return errors.New("disk full")
}

func (failingWriteSystem) Remove(string) error { return nil }

func TestMigrateCmd_WritesSettings(t *testing.T) {
	baseDir := t.TempDir()
	stubRoot(t, t.TempDir())
	testutil.WriteFile(t, filepath.Join(baseDir, "app", "env.ini"), legacyIni)

	var out bytes.Buffer
	err := execute([]string{"envmigrate", "migrate", "--base-dir", baseDir}, &out, &out)
	require.NoError(t, err)
	assert.Equal(t, "Configuration successfully written.\n", out.String())

	content := testutil.ReadFile(t, filepath.Join(baseDir, "env.ini"))
	assert.Contains(t, content, "APPLICATION_ENV=\"development\"")
	assert.Contains(t, content, "MYSQL_HOST=\"localhost\"")
	assert.Contains(t, content, "MYSQL_PASSWORD=\"pw\"")
	assert.NotContains(t, content, "db_host")
	assert.NoFileExists(t, filepath.Join(baseDir, "app", "env.ini"))
}

func TestMigrateCmd_DryRun(t *testing.T) {
	baseDir := t.TempDir()
	stubRoot(t, t.TempDir())
	legacyPath := filepath.Join(baseDir, "app", "env.ini")
	testutil.WriteFile(t, legacyPath, legacyIni)

	var out bytes.Buffer
	err := execute([]string{"envmigrate", "migrate", "--base-dir", baseDir, "--dry-run"}, &out, &out)
	require.NoError(t, err)

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "Dry run: "+filepath.Join(baseDir, "env.ini")), got)
	assert.Contains(t, got, "+MYSQL_HOST=\"localhost\"")
	assert.Contains(t, got, "Would remove legacy file "+legacyPath)
	assert.Contains(t, got, "Applied changes:")
	assert.Contains(t, got, "renamed db_host to MYSQL_HOST")
	assert.NotContains(t, got, "Configuration successfully written.")

	assert.NoFileExists(t, filepath.Join(baseDir, "env.ini"))
	assert.FileExists(t, legacyPath)
}

func TestMigrateCmd_DryRunNoChanges(t *testing.T) {
	baseDir := t.TempDir()
	stubRoot(t, t.TempDir())

	var out bytes.Buffer
	require.NoError(t, execute([]string{"envmigrate", "migrate", "--base-dir", baseDir}, &out, &out))

	out.Reset()
	require.NoError(t, execute([]string{"envmigrate", "migrate", "--base-dir", baseDir, "--dry-run"}, &out, &out))
	assert.Contains(t, out.String(), "(no changes)")
	assert.NotContains(t, out.String(), "Would remove")
	assert.NotContains(t, out.String(), "Applied changes:")
}

func TestMigrateCmd_WriteFailure(t *testing.T) {
	stubRoot(t, t.TempDir())
	orig := newMigrateSystem
	t.Cleanup(func() { newMigrateSystem = orig })
	newMigrateSystem = func() migrate.System { return failingWriteSystem{} }

	var stdout, stderr bytes.Buffer
	code := 0
	runMain([]string{"envmigrate", "migrate", "--base-dir", t.TempDir()}, &stdout, &stderr, func(c int) { code = c })

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "disk full")
	assert.NotContains(t, stdout.String(), "Configuration successfully written.")
}

func TestMigrateCmd_BaseDirPrecedence(t *testing.T) {
	cwd := t.TempDir()
	envDir := t.TempDir()
	configDir := t.TempDir()
	stubRoot(t, cwd)

	testutil.WriteFile(t, filepath.Join(cwd, "envmigrate.toml"), "base_dir = \""+configDir+"\"\n")

	var out bytes.Buffer
	require.NoError(t, execute([]string{"envmigrate", "migrate"}, &out, &out))
	assert.FileExists(t, filepath.Join(configDir, "env.ini"))
	assert.NoFileExists(t, filepath.Join(cwd, "env.ini"))

	lookupEnv = func(key string) (string, bool) {
		if key == "AZURACAST_BASE_DIR" {
			return envDir, true
		}
		return "", false
	}
	require.NoError(t, execute([]string{"envmigrate", "migrate"}, &out, &out))
	assert.FileExists(t, filepath.Join(envDir, "env.ini"))
}

func TestMigrateCmd_DefaultsToWorkingDirectory(t *testing.T) {
	cwd := t.TempDir()
	stubRoot(t, cwd)

	var out bytes.Buffer
	require.NoError(t, execute([]string{"envmigrate", "migrate"}, &out, &out))
	assert.FileExists(t, filepath.Join(cwd, "env.ini"))
}

func TestMigrateCmd_EscapeQuotesFromConfig(t *testing.T) {
	cwd := t.TempDir()
	baseDir := t.TempDir()
	stubRoot(t, cwd)
	testutil.WriteFile(t, filepath.Join(cwd, "envmigrate.toml"), "[output]\nescape_quotes = true\n")
	testutil.WriteFile(t, filepath.Join(baseDir, "app", "env.ini"), "db_password = \"a\\\"b\"\n")

	var out bytes.Buffer
	require.NoError(t, execute([]string{"envmigrate", "migrate", "--base-dir", baseDir}, &out, &out))

	content := testutil.ReadFile(t, filepath.Join(baseDir, "env.ini"))
	assert.Contains(t, content, "MYSQL_PASSWORD=\"a\\\"b\"")
}

func TestMigrateCmd_InvalidConfig(t *testing.T) {
	cwd := t.TempDir()
	stubRoot(t, cwd)
	testutil.WriteFile(t, filepath.Join(cwd, "envmigrate.toml"), "unknown_key = true\n")

	var out bytes.Buffer
	err := execute([]string{"envmigrate", "migrate"}, &out, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.NoFileExists(t, filepath.Join(cwd, "env.ini"))
}

func TestMigrateCmd_ExplicitConfigMissing(t *testing.T) {
	stubRoot(t, t.TempDir())

	var out bytes.Buffer
	err := execute([]string{"envmigrate", "--config", filepath.Join(t.TempDir(), "nope.toml"), "migrate"}, &out, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing config file")
}

func TestMigrateCmd_RejectsArgs(t *testing.T) {
	stubRoot(t, t.TempDir())

	var out bytes.Buffer
	err := execute([]string{"envmigrate", "migrate", "extra"}, &out, &out)
	require.Error(t, err)
}

type fakePrompt struct {
	answer bool
	err    error
	title  string
}

func (f *fakePrompt) Confirm(title string, description string, value *bool) error {
	f.title = title
	*value = f.answer
	return f.err
}

func stubPrompt(t *testing.T, ui *fakePrompt) {
	t.Helper()
	orig := newPromptUI
	t.Cleanup(func() { newPromptUI = orig })
	newPromptUI = func() prompt.UI { return ui }
}

func TestMigrateCmd_InteractiveConfirmed(t *testing.T) {
	baseDir := t.TempDir()
	stubRoot(t, t.TempDir())
	ui := &fakePrompt{answer: true}
	stubPrompt(t, ui)
	testutil.WriteFile(t, filepath.Join(baseDir, "app", "env.ini"), legacyIni)

	var out bytes.Buffer
	require.NoError(t, execute([]string{"envmigrate", "migrate", "--base-dir", baseDir, "-i"}, &out, &out))

	assert.Equal(t, "Write "+filepath.Join(baseDir, "env.ini")+"?", ui.title)
	assert.Contains(t, out.String(), "Dry run: ")
	assert.True(t, strings.HasSuffix(out.String(), "Configuration successfully written.\n"))
	assert.FileExists(t, filepath.Join(baseDir, "env.ini"))
	assert.NoFileExists(t, filepath.Join(baseDir, "app", "env.ini"))
}

func TestMigrateCmd_InteractiveDeclined(t *testing.T) {
	tests := []struct {
		name string
		ui   *fakePrompt
	}{
		{name: "answered no", ui: &fakePrompt{answer: false}},
		{name: "aborted", ui: &fakePrompt{err: prompt.ErrCancelled}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseDir := t.TempDir()
			stubRoot(t, t.TempDir())
			stubPrompt(t, tt.ui)
			legacyPath := filepath.Join(baseDir, "app", "env.ini")
			testutil.WriteFile(t, legacyPath, legacyIni)

			var out bytes.Buffer
			require.NoError(t, execute([]string{"envmigrate", "migrate", "--base-dir", baseDir, "--interactive"}, &out, &out))

			assert.Contains(t, out.String(), "Migration cancelled.")
			assert.NoFileExists(t, filepath.Join(baseDir, "env.ini"))
			assert.FileExists(t, legacyPath)
		})
	}
}

func TestMigrateCmd_InteractiveWithoutTerminal(t *testing.T) {
	baseDir := t.TempDir()
	stubRoot(t, t.TempDir())
	stubPrompt(t, &fakePrompt{err: prompt.ErrNotInteractive})

	var out bytes.Buffer
	err := execute([]string{"envmigrate", "migrate", "--base-dir", baseDir, "-i"}, &out, &out)
	require.ErrorIs(t, err, prompt.ErrNotInteractive)
	assert.NoFileExists(t, filepath.Join(baseDir, "env.ini"))
}

func TestMigrateCmd_HoldsLockWhileWriting(t *testing.T) {
	baseDir := t.TempDir()
	stubRoot(t, t.TempDir())
	orig := withLock
	t.Cleanup(func() { withLock = orig })

	var lockedPath string
	withLock = func(path string, fn func() error) error {
		lockedPath = path
		assert.NoFileExists(t, filepath.Join(baseDir, "env.ini"), "nothing is written before the lock is held")
		return fn()
	}

	var out bytes.Buffer
	require.NoError(t, execute([]string{"envmigrate", "migrate", "--base-dir", baseDir}, &out, &out))
	assert.Equal(t, filelock.PathFor(baseDir), lockedPath)
	assert.FileExists(t, filepath.Join(baseDir, "env.ini"))

	lockedPath = ""
	require.NoError(t, execute([]string{"envmigrate", "migrate", "--base-dir", baseDir, "--dry-run"}, &out, &out))
	assert.Empty(t, lockedPath, "dry runs do not lock")
}

func TestMigrateCmd_LockError(t *testing.T) {
	baseDir := t.TempDir()
	stubRoot(t, t.TempDir())
	orig := withLock
	t.Cleanup(func() { withLock = orig })
	withLock = func(string, func() error) error { return errors.New("timed out waiting") }

	var out bytes.Buffer
	err := execute([]string{"envmigrate", "migrate", "--base-dir", baseDir}, &out, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out waiting")
	assert.NoFileExists(t, filepath.Join(baseDir, "env.ini"))
}

func TestMigrateCmd_UsesProcessWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	stubRoot(t, "")
	getwd = os.Getwd

	testutil.WithWorkingDir(t, dir, func() {
		var out bytes.Buffer
		require.NoError(t, execute([]string{"envmigrate", "migrate"}, &out, &out))
	})
	assert.FileExists(t, filepath.Join(dir, "env.ini"))
}
