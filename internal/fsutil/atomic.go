// Package fsutil holds small filesystem helpers shared across packages.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/azuracast/envmigrate/internal/messages"
)

// WriteFileAtomic writes data to filename by writing a sibling temp file and
// renaming it into place, so readers never observe a partially written file.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFmt, filename, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf(messages.FsutilWriteTempFmt, filename, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf(messages.FsutilSyncTempFmt, filename, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf(messages.FsutilCloseTempFmt, filename, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf(messages.FsutilChmodTempFmt, filename, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		cleanup()
		return fmt.Errorf(messages.FsutilRenameTempFmt, filename, err)
	}
	return nil
}
