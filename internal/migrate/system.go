package migrate

import (
	"os"

	"github.com/azuracast/envmigrate/internal/fsutil"
)

// System abstracts the filesystem operations needed by the migration.
type System interface {
	ReadFile(name string) ([]byte, error)
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Remove(name string) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFileAtomic writes data to a file atomically by writing to a temp file and renaming.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// Remove removes the named file.
func (RealSystem) Remove(name string) error {
	return os.Remove(name)
}
