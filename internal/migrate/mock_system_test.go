package migrate

import (
	"errors"
	"io/fs"
	"os"
)

// memSystem is an in-memory System with optional injected failures.
type memSystem struct {
	files     map[string]string
	writeErr  error
	removeErr error
	removed   []string
	writes    int
}

func newMemSystem(files map[string]string) *memSystem {
	if files == nil {
		files = map[string]string{}
	}
	return &memSystem{files: files}
}

func (m *memSystem) ReadFile(name string) ([]byte, error) {
	content, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}

func (m *memSystem) WriteFileAtomic(filename string, data []byte, _ os.FileMode) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.files[filename] = string(data)
	return nil
}

func (m *memSystem) Remove(name string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	if _, ok := m.files[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, name)
	m.removed = append(m.removed, name)
	return nil
}

var errDiskFull = errors.New("disk full")
