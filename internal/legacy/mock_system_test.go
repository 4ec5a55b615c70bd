package legacy

import (
	"io/fs"
)

// fakeSystem serves file contents from memory.
type fakeSystem struct {
	files map[string]string
	errs  map[string]error
}

func (f fakeSystem) ReadFile(name string) ([]byte, error) {
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	if content, ok := f.files[name]; ok {
		return []byte(content), nil
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
