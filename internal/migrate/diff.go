package migrate

import (
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"
)

// Preview returns a unified diff from current to next for the file at path, or
// "" when they are identical.
func Preview(path string, current string, next string) string {
	if current == next {
		return ""
	}
	name := filepath.Base(path)
	return udiff.Unified(name+" (current)", name+" (migrated)", current, next)
}
