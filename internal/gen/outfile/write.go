package outfile

import (
	"os"
	"path/filepath"
)

// Write writes a generated source file, creating parent directories and
// overwriting any previous version.
func Write(path string, src []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, src, 0o644)
}
