package generator

import (
	"bytes"
	"os"
	"path/filepath"
)

type fileWriter interface {
	Write(path string, content []byte) (bool, error)
}

// diskWriter leaves byte-identical files untouched unless force is set.
type diskWriter struct {
	force bool
}

func (w diskWriter) Write(path string, content []byte) (bool, error) {
	if !w.force && sameContent(path, content) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// planWriter reports what diskWriter would do without touching the disk.
type planWriter struct {
	force bool
}

func (w planWriter) Write(path string, content []byte) (bool, error) {
	return w.force || !sameContent(path, content), nil
}

func sameContent(path string, content []byte) bool {
	existing, err := os.ReadFile(path)
	return err == nil && bytes.Equal(existing, content)
}
