package batchpipe

import "os"

// FileSystem is the byte level storage a pipeline reads from and writes to.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	// WriteFile creates or truncates name.
	WriteFile(name string, data []byte) error
	// MkdirAll creates path and its parents, succeeding if it already exists.
	MkdirAll(path string) error
}

type OSFileSystem struct{}

func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (OSFileSystem) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0o644)
}

func (OSFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, os.ModePerm)
}
