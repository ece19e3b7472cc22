package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	ErrFileNotFound      = errors.New("filesystem: file not found")
	ErrDirectoryNotFound = errors.New("filesystem: directory not found")
	ErrInvalidPath       = errors.New("filesystem: invalid path")
)

// Filesystem is the file access the /files/ routes need. Implementations do
// not serialise concurrent access to the same path.
type Filesystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte) error

	FileExists(path string) (bool, error)
	DirectoryExists(path string) (bool, error)
	CreateDirectory(path string) error
}

type localFileSystem struct {
}

func NewLocalFileSystem() Filesystem {
	return &localFileSystem{}
}

// ReadFile returns the whole file. A missing file wraps ErrFileNotFound;
// every other failure is returned as is.
func (filesystem *localFileSystem) ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	return content, nil
}

// WriteFile creates or truncates path, creating missing parent directories.
func (filesystem *localFileSystem) WriteFile(path string, content []byte) error {
	if path == "" {
		return ErrInvalidPath
	}

	dir := filepath.Dir(path)
	if err := filesystem.CreateDirectory(dir); err != nil {
		return err
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return err
	}

	return nil
}

func (filesystem *localFileSystem) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return !info.IsDir(), nil
}

func (filesystem *localFileSystem) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return info.IsDir(), nil
}

func (filesystem *localFileSystem) CreateDirectory(path string) error {
	exists, err := filesystem.DirectoryExists(path)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := os.MkdirAll(path, 0770); err != nil {
		return err
	}

	return nil
}

// RequireDirectory fails with ErrDirectoryNotFound unless path is an
// existing directory.
func RequireDirectory(filesystem Filesystem, path string) error {
	exists, err := filesystem.DirectoryExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrDirectoryNotFound, path)
	}

	return nil
}
