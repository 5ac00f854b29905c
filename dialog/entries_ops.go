package dialog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var errPseudoDirectory = errors.New("entries can't be created here")

// CreateFile creates an empty file in the current directory.
func (d *Dialog) CreateFile(name string) error {
	p, err := d.newEntryPath(name)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	d.Refresh()
	return nil
}

// CreateDirectory creates a directory in the current directory.
func (d *Dialog) CreateDirectory(name string) error {
	p, err := d.newEntryPath(name)
	if err != nil {
		return err
	}

	if err := os.Mkdir(p, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	d.Refresh()
	return nil
}

// Delete removes path and everything below it.
func (d *Dialog) Delete(path string) error {
	if path == "" || d.root(path) != nil {
		return errPseudoDirectory
	}
	if err := os.RemoveAll(d.resolve(path)); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	d.Refresh()
	return nil
}

func (d *Dialog) newEntryPath(name string) (string, error) {
	if d.root(d.dir) != nil {
		return "", errPseudoDirectory
	}
	if name == "" {
		return "", errors.New("name cannot be empty")
	}
	return filepath.Join(d.dir, name), nil
}
