package ignore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileName is the per-directory rule file.
const FileName = ".gitignore"

// LoadRoot builds the matcher for the listing root from the repository's
// info/exclude file and the root's own .gitignore.
func LoadRoot(dir string) (*Matcher, error) {
	m := New()
	if err := addFile(m, filepath.Join(dir, ".git", "info", "exclude"), ""); err != nil {
		return m, err
	}
	if err := addFile(m, filepath.Join(dir, FileName), ""); err != nil {
		return m, err
	}
	return m, nil
}

// LoadDir extends parent with the .gitignore found in dir, whose path
// relative to the listing root is base. parent is returned unchanged when
// dir has no rule file.
func LoadDir(parent *Matcher, dir, base string) (*Matcher, error) {
	data, err := readRules(filepath.Join(dir, FileName))
	if err != nil || data == "" {
		return parent, err
	}
	m := parent.Clone()
	m.AddPatterns(data, base)
	return m, nil
}

func addFile(m *Matcher, file, base string) error {
	data, err := readRules(file)
	if err != nil {
		return err
	}
	m.AddPatterns(data, base)
	return nil
}

func readRules(file string) (string, error) {
	data, err := os.ReadFile(file)
	switch {
	case errors.Is(err, os.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("read ignore rules %s: %w", file, err)
	}
	return string(data), nil
}
