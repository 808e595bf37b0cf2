// Package scanner finds node_modules directories for nmclean
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"nmclean/internal/config"
	"nmclean/internal/console"
)

var (
	// ErrTargetNotExist is returned when the scan target is missing
	ErrTargetNotExist = errors.New("does not exist")
	// ErrTargetNotDir is returned when the scan target is not a directory
	ErrTargetNotDir = errors.New("is not a directory")
)

// ValidateTarget checks that target exists and is a directory, and returns
// its absolute, cleaned form.
func ValidateTarget(target string) (string, error) {
	info, err := os.Stat(target)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s %w", target, ErrTargetNotExist)
	}
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s %w", target, ErrTargetNotDir)
	}

	absPath, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", target, err)
	}
	return absPath, nil
}

// Collect walks root depth-first and returns the path of every entry named
// node_modules. Matched entries are never descended into.
//
// Directories are visited from an explicit stack and entries are read in
// name order, so a given tree always yields the same result order. Any read
// or stat error aborts the scan and is returned as is.
func Collect(root string, log *console.Logger) ([]string, error) {
	log.Infof("Collecting %s paths under %s...", config.ModuleDirName, root)

	var found []string
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		log.Debugf("reading %s", dir)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			childPath := filepath.Join(dir, entry.Name())

			if entry.Name() == config.ModuleDirName {
				log.Entry(console.ToneAccent, "Discovered:", childPath)
				found = append(found, childPath)
				continue
			}

			// Stat rather than the dirent type so symlinked directories are followed
			info, err := os.Stat(childPath)
			if err != nil {
				return nil, err
			}
			if info.IsDir() {
				stack = append(stack, childPath)
			}
		}
	}

	return found, nil
}
