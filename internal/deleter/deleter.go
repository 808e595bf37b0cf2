// Package deleter removes the directories found by the scanner
package deleter

import (
	"os"

	"nmclean/internal/console"
)

// Deleter removes paths one at a time, stopping at the first failure.
type Deleter struct {
	log *console.Logger
}

// New creates a new Deleter
func New(log *console.Logger) *Deleter {
	return &Deleter{log: log}
}

// Delete recursively removes every path in order. A path that no longer
// exists counts as a failure. The first error is returned unchanged and the
// remaining paths are left alone.
func (d *Deleter) Delete(paths []string) error {
	for _, path := range paths {
		d.log.Entry(console.ToneDanger, "Removing", path)
		if err := d.remove(path); err != nil {
			return err
		}
	}
	return nil
}

// remove deletes a single path and everything below it
func (d *Deleter) remove(path string) error {
	// RemoveAll succeeds on missing paths; check first so a vanished
	// directory is reported.
	if _, err := os.Lstat(path); err != nil {
		return err
	}
	if err := os.RemoveAll(path); err != nil {
		return err
	}
	d.log.Debugf("removed %s", path)
	return nil
}
