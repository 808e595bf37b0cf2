// Package workflow runs one nmclean invocation: validate the target, scan
// it, then either stop (nothing found, dry run, declined) or remove every
// node_modules directory that was found.
package workflow

import (
	"fmt"
	"io"
	"strconv"

	"nmclean/internal/config"
	"nmclean/internal/console"
	"nmclean/internal/deleter"
	"nmclean/internal/diskusage"
	"nmclean/internal/prompt"
	"nmclean/internal/scanner"
	"nmclean/internal/utils"
)

// Deps are the process resources a run talks to.
type Deps struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// DiskUsage is optional; without it no reclaimed space is reported.
	DiskUsage diskusage.ProbeFunc
}

// Run executes the scan-confirm-delete sequence for target.
//
// Declining the prompt, a dry run and an empty scan are all successful runs.
// Errors from validation, scanning or deletion are returned unchanged and end
// the run at that point.
func Run(target string, opts config.Options, deps Deps) error {
	log := console.New(deps.Stdout, deps.Stderr, opts)

	root, err := scanner.ValidateTarget(target)
	if err != nil {
		return err
	}

	dirs, err := scanner.Collect(root, log)
	if err != nil {
		return err
	}

	if len(dirs) == 0 {
		log.Infof("Found 0 %s. Exiting.", config.ModuleDirName)
		return nil
	}

	if opts.DryRun {
		log.Debugf("dry run, leaving %d directories in place", len(dirs))
		return nil
	}

	log.Infof("About to remove %s directories.", log.Paint(console.ToneAccent, strconv.Itoa(len(dirs))))

	if opts.SkipsPrompt() {
		log.Debugf("confirmation skipped")
	} else {
		proceed, err := prompt.New(deps.Stdin, deps.Stdout).Confirm(config.ConfirmPrompt, config.ExpectedAnswer, opts)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !proceed {
			log.Status(console.ToneWarn, "Aborted.")
			return nil
		}
	}

	before, probed := probe(deps.DiskUsage, root, log)

	if err := deleter.New(log).Delete(dirs); err != nil {
		return err
	}

	log.Status(console.ToneSuccess, fmt.Sprintf("Removed %d directories.", len(dirs)))

	if probed {
		if after, ok := probe(deps.DiskUsage, root, log); ok {
			log.Infof("Reclaimed %s on %s",
				log.Paint(console.ToneSuccess, utils.FormatSize(diskusage.Reclaimed(before, after))), root)
		}
	}

	return nil
}

// probe reads disk usage for path. Failures only show up as debug output.
func probe(fn diskusage.ProbeFunc, path string, log *console.Logger) (diskusage.Usage, bool) {
	if fn == nil {
		return diskusage.Usage{}, false
	}
	usage, err := fn(path)
	if err != nil {
		log.Debugf("%v", err)
		return diskusage.Usage{}, false
	}
	log.Debugf("%s free on %s (%s)", utils.FormatSize(usage.Free), usage.Path, usage.Fstype)
	return usage, true
}
