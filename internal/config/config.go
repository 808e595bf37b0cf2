// Package config holds the run options for nmclean
package config

const (
	// ModuleDirName is the directory name the scanner collects
	ModuleDirName = "node_modules"
	// ConfirmPrompt is shown before anything is removed
	ConfirmPrompt = "Continue (yes/no)?"
	// ExpectedAnswer is the reply that lets the removal proceed
	ExpectedAnswer = "yes"
)

// Options is the configuration of a single invocation. It is built once from
// the command line and passed by value; nothing mutates it afterwards.
type Options struct {
	// Quiet suppresses informational output and the prompt text
	Quiet bool
	// Yes skips the confirmation prompt and always proceeds
	Yes bool
	// DryRun scans only; nothing is prompted for or removed
	DryRun bool
	// Debug writes diagnostic lines to stderr
	Debug bool
}

// SkipsPrompt reports whether a run with these options never reads stdin.
func (o Options) SkipsPrompt() bool {
	return o.Yes || o.DryRun
}
