// Package cmd provides the command-line interface for nmclean
package cmd

import (
	"github.com/spf13/cobra"

	"nmclean/internal/config"
	"nmclean/internal/diskusage"
	"nmclean/internal/workflow"
)

// version can be overridden at build time:
// go build -ldflags="-X nmclean/cmd.version=1.0.0"
var version = "0.0.1"

// NewRootCommand builds the nmclean command. Each call binds a fresh set of
// options, so tests can build and run it repeatedly.
func NewRootCommand() *cobra.Command {
	var opts config.Options

	cmd := &cobra.Command{
		Use:   "nmclean <target>",
		Short: "Find and remove node_modules directories",
		Long: `nmclean - reclaim disk space from JavaScript project trees.

Scans <target> recursively for directories named node_modules, lists them,
and removes them after you answer "yes" to the confirmation prompt.
Matched directories are never descended into.`,
		Example: `  nmclean ~/projects            Scan and remove after confirmation
  nmclean --dry-run ~/projects  Only list what would be removed
  nmclean -q -y ~/projects      Remove without prompting or output`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(args[0], opts, workflow.Deps{
				Stdin:     cmd.InOrStdin(),
				Stdout:    cmd.OutOrStdout(),
				Stderr:    cmd.ErrOrStderr(),
				DiskUsage: diskusage.Probe,
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Skip log messages")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Skip confirmation prompts")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "D", false, "Don't delete, just find directories")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Show detailed operation logs on stderr")

	return cmd
}

// Execute runs the main CLI logic
func Execute() error {
	return NewRootCommand().Execute()
}
