// nmclean - find node_modules directories under a tree and remove them
// Main entry point for the CLI application
package main

import (
	"fmt"
	"os"

	"nmclean/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
