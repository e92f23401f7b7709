package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quill-dev/quill/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quill",
		Short: "Composable document rendering for Go",
		Long: `Quill renders HTML documents from trees composed in Go code.

Templates are plain Go values registered under stable ids. They render
in-process for static output, or in an isolated child process when the
data arrives at request time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		previewCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var qerr *errors.QuillError
		if stderrors.As(err, &qerr) {
			fmt.Fprint(os.Stderr, qerr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}
