package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quill-dev/quill/internal/errors"
	"github.com/quill-dev/quill/pkg/dynamic"
)

func renderCmd() *cobra.Command {
	var (
		child      string
		templateID string
		data       string
		dataFile   string
		out        string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template through a child renderer",
		Long: `Render a template by spawning a renderer binary, shipping it the
template id and payload, and collecting the document it produces.

The renderer binary is any program that registers templates and calls
dynamic.Main when invoked as a child.

Examples:
  quill render --child ./bin/site --template home
  quill render --child ./bin/site --template article --data '{"slug":"intro"}'
  quill render --child ./bin/site --template home --out index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if templateID == "" {
				return errors.Newf(errors.CategoryCLI, "--template is required")
			}

			payload := []byte(data)
			if dataFile != "" {
				b, err := os.ReadFile(dataFile)
				if err != nil {
					return errors.Newf(errors.CategoryCLI, "reading --data-file: %v", err)
				}
				payload = b
			}

			client, err := dynamic.New(dynamic.Config{
				Mode:      dynamic.ModeSeparate,
				ChildPath: child,
				Timeout:   timeout,
			})
			if err != nil {
				return errors.New("Q002").Wrap(err)
			}

			body, err := client.Render(context.Background(), templateID, payload)
			if err != nil {
				return wrapRenderError(err)
			}

			if out == "" || out == "-" {
				_, err = os.Stdout.Write(body)
				return err
			}
			if err := os.WriteFile(out, body, 0644); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "wrote %d bytes to %s\n", len(body), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&child, "child", "", "Path to the renderer binary (required)")
	cmd.Flags().StringVarP(&templateID, "template", "t", "", "Template id to render (required)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "Payload passed to the template")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "Read the payload from a file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Render timeout")
	cmd.MarkFlagRequired("child")

	return cmd
}

// wrapRenderError maps dynamic failures onto coded CLI errors.
func wrapRenderError(err error) error {
	var exitErr *dynamic.ChildExitError
	var spawnErr *dynamic.SpawnError
	switch {
	case stderrors.Is(err, dynamic.ErrTimeout):
		return errors.New("Q003").Wrap(err)
	case stderrors.As(err, &exitErr):
		qerr := errors.New("Q001").Wrap(err)
		if exitErr.Stderr != "" {
			qerr = qerr.WithDetail(exitErr.Stderr)
		}
		return qerr
	case stderrors.As(err, &spawnErr):
		return errors.New("Q002").Wrap(err)
	default:
		return err
	}
}
