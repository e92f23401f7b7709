package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quill-dev/quill/internal/config"
	"github.com/quill-dev/quill/internal/dev"
	"github.com/quill-dev/quill/internal/errors"
	"github.com/quill-dev/quill/pkg/cache"
	"github.com/quill-dev/quill/pkg/dynamic"
)

func previewCmd() *cobra.Command {
	var (
		child     string
		host      string
		port      int
		templates []string
		noWatch   bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve templates locally with live reload",
		Long: `Start a local preview server. Each request renders the template in
a fresh child process, so edits to the renderer binary take effect on
the next rebuild without restarting the server.

Connected browsers reload automatically when watched files change.

Examples:
  quill preview --child ./bin/site --templates home,article
  quill preview --child ./bin/site --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			if config.Exists(".") {
				loaded, err := config.Load(".")
				if err != nil {
					return err
				}
				cfg = loaded
			}

			if child == "" {
				child = cfg.Dynamic.Child
			}
			if child == "" {
				return errors.Newf(errors.CategoryCLI, "--child is required (or set dynamic.child in quill.json)")
			}
			if host != "" {
				cfg.Preview.Host = host
			}
			if port > 0 {
				cfg.Preview.Port = port
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			var store *cache.Store
			if cfg.Cache.Path != "" {
				s, err := cache.Open(cfg.Cache.Path)
				if err != nil {
					return err
				}
				defer s.Close()
				if n, err := s.Prune(cmd.Context(), cfg.CacheTTL()); err != nil {
					logger.Warn("cache prune failed", "error", err)
				} else if n > 0 {
					logger.Info("pruned stale cache entries", "count", n)
				}
				store = s
			}

			client, err := dynamic.New(dynamic.Config{
				Mode:        dynamic.ModeSeparate,
				ChildPath:   child,
				Timeout:     cfg.Timeout(),
				MaxInFlight: cfg.Dynamic.MaxInFlight,
				Cache:       store,
				Logger:      logger,
			})
			if err != nil {
				return errors.New("Q002").Wrap(err)
			}

			watch := cfg.Preview.Watch
			if noWatch {
				watch = nil
			}

			server := dev.NewServer(dev.ServerConfig{
				Addr:      cfg.PreviewAddress(),
				Renderer:  client,
				Templates: func() []string { return templates },
				Watch:     watch,
				Ignore:    cfg.Preview.Ignore,
				Logger:    logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Preview running at http://%s\n", cfg.PreviewAddress())
			err = server.Run(ctx)
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&child, "child", "", "Path to the renderer binary")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from quill.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from quill.json)")
	cmd.Flags().StringSliceVar(&templates, "templates", nil, "Template ids listed on the index page")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Disable file watching and live reload")

	return cmd
}
