package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/cli/config"
	httpctrl "github.com/IceeCodee/TRAP-word-cloud/pkg/controller/http"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/usecase"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/utils/logging"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var catalogCfg config.Catalog
	var styleCfg config.Style
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("TRAPCLOUD_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, styleCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the dashboard HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			closeSentry, err := sentryCfg.Configure(version)
			if err != nil {
				return goerr.Wrap(err, "failed to configure error reporting")
			}
			defer closeSentry()

			palette, err := styleCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure style palette")
			}

			// Load the catalog once; it is read-only afterwards
			repo, err := catalogCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize catalog")
			}

			uc := usecase.New(repo, usecase.WithPalette(palette))

			httpHandler, err := httpctrl.New(uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Serve until a shutdown signal arrives, then drain gracefully
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			var eg errgroup.Group
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server", "addr", addr, "rows", repo.Len())
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			})

			return eg.Wait()
		},
	}
}
