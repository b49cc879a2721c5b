// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-card-sync/internal/adapter"
	"github.com/MKhiriev/go-card-sync/internal/config"
	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/service"
	"github.com/MKhiriev/go-card-sync/internal/workers"
	"github.com/MKhiriev/go-card-sync/models"
	"github.com/spf13/cobra"
)

// clientApp is assembled once per invocation, after flags are parsed.
type clientApp struct {
	overrides config.StructuredConfig

	cfg      *config.ClientConfig
	log      *logger.Logger
	services *service.ClientServices
}

func (a *clientApp) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetClientConfig(&a.overrides)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	a.cfg = cfg
	a.log = logger.NewClientLogger("card-sync-client", cfg.LogFile)

	server, err := adapter.NewHTTPServerAdapter(cfg.Adapter, a.log)
	if err != nil {
		a.log.Err(err).Msg("create server adapter")
		return err
	}

	anki := adapter.NewAnkiConnect(cfg.Anki.URL, cfg.Adapter.RequestTimeout)
	importer := adapter.NewAnkiImporter(anki, a.log)

	a.services = service.NewClientServices(cfg.UserID, server, importer, a.log)
	a.log.Info().Str("user_id", cfg.UserID).Str("command", cmd.Name()).Msg("client initialized")
	return nil
}

func newRootCommand(build models.AppBuildInfo) *cobra.Command {
	app := &clientApp{}

	root := &cobra.Command{
		Use:   "card-sync-client",
		Short: "Pull pending flashcards from the sync server into Anki",
		Long: `card-sync-client imports flashcards queued on the sync server into the
local Anki collection through AnkiConnect and acknowledges the imported ones.

Settings are read from flags, then APP_*, ADAPTER_*, EXPORT_* and WORKERS_*
environment variables (a .env file is loaded first), then the JSON file given
with --config.`,
		Version:       build.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(build.String())

	flags := root.PersistentFlags()
	flags.StringVarP(&app.overrides.JSONFilePath, "config", "c", "", "path to a JSON config file")
	flags.StringVarP(&app.overrides.App.UserID, "user-id", "u", "", "user whose flashcards are pulled")
	flags.StringVarP(&app.overrides.Adapter.HTTPAddress, "server", "s", "", "sync server address")
	flags.StringVar(&app.overrides.Export.AnkiConnectURL, "anki-url", "", "AnkiConnect endpoint")
	flags.StringVar(&app.overrides.App.LogFile, "log-file", "", "rotated log file")

	root.AddCommand(
		newPullCommand(app),
		newWatchCommand(app),
		newStatusCommand(app),
	)

	return root
}

func newPullCommand(app *clientApp) *cobra.Command {
	return &cobra.Command{
		Use:     "pull",
		Short:   "Pull pending flashcards once",
		Args:    cobra.NoArgs,
		PreRunE: app.init,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := app.services.PullService.PullOnce(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "fetched %d, imported %d, synced %d, failed %d\n",
				report.Fetched, report.Imported, report.Synced, report.Failed)
			return nil
		},
	}
}

func newWatchCommand(app *clientApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "watch",
		Short:   "Pull periodically until interrupted",
		Args:    cobra.NoArgs,
		PreRunE: app.init,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			interval := app.cfg.Workers.SyncInterval
			fmt.Fprintf(cmd.OutOrStdout(), "pulling every %s, press Ctrl+C to stop\n", interval)

			workers.NewWorkers(
				workers.NewPullWorker(app.services.PullJob, interval, app.log),
			).Run(ctx)

			fmt.Fprintln(cmd.OutOrStdout(), "stopped")
			return nil
		},
	}

	cmd.Flags().DurationVarP(&app.overrides.Workers.SyncInterval, "interval", "i", 0,
		fmt.Sprintf("pull period (default %s)", 5*time.Minute))

	return cmd
}

func newStatusCommand(app *clientApp) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Show server health and flashcard counts",
		Args:    cobra.NoArgs,
		PreRunE: app.init,
		RunE: func(cmd *cobra.Command, _ []string) error {
			health, stats, err := app.services.PullService.Status(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "server:  %s (%s)\n", health.Status, health.Service)
			fmt.Fprintf(out, "user:    %s\n", app.cfg.UserID)
			fmt.Fprintf(out, "pending: %d\n", stats.Pending)
			fmt.Fprintf(out, "synced:  %d\n", stats.Synced)
			fmt.Fprintf(out, "failed:  %d\n", stats.Failed)
			fmt.Fprintf(out, "total:   %d\n", stats.Total)
			return nil
		},
	}
}
