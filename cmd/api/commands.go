package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	appServices "github.com/yigit/mentorhub/internal/app/services"
	"github.com/yigit/mentorhub/internal/bootstrap"
	"github.com/yigit/mentorhub/internal/pkg/logger"
	"github.com/yigit/mentorhub/internal/seed"
	"github.com/yigit/mentorhub/internal/server"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:           "mentorhub",
		Short:         "Mentor/student relationship registry API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default command)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Insert demo mentors and students into the configured store",
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply SQL migrations (postgres) or ensure indexes (mongo), then exit",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c",
		filepath.Join("configs", "config.yaml"), "path to the YAML config file")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.NewServer(cmd.Context(), configPath)
	if err != nil {
		return err
	}

	// blocks until shutdown signal
	if err := srv.Run(); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	store, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	lgr.Info().Str("driver", store.Driver).Msg("Schema is up to date")
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	store, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	data, err := seed.CreateDemoData(ctx, appServices.NewRelationshipService(store.Repos), lgr)
	if err != nil {
		return err
	}

	lgr.Info().Strs("mentorIDs", data.MentorIDs).Strs("studentIDs", data.StudentIDs).Msg("Seed complete")
	return nil
}
