package main

import (
	"fmt"
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-circulation/circulation/app"
	"github.com/Astemirdum/library-circulation/circulation/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env ", zap.Error(err))
	}

	root := &cobra.Command{
		Use:           "circulation",
		Short:         "Library circulation and reservation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), migrateCmd(), expireCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var storage string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the expiry trigger consumer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []config.Option{
				config.WithLogLevel(zapcore.DebugLevel),
				config.WithWriteTimeout(time.Minute),
			}
			if storage != "" {
				opts = append(opts, config.WithStorageDriver(config.StorageDriver(storage)))
			}
			return app.Run(config.NewConfig(opts...))
		},
	}
	cmd.Flags().StringVar(&storage, "storage", "", "storage driver: postgres or memory (default from STORAGE_DRIVER)")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Migrate(cmd.Context(), config.NewConfig())
		},
	}
}

func expireCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "expire",
		Short: "Expire stale reservations once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now().UTC()
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return errors.Wrap(err, "--now")
				}
				now = t
			}
			n, err := app.Expire(cmd.Context(), config.NewConfig(), now)
			if err != nil {
				return err
			}
			cmd.Printf("expired %d reservations\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "now", "", "reference time in RFC 3339 (default: current time)")
	return cmd
}
