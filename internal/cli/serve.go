package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tate-it/energy-toolbox-sub003/internal/config"
	"github.com/tate-it/energy-toolbox-sub003/internal/httpapi"
)

// ServeCommand creates the serve command.
func ServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation API over HTTP",
		Long: `Start the HTTP API for wizard frontends.

Settings come from the optional YAML config file, overridden by the
OFFERS_* environment variables. A .env file in the working directory
is loaded first when present.

Examples:
  offers serve
  offers serve --config offers.yaml
  OFFERS_LISTEN_ADDR=:9090 offers serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the YAML config file")

	return cmd
}

func runServe(configPath string) error {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	e, err := newEngine()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting offers API", zap.String("addr", cfg.Server.ListenAddr))
	return httpapi.NewServer(cfg.Server, e, logger).Run(ctx)
}
