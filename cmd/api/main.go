package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"example.com/excuse/internal/api"
	"example.com/excuse/internal/config"
	"example.com/excuse/internal/domain"
	"example.com/excuse/internal/logging"
	httptransport "example.com/excuse/internal/transport/http"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:           "excuse-api [port]",
		Short:         "Serve workout excuses over HTTP",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			cfg, err := resolveConfig(config.Load(), port, args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT)")
	return cmd
}

// resolveConfig applies the CLI port: a positional argument wins over --port,
// which wins over the environment.
func resolveConfig(cfg config.Config, flagPort string, args []string) (config.Config, error) {
	port := flagPort
	if len(args) == 1 {
		port = args[0]
	}
	if port == "" {
		return cfg, config.ValidatePort(cfg.Port)
	}
	return cfg.WithPort(port)
}

func run(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	service := domain.NewService(domain.DefaultCatalog(), domain.RandomPicker())
	handler := api.NewHandler(service, logger, cfg.MaxBodyBytes)

	router := api.NewRouter(handler,
		httptransport.RequestID,
		httptransport.RequestLogger(logger),
		httptransport.CORS,
		httptransport.Recoverer(logger),
	)

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.Address(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, router)

	logger.Info("excuse-service listening", zap.String("address", cfg.Address()))
	if err := httptransport.Serve(ctx, server, cfg.ShutdownTimeout); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("excuse-service stopped")
	return nil
}
