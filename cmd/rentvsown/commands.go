package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/rasmushaa/renting-vs-owning/internal/config"
	"github.com/rasmushaa/renting-vs-owning/internal/output"
	"github.com/rasmushaa/renting-vs-owning/internal/server"
	"github.com/rasmushaa/renting-vs-owning/pkg/logger"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example scenario configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_config.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", filename)
			return nil
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the report formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, name := range output.AvailableFormatterNames() {
				where := "file"
				if output.IsConsoleFormat(name) {
					where = "stdout"
				}
				fmt.Fprintf(out, "  %-14s %s\n", name, where)
			}
			fmt.Fprintf(out, "\nAliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculations over HTTP",
		Long: `Settings come from the environment (PORT, ENVIRONMENT, LOG_LEVEL,
METRICS_ENABLED, OTEL_ENDPOINT, SENTRY_DSN, SHUTDOWN_TIMEOUT_SECONDS,
MAX_SCENARIOS_PER_REQUEST), optionally loaded from an env file.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("env-file", ".env", "file with environment variables, ignored when missing")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.LoadServerConfig(envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Setup(cfg.Environment, cfg.LogLevel)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
			Release:          version,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := server.InitTracing(ctx, server.ServiceName, version, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		tctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(tctx); err != nil {
			logger.Error("Tracer shutdown failed", "error", err)
		}
	}()

	if err := server.New(cfg, nil, version).Run(ctx); err != nil {
		logger.Error("Server stopped", "error", err)
		return err
	}
	return nil
}
