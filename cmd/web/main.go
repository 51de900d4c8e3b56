package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fintech-tools/receipt-relay/pkg/handlers/intake"
	"github.com/fintech-tools/receipt-relay/pkg/server"
	"github.com/fintech-tools/receipt-relay/pkg/services/config"
	"github.com/fintech-tools/receipt-relay/pkg/services/relay"
	"github.com/fintech-tools/receipt-relay/pkg/services/webhook"
	s3store "github.com/fintech-tools/receipt-relay/pkg/store/object/s3"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the receipt relay intake server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an optional settings file (environment variables apply either way)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	store, err := s3store.NewStore(ctx, s3store.Settings{
		Bucket: settings.Bucket,
		Region: settings.AWSRegion,
	})
	if err != nil {
		return fmt.Errorf("failed to create object store: %w", err)
	}

	sender := webhook.NewSender(webhook.Config{
		URL:     settings.WebhookURL,
		Headers: settings.WebhookHeaders,
		Timeout: settings.WebhookTimeout,
	})
	if sender.IsConfigured() {
		logger.Info().Msg("webhook sender configured")
	} else {
		logger.Warn().Msg("webhook url not set, receipts will not be forwarded")
	}

	processor := relay.NewProcessor(store, sender)
	handler := intake.NewHandler(store, processor, settings.IntakeToken)

	logger.Info().
		Str("bucket", settings.Bucket).
		Str("region", settings.AWSRegion).
		Msg("receipt relay starting")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(settings.ServerHost, settings.ServerPort),
		ShutdownTimeout: settings.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Intake: handler,
		},
	})

	return api.Start()
}
