package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fintech-tools/receipt-relay/pkg/adapters"
	"github.com/fintech-tools/receipt-relay/pkg/services/relay"
	"github.com/fintech-tools/receipt-relay/pkg/services/webhook"
	"github.com/fintech-tools/receipt-relay/pkg/store/object/memory"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	webhookURL string
	sourceURL  string
	messageID  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "relay",
		Short: "Process vendor invoice CSV files locally",
	}

	processCmd := &cobra.Command{
		Use:   "process <file.csv>",
		Short: "Run one CSV through the transformation engine and print the receipts",
		Args:  cobra.ExactArgs(1),
		RunE:  runProcess,
	}
	processCmd.Flags().StringVar(&webhookURL, "webhook-url", "", "Forward receipts to this webhook after processing")
	processCmd.Flags().StringVar(&sourceURL, "source-url", "", "Human-facing source URL recorded on each receipt")
	processCmd.Flags().StringVar(&messageID, "message-id", "", "Upstream message identifier folded into document ids")
	rootCmd.AddCommand(processCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runProcess(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	sender := webhook.NewSender(webhook.Config{URL: webhookURL})
	processor := relay.NewProcessor(memory.NewStore("local"), sender)

	receipts, err := processor.ProcessBytes(ctx, data, filepath.Base(path), sourceURL, messageID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	for _, receipt := range receipts {
		if err := encoder.Encode(adapters.MapReceiptDomainToApi(receipt)); err != nil {
			return fmt.Errorf("failed to encode receipt %s: %w", receipt.ReceiptID, err)
		}
	}

	logger.Info().Int("receipts", len(receipts)).Msg("done")
	return nil
}
