package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cleanflux/cleanflux-go/pkg/cleanflux"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connectivity to the CleanFlux API",
	Long: `Ping the CleanFlux API without credentials.

The ping endpoint is reachable without an API key, so this verifies
DNS, TLS, and basic availability before you present credentials.`,
	RunE: runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadPingConfig()
	if err != nil {
		logError("%v", err)
		return err
	}

	// Ping never sends the key, so a placeholder satisfies construction
	// when none is configured.
	if cfg.APIKey == "" {
		cfg.APIKey = "anonymous"
	}

	client, err := newClient(cfg)
	if err != nil {
		logError("%v", err)
		return err
	}

	result, err := client.Ping(ctx)
	if err != nil {
		logError("%v", err)
		return err
	}

	if result == nil {
		result = cleanflux.Result{"status": "ok"}
	}
	if !viper.GetBool("quiet") {
		return writeResult(cfg, result)
	}
	return nil
}
