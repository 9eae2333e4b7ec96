package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/cleanflux/cleanflux-go/internal/logger"
	"github.com/cleanflux/cleanflux-go/internal/output"
	"github.com/cleanflux/cleanflux-go/pkg/cleanflux"
)

// Config is the resolved CLI configuration for commands that talk to the API.
type Config struct {
	APIKey  string `validate:"required"`
	BaseURL string `validate:"omitempty,url"`
	Timeout time.Duration
	Format  string `validate:"oneof=json jsonl yaml"`
	Output  string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// currentConfig snapshots flags, environment, and config file values.
func currentConfig() Config {
	return Config{
		APIKey:  viper.GetString("api_key"),
		BaseURL: viper.GetString("base_url"),
		Timeout: viper.GetDuration("timeout"),
		Format:  viper.GetString("format"),
		Output:  viper.GetString("output"),
	}
}

// loadConfig resolves and fully validates the configuration for
// authenticated commands.
func loadConfig() (Config, error) {
	cfg := currentConfig()
	if err := describeValidation(validate.Struct(cfg), cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadPingConfig validates everything except the API key; ping is
// unauthenticated.
func loadPingConfig() (Config, error) {
	cfg := currentConfig()
	if err := describeValidation(validate.StructPartial(cfg, "BaseURL", "Format"), cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// describeValidation maps validator failures to actionable messages.
func describeValidation(err error, cfg Config) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "APIKey":
			return fmt.Errorf("API key is required (use --api-key or CLEANFLUX_API_KEY)")
		case "BaseURL":
			return fmt.Errorf("invalid base URL: %q", cfg.BaseURL)
		case "Format":
			return fmt.Errorf("invalid output format %q (want json, jsonl, or yaml)", cfg.Format)
		}
	}
	return err
}

// newClient builds an API client from the resolved config.
func newClient(cfg Config) (*cleanflux.Client, error) {
	opts := []cleanflux.Option{
		cleanflux.WithLogger(logger.With("component", "client")),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, cleanflux.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, cleanflux.WithTimeout(cfg.Timeout))
	}
	return cleanflux.New(cfg.APIKey, opts...)
}

// newWriter opens the configured output destination. The returned cleanup
// closes the underlying file when one was opened.
func newWriter(cfg Config) (output.Writer, func(), error) {
	dest := os.Stdout
	cleanup := func() {}

	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create output file: %w", err)
		}
		dest = f
		cleanup = func() { _ = f.Close() }
	}

	w, err := output.NewWriter(dest, output.Format(cfg.Format))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return w, cleanup, nil
}
