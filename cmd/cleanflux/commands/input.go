package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleanflux/cleanflux-go/internal/fetch"
	"github.com/cleanflux/cleanflux-go/internal/logger"
)

// resolveInput picks the input source for a capability command: --text,
// --file, --url, or stdin. Exactly one source may be given; with none, stdin
// is read.
func resolveInput(ctx context.Context, cmd *cobra.Command, cfg Config) (string, error) {
	text, _ := cmd.Flags().GetString("text")
	file, _ := cmd.Flags().GetString("file")
	pageURL, _ := cmd.Flags().GetString("url")

	sources := 0
	for _, s := range []string{text, file, pageURL} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return "", fmt.Errorf("only one of --text, --file, or --url may be given")
	}

	switch {
	case text != "":
		return text, nil

	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil

	case pageURL != "":
		page, err := fetch.Text(ctx, pageURL, fetch.Config{Timeout: cfg.Timeout})
		if err != nil {
			return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
		}
		logger.Debug("fetched page for input", "url", pageURL, "title", page.Title, "text_size", len(page.Text))
		return page.Text, nil

	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		input := string(data)
		if strings.TrimSpace(input) == "" {
			return "", fmt.Errorf("no input: use --text, --file, --url, or pipe text on stdin")
		}
		return input, nil
	}
}
