package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cleanflux/cleanflux-go/pkg/cleanflux"
)

// capability describes one remote text-processing operation exposed as a
// subcommand. All five share flags, input handling, and output handling;
// only the client method differs.
type capability struct {
	use   string
	short string
	call  func(*cleanflux.Client, context.Context, cleanflux.Payload) (cleanflux.Result, error)
}

var capabilities = []capability{
	{"clean", "Strip markup and junk from text", (*cleanflux.Client).Clean},
	{"normalize", "Normalize whitespace, casing, and encoding", (*cleanflux.Client).Normalize},
	{"extract-urls", "Extract URLs found in text", (*cleanflux.Client).ExtractURLs},
	{"remove-profanity", "Censor profanity in text", (*cleanflux.Client).RemoveProfanity},
	{"metadata", "Report metadata about text", (*cleanflux.Client).Metadata},
}

func init() {
	for _, op := range capabilities {
		rootCmd.AddCommand(newCapabilityCommand(op))
	}
}

func newCapabilityCommand(op capability) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op.use,
		Short: op.short,
		Long: fmt.Sprintf(`%s via the CleanFlux %s endpoint.

Provide input with --text, --file, or --url, or pipe it on stdin.
Server-side options are passed through untouched with repeated --opt
key=value flags.`, op.short, op.use),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapability(cmd, op)
		},
	}

	flags := cmd.Flags()
	flags.StringP("text", "t", "", "text to submit")
	flags.StringP("file", "f", "", "read text from file")
	flags.StringP("url", "u", "", "fetch a page and submit its extracted text")
	flags.StringArray("opt", nil, "server-side option as key=value (repeatable)")

	return cmd
}

func runCapability(cmd *cobra.Command, op capability) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		logError("%v", err)
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		logError("%v", err)
		return err
	}

	text, err := resolveInput(ctx, cmd, cfg)
	if err != nil {
		logError("%v", err)
		return err
	}

	optFlags, _ := cmd.Flags().GetStringArray("opt")
	options, err := parseOptions(optFlags)
	if err != nil {
		logError("%v", err)
		return err
	}

	payload := cleanflux.Payload{"text": text}
	if len(options) > 0 {
		payload["options"] = options
	}

	result, err := op.call(client, ctx, payload)
	if err != nil {
		logError("%v", err)
		return err
	}

	return writeResult(cfg, result)
}

func writeResult(cfg Config, result cleanflux.Result) error {
	w, cleanup, err := newWriter(cfg)
	if err != nil {
		logError("%v", err)
		return err
	}
	defer cleanup()

	if err := w.Write(result); err != nil {
		logError("failed to write result: %v", err)
		return err
	}
	if err := w.Close(); err != nil {
		logError("failed to flush output: %v", err)
		return err
	}
	return nil
}

// parseOptions turns repeated key=value flags into a payload options map.
// Values that look like booleans or numbers are sent as such so the server
// sees real JSON types; everything else stays a string.
func parseOptions(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	options := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid option %q (want key=value)", pair)
		}
		options[key] = coerceValue(value)
	}
	return options, nil
}

func coerceValue(s string) any {
	// Numbers before booleans: ParseBool would eat "0" and "1".
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
