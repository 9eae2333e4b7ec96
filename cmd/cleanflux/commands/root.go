// Package commands implements the CLI commands for cleanflux.
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cleanflux/cleanflux-go/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cleanflux",
	Short: "Clean, normalize, and moderate text with the CleanFlux API",
	Long: `Cleanflux submits text to the CleanFlux text-cleaning and
content-moderation API and prints the result.

Input can come from a flag, a file, a URL (page text is extracted
locally before submission), or stdin.

Examples:
  # Clean text directly
  cleanflux clean -t "some <b>messy</b> text"

  # Normalize a file with server-side options
  cleanflux normalize -f draft.txt --opt trim=true --opt collapseWhitespace=true

  # Extract URLs from a web page's text
  cleanflux extract-urls -u "https://example.com/article"

  # Pipe text through profanity removal, YAML output
  cat comments.txt | cleanflux remove-profanity --format yaml

  # Verify connectivity without credentials
  cleanflux ping`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.cleanflux.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "CleanFlux API key (or use CLEANFLUX_API_KEY)")
	rootCmd.PersistentFlags().String("base-url", "", "custom API base URL")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "request timeout")
	rootCmd.PersistentFlags().String("format", "json", "output format: json, jsonl, yaml")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output file (default: stdout)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".cleanflux")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("CLEANFLUX")
	viper.AutomaticEnv()
	_ = viper.BindEnv("api_key", "CLEANFLUX_API_KEY")

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
