// Package cli implements the driftlens command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"driftlens/client"
	"driftlens/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// rootFlags holds the resolved persistent flag values for one execution.
type rootFlags struct {
	host    string
	apiKey  string
	output  string
	profile string
	debug   bool
}

// Execute runs the CLI.
func Execute() int {
	flags := &rootFlags{}
	rootCmd := newRootCmd(flags)
	if err := rootCmd.Execute(); err != nil {
		if flags.output == "json" {
			errObj := map[string]interface{}{"error": err.Error()}
			var transportErr *domain.TransportError
			if errors.As(err, &transportErr) {
				errObj["http_status"] = transportErr.StatusCode
			}
			_ = PrintJSON(os.Stdout, errObj)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(flags *rootFlags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "driftlens",
		Short:         "driftlens ML observability CLI",
		Long:          "Command-line interface for the driftlens ML observability platform.",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Load config from profile if flags/env not set
			cfg, err := LoadUserConfig()
			if err != nil {
				// Config file is optional
				cfg = &UserConfig{CurrentProfile: "default", Profiles: map[string]Profile{}}
			}
			p := cfg.ActiveProfile(flags.profile)

			// Apply precedence: flag > env > profile > default
			if !cmd.Flags().Changed("host") {
				if v := os.Getenv("DRIFTLENS_HOST"); v != "" {
					flags.host = v
				} else if p.Host != "" {
					flags.host = p.Host
				}
			}
			if !cmd.Flags().Changed("api-key") {
				if v := os.Getenv("DRIFTLENS_API_KEY"); v != "" {
					flags.apiKey = v
				} else if p.APIKey != "" {
					flags.apiKey = p.APIKey
				}
			}
			if !cmd.Flags().Changed("output") {
				if v := os.Getenv("DRIFTLENS_OUTPUT"); v != "" {
					flags.output = v
				} else if p.Output != "" {
					flags.output = p.Output
				}
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.host, "host", "http://localhost:9000", "platform base URL")
	pf.StringVar(&flags.apiKey, "api-key", "", "API key for authentication")
	pf.StringVarP(&flags.output, "output", "o", "table", "output format: table or json")
	pf.StringVar(&flags.profile, "profile", "", "configuration profile to use")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newConfigCmd(flags),
		newModelCmd(flags),
		newDatasetCmd(flags),
		newMetricsCmd(flags),
	)
	return rootCmd
}

// newPlatformClient builds the SDK client from the resolved flags.
func newPlatformClient(flags *rootFlags) *client.Client {
	opts := []client.Option{}
	if flags.apiKey != "" {
		opts = append(opts, client.WithAPIKey(flags.apiKey))
	}
	if flags.debug {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, client.WithLogger(logger))
	}
	return client.New(flags.host, opts...)
}
