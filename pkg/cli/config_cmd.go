package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration profiles",
	}
	cmd.AddCommand(newConfigSetCmd(flags), newConfigGetCmd(flags), newConfigUseProfileCmd())
	return cmd
}

func newConfigSetCmd(flags *rootFlags) *cobra.Command {
	var (
		host      string
		apiKey    string
		promptKey bool
		output    string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set values on the active profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = &UserConfig{CurrentProfile: "default", Profiles: map[string]Profile{}}
			}
			name := cfg.CurrentProfile
			if flags.profile != "" {
				name = flags.profile
			}
			if name == "" {
				name = "default"
				cfg.CurrentProfile = name
			}
			p := cfg.Profiles[name]

			if promptKey {
				fmt.Fprint(os.Stderr, "API key: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stderr)
				if err != nil {
					return fmt.Errorf("read api key: %w", err)
				}
				apiKey = string(raw)
			}

			if cmd.Flags().Changed("host") {
				p.Host = host
			}
			if apiKey != "" {
				p.APIKey = apiKey
			}
			if cmd.Flags().Changed("set-output") {
				p.Output = output
			}
			cfg.Profiles[name] = p
			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %q updated\n", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "platform base URL")
	cmd.Flags().StringVar(&apiKey, "key", "", "API key")
	cmd.Flags().BoolVar(&promptKey, "prompt-key", false, "prompt for the API key without echo")
	cmd.Flags().StringVar(&output, "set-output", "", "default output format")
	return cmd
}

func newConfigGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the active profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				return err
			}
			name := cfg.CurrentProfile
			if flags.profile != "" {
				name = flags.profile
			}
			p := cfg.ActiveProfile(flags.profile)
			shown := map[string]string{
				"profile": name,
				"host":    p.Host,
				"output":  p.Output,
			}
			if p.APIKey != "" {
				shown["api-key"] = "(set)"
			}
			return PrintJSON(cmd.OutOrStdout(), shown)
		},
	}
}

func newConfigUseProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use-profile NAME",
		Short: "Switch the current profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = &UserConfig{Profiles: map[string]Profile{}}
			}
			cfg.CurrentProfile = args[0]
			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current profile: %s\n", args[0])
			return nil
		},
	}
}
