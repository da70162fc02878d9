package cli

import (
	"fmt"
	"os"

	"github.com/Bauke/pushover/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage the pushover configuration file",
	GroupID: GroupConfiguration,
	Long: `Manage the configuration file holding default token, user key, and
other send defaults. The global file lives at ~/.pushover/config.json;
--config points at an additional local file that overrides it.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			globalPath, err := config.GlobalPath()
			if err != nil {
				return err
			}
			path = globalPath
		}
		if err := config.Init(path); err != nil {
			return err
		}
		printSuccess("Created %s", path)
		fmt.Println("Fill in your application token and user key to get started.")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Printf("token:    %s\n", maskSecret(cfg.Token))
		fmt.Printf("user:     %s\n", maskSecret(cfg.User))
		fmt.Printf("device:   %s\n", cfg.Device)
		fmt.Printf("sound:    %s\n", cfg.Sound)
		fmt.Printf("priority: %s\n", cfg.Priority)
		fmt.Printf("timeout:  %d\n", cfg.Timeout)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the global config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		globalPath, err := config.GlobalPath()
		if err != nil {
			return err
		}
		fmt.Println(globalPath)
		if _, err := os.Stat(globalPath); os.IsNotExist(err) {
			printDetail("(does not exist yet, run 'pushover config init')")
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// maskSecret hides all but the last four characters of a credential.
func maskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
