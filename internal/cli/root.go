// Package cli provides the Cobra-based commands for the pushover CLI.
// It defines the message commands (send, glance, receipt) and the
// account/configuration commands (validate, sounds, limits, config, version).
package cli

import (
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output
const (
	GroupMessages      = "messages"
	GroupAccount       = "account"
	GroupConfiguration = "configuration"
)

var (
	// cfgFile is the optional local config file path (--config).
	cfgFile string

	// verbose enables extra output (--verbose).
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pushover",
	Short: "Send notifications through Pushover.net",
	Long: `pushover sends notifications through the Pushover.net API.

The application token and user key can be passed as flags, set in
~/.pushover/config.json, or supplied via PUSHOVER_TOKEN and PUSHOVER_USER
environment variables.`,
	Example: `  # Send a message
  pushover send "Backup finished" --token app-token --user user-key

  # With a title and high priority
  pushover send "Disk almost full" --title "Alert" --priority high

  # Emergency message, retried every 30s for an hour
  pushover send "Server down" --priority emergency --retry 30s --expire 1h

  # Check an emergency receipt
  pushover receipt rzr7k1mcrpf25av8vdfvprbqwgp1h7

  # List available notification sounds
  pushover sounds`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Define command groups in display order
	rootCmd.AddGroup(&cobra.Group{ID: GroupMessages, Title: "Messages:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupAccount, Title: "Account:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})

	// Assign built-in help and completion to configuration group
	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to a local config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Output extra information when running")
}
