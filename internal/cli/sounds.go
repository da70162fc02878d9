package cli

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var soundsToken string

var soundsCmd = &cobra.Command{
	Use:     "sounds",
	Short:   "List the available notification sounds",
	GroupID: GroupAccount,
	Long:    "List the notification sounds the API currently offers. The sound name on the left is what 'send --sound' expects.",
	Args:    cobra.NoArgs,
	RunE:    runSounds,
}

func init() {
	soundsCmd.Flags().StringVarP(&soundsToken, "token", "t", "", "The application API token")
	rootCmd.AddCommand(soundsCmd)
}

func runSounds(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	token, err := resolveToken(soundsToken, cfg)
	if err != nil {
		return err
	}

	client := apiClient(cfg)
	stop := startSpinner("Fetching sounds")
	sounds, err := client.Sounds(cmd.Context(), token)
	stop()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(sounds))
	for name := range sounds {
		names = append(names, name)
	}
	sort.Strings(names)

	cyan := color.New(color.FgCyan).SprintFunc()
	for _, name := range names {
		fmt.Printf("%-16s %s\n", cyan(name), sounds[name])
	}
	return nil
}
