package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var limitsToken string

var limitsCmd = &cobra.Command{
	Use:     "limits",
	Short:   "Show the application's monthly message allowance",
	GroupID: GroupAccount,
	Args:    cobra.NoArgs,
	RunE:    runLimits,
}

func init() {
	limitsCmd.Flags().StringVarP(&limitsToken, "token", "t", "", "The application API token")
	rootCmd.AddCommand(limitsCmd)
}

func runLimits(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	token, err := resolveToken(limitsToken, cfg)
	if err != nil {
		return err
	}

	client := apiClient(cfg)
	stop := startSpinner("Fetching limits")
	limits, err := client.AppLimits(cmd.Context(), token)
	stop()
	if err != nil {
		return err
	}

	fmt.Printf("Monthly limit:   %d\n", limits.Limit)
	fmt.Printf("Remaining:       %d\n", limits.Remaining)
	fmt.Printf("Counter resets:  %s\n", formatTime(limits.Reset))
	return nil
}
