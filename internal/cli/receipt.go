package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var receiptToken string

var receiptCmd = &cobra.Command{
	Use:     "receipt <receipt-id>",
	Short:   "Show the delivery state of an emergency message",
	GroupID: GroupMessages,
	Long: `Show the delivery state of an emergency message.

The receipt id is printed by 'send' when a message is sent with emergency
priority.`,
	Example: `  # Check whether the message was acknowledged
  pushover receipt rzr7k1mcrpf25av8vdfvprbqwgp1h7

  # Stop the retries early
  pushover receipt cancel rzr7k1mcrpf25av8vdfvprbqwgp1h7`,
	Args: cobra.ExactArgs(1),
	RunE: runReceipt,
}

var receiptCancelCmd = &cobra.Command{
	Use:   "cancel <receipt-id>",
	Short: "Cancel the retries for an emergency message",
	Args:  cobra.ExactArgs(1),
	RunE:  runReceiptCancel,
}

func init() {
	receiptCmd.PersistentFlags().StringVarP(&receiptToken, "token", "t", "", "The application API token")
	receiptCmd.AddCommand(receiptCancelCmd)
	rootCmd.AddCommand(receiptCmd)
}

func runReceipt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	token, err := resolveToken(receiptToken, cfg)
	if err != nil {
		return err
	}

	client := apiClient(cfg)
	stop := startSpinner("Fetching receipt")
	receipt, err := client.GetReceipt(cmd.Context(), token, args[0])
	stop()
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	if receipt.Acknowledged {
		fmt.Printf("Acknowledged: %s by %s", green("yes"), receipt.AcknowledgedBy)
		if receipt.AcknowledgedByDevice != "" {
			fmt.Printf(" (%s)", receipt.AcknowledgedByDevice)
		}
		fmt.Printf(" at %s\n", formatTime(receipt.AcknowledgedAt))
	} else {
		fmt.Printf("Acknowledged: %s\n", yellow("no"))
	}

	if receipt.Expired {
		fmt.Printf("Expired: %s\n", yellow("yes"))
	} else {
		fmt.Printf("Expires at: %s\n", formatTime(receipt.ExpiresAt))
	}

	if !receipt.LastDeliveredAt.IsZero() {
		fmt.Printf("Last delivered: %s\n", formatTime(receipt.LastDeliveredAt))
	}
	if receipt.CalledBack {
		fmt.Printf("Callback delivered at %s\n", formatTime(receipt.CalledBackAt))
	}
	return nil
}

func runReceiptCancel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	token, err := resolveToken(receiptToken, cfg)
	if err != nil {
		return err
	}

	client := apiClient(cfg)
	stop := startSpinner("Cancelling retries")
	err = client.CancelReceipt(cmd.Context(), token, args[0])
	stop()
	if err != nil {
		return err
	}

	printSuccess("Retries cancelled")
	return nil
}

// formatTime formats a timestamp for terminal output.
func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}
