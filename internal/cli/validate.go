package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateOpts struct {
	token  string
	user   string
	device string
}

var validateCmd = &cobra.Command{
	Use:     "validate",
	Short:   "Check that a user/group key is valid",
	GroupID: GroupAccount,
	Long: `Check a user or group key against the Pushover API.

With --device, additionally checks that the device is registered for the
user. The command exits non-zero when the key is invalid.`,
	Example: `  # Validate the configured user key
  pushover validate

  # Validate a specific user and device
  pushover validate --user user-key --device phone`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	flags := validateCmd.Flags()
	flags.StringVarP(&validateOpts.token, "token", "t", "", "The application API token")
	flags.StringVarP(&validateOpts.user, "user", "u", "", "The user/group key to validate")
	flags.StringVar(&validateOpts.device, "device", "", "A device name to validate")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	token, err := resolveToken(validateOpts.token, cfg)
	if err != nil {
		return err
	}
	user, err := resolveUser(validateOpts.user, cfg)
	if err != nil {
		return err
	}

	client := apiClient(cfg)
	stop := startSpinner("Validating user key")
	validation, err := client.ValidateUser(cmd.Context(), token, user, validateOpts.device)
	stop()
	if err != nil {
		return err
	}

	printSuccess("User key is valid")
	if len(validation.Devices) > 0 {
		fmt.Printf("Devices: %v\n", validation.Devices)
	}
	if verbose && len(validation.Licenses) > 0 {
		printDetail("licenses: %v", validation.Licenses)
	}
	return nil
}
