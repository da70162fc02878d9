package cli

import (
	"github.com/Bauke/pushover"
	"github.com/spf13/cobra"
)

var glanceOpts struct {
	token   string
	user    string
	device  string
	title   string
	text    string
	subtext string
	count   int
	percent int
}

var glanceCmd = &cobra.Command{
	Use:     "glance",
	Short:   "Update glance data on watch faces and widgets",
	GroupID: GroupMessages,
	Long: `Push data to the glances API, which feeds small displays such as
watch faces and lock screen widgets. At least one of --title, --text,
--subtext, --count, or --percent is required.`,
	Example: `  # Show a counter on a watch complication
  pushover glance --count 12 --text "12 builds green"

  # Progress-style display
  pushover glance --percent 80 --title Battery`,
	Args: cobra.NoArgs,
	RunE: runGlance,
}

func init() {
	flags := glanceCmd.Flags()
	flags.StringVarP(&glanceOpts.token, "token", "t", "", "The application API token")
	flags.StringVarP(&glanceOpts.user, "user", "u", "", "The user/group key to push the glance to")
	flags.StringVar(&glanceOpts.device, "device", "", "Limit the glance to a single device")
	flags.StringVar(&glanceOpts.title, "title", "", "A description of the data, shown on larger screens")
	flags.StringVar(&glanceOpts.text, "text", "", "The main line of data")
	flags.StringVar(&glanceOpts.subtext, "subtext", "", "A second line of data")
	flags.IntVar(&glanceOpts.count, "count", 0, "A number shown on small screens")
	flags.IntVar(&glanceOpts.percent, "percent", 0, "A 0-100 value shown as a progress indicator")

	rootCmd.AddCommand(glanceCmd)
}

func runGlance(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	token, err := resolveToken(glanceOpts.token, cfg)
	if err != nil {
		return err
	}
	user, err := resolveUser(glanceOpts.user, cfg)
	if err != nil {
		return err
	}

	glance := &pushover.Glance{
		Token:   token,
		User:    user,
		Device:  glanceOpts.device,
		Title:   glanceOpts.title,
		Text:    glanceOpts.text,
		Subtext: glanceOpts.subtext,
	}
	// A glance count or percent of 0 is meaningful, so only send the fields
	// whose flags were actually set.
	if cmd.Flags().Changed("count") {
		glance.Count = &glanceOpts.count
	}
	if cmd.Flags().Changed("percent") {
		glance.Percent = &glanceOpts.percent
	}

	if err := glance.Validate(); err != nil {
		return withExitCode(ExitInvalidArguments, err)
	}

	client := apiClient(cfg)
	stop := startSpinner("Updating glance")
	response, err := client.PushGlance(cmd.Context(), glance)
	stop()
	if err != nil {
		return err
	}

	printSuccess("Glance updated")
	if verbose {
		printDetail("request: %s", response.Request)
	}
	return nil
}
