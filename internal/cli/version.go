package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	GroupID: GroupConfiguration,
	Example: `  # Show version info
  pushover version

  # Plain output (for scripts)
  pushover version --plain`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionPlain {
			cmd.Printf("%s\n", Version)
			return
		}
		cmd.Printf("pushover %s\n", Version)
		cmd.Printf("commit: %s\n", Commit)
		cmd.Printf("built: %s\n", BuildDate)
		cmd.Printf("go: %s\n", runtime.Version())
		cmd.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Plain output without formatting")
	rootCmd.AddCommand(versionCmd)
}
