package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	detailColor  = color.New(color.Faint)
)

// isInteractive checks if the session is interactive (has TTY). Checks
// stdout rather than stdin because stdin is often piped while stdout remains
// connected to the terminal.
func isInteractive() bool {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return true
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// isCI checks for common CI environment variables.
func isCI() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"JENKINS_URL",
		"BUILDKITE",
		"DRONE",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// startSpinner starts a progress spinner on stderr and returns its stop
// function. In non-interactive sessions and CI it does nothing.
func startSpinner(message string) func() {
	if !isInteractive() || isCI() {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}

// printSuccess prints a green checkmark line.
func printSuccess(format string, args ...any) {
	fmt.Printf("%s %s\n", successColor.Sprint("✓"), fmt.Sprintf(format, args...))
}

// printDetail prints a dimmed detail line, used for --verbose output.
func printDetail(format string, args ...any) {
	fmt.Println(detailColor.Sprintf("  "+format, args...))
}
