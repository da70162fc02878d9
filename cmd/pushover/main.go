package main

import (
	"os"

	"github.com/Bauke/pushover/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
