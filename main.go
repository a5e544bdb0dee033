// FastPilot - an intermittent fasting tracker for the terminal.
package main

import (
	"os"

	"github.com/manav03panchal/fastpilot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
