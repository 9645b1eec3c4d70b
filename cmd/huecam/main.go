// Command huecam generates perceptually uniform Base24 terminal color
// schemes from a pair of background/foreground anchor colors.
package main

import (
	"os"

	"github.com/huecam/huecam/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
