// Package cli provides the command-line interface for huecam.
package cli

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/huecam/huecam/internal/plugin/manager"
	"github.com/huecam/huecam/internal/version"
)

var (
	globalVerbose bool
	globalQuiet   bool

	sharedManager *manager.Manager
	logger        hclog.Logger
)

// NewRootCmd builds the huecam root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "huecam",
		Short: "Generate perceptually uniform Base24 terminal color schemes",
		Long: `huecam generates Base24 terminal color schemes from two anchor colors.

It builds the neutral ramp and every accent slot in the Hellwig-Fairchild
CAM16 color appearance space, corrects for the Helmholtz-Kohlrausch effect,
and solves each accent's lightness and colorfulness against an APCA
contrast floor while staying inside the sRGB gamut.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "suppress log output and the swatch preview (command results still print)")
	root.SetVersionTemplate(version.String() + "\n")

	cobra.OnInitialize(func() {
		level := hclog.Info
		if globalVerbose {
			level = hclog.Debug
		}
		if globalQuiet {
			level = hclog.Off
		}
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  "huecam",
			Level: level,
		})
		sharedManager = manager.New(globalVerbose)
	})

	root.AddCommand(newVersionCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newImportCmd())

	return root
}
