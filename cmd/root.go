package cmd

import (
	"fmt"
	"os"

	"toolbox/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "toolbox",
	Short: "Toolbox Service",
	Long: `Toolbox bundles small conversion widgets: an expression calculator, a radix
converter, an IPv4 converter, a timestamp converter, a chmod calculator and a color helper.
Run "toolbox start" to serve them over HTTP, or use a subcommand for a one-shot conversion.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the development config keeps CLI errors readable
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(
		newRadixCmd(),
		newIPv4Cmd(),
		newChmodCmd(),
		newColorCmd(),
		newTimestampCmd(),
		newEvalCmd(),
		newThemeCmd(),
	)
}
