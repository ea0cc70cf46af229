package cmd

import (
	"fmt"

	"github.com/flavioheleno/max7219"
	"github.com/spf13/cobra"
)

func newResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset every chip of the chain",
		Long: `Put every chip of the chain in a known state: display test off,
raw segment mode, all 8 digits scanned, default intensity, blank digits and
out of shutdown.

Examples:
  max7219 reset --chips 4 --reset-intensity 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDev((*max7219.Dev).Reset)
		},
	}
}

func newPowerCmd(opts *options, use, short string, fn func(*max7219.Dev) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDev(fn)
		},
	}
}

func newTestCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "test on|off",
		Short: "Start or stop the display test",
		Long: `The display test lights every LED of the chip at full intensity.
Mind the current draw when testing several chips at once.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "on":
				return opts.withDev((*max7219.Dev).StartDisplayTest)
			case "off":
				return opts.withDev((*max7219.Dev).StopDisplayTest)
			default:
				return fmt.Errorf("must specify either on or off, got %q", args[0])
			}
		},
	}
}
