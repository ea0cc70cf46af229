package cmd

import (
	"github.com/flavioheleno/max7219"
	"github.com/spf13/cobra"
)

func newIntensityCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "intensity LEVEL",
		Short: "Set the brightness (0-15)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseInt("intensity", args[0])
			if err != nil {
				return err
			}
			return opts.withDev(func(dev *max7219.Dev) error {
				return dev.SetDisplayIntensity(level)
			})
		},
	}
}

func newScanLimitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan-limit DIGITS",
		Short: "Set how many digits are displayed (1-8)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("scan limit", args[0])
			if err != nil {
				return err
			}
			return opts.withDev(func(dev *max7219.Dev) error {
				return dev.SetScanLimit(n)
			})
		},
	}
}

func newRawCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "raw REGISTER VALUE",
		Short: "Write a value to a register",
		Long: `Write a value to a register of the addressed chip.

Registers: noop, digit0-digit7, decode-mode, intensity, scan-limit, shutdown,
display-test.

Examples:
  max7219 raw digit3 0x7e
  max7219 raw scan-limit 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := max7219.ParseRegister(args[0])
			if err != nil {
				return err
			}
			v, err := parseByte(args[1])
			if err != nil {
				return err
			}
			return opts.withDev(func(dev *max7219.Dev) error {
				return dev.WriteRegister(r, v)
			})
		},
	}
}
