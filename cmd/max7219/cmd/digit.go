package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/flavioheleno/max7219"
	"github.com/flavioheleno/max7219/segment"
	"github.com/spf13/cobra"
)

// setDecode applies a decode argument: all, none or a digit bit mask.
func setDecode(dev *max7219.Dev, mode string) error {
	switch mode {
	case "all":
		return dev.SetDecodeAll()
	case "none":
		return dev.SetDecodeNone()
	}
	mask, err := parseByte(mode)
	if err != nil {
		return fmt.Errorf("decode mode must be all, none or a digit mask: %w", err)
	}
	return dev.SetDecodeMode(segment.Decode(mask))
}

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode all|none|MASK",
		Short: "Select Code B or raw segments per digit",
		Long: `Select which digits decode their value with the Code B font. Bit n of
MASK selects Code B for digit n.

Examples:
  max7219 decode all
  max7219 decode 0x0f     # Code B on digits 0-3, raw segments on 4-7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDev(func(dev *max7219.Dev) error {
				return setDecode(dev, args[0])
			})
		},
	}
}

func newDigitCmd(opts *options) *cobra.Command {
	var (
		symbol   string
		dp       bool
		value    string
		segments []bool
	)

	digitCmd := &cobra.Command{
		Use:   "digit N",
		Short: "Set the content of one digit (0-7)",
		Long: `Set the content of one digit, from a Code B symbol, a raw byte or a
list of 8 segment bits (bit 0 first).

Examples:
  max7219 digit 0 --symbol H --dp
  max7219 digit 7 --byte 0x7e
  max7219 digit 3 --segments 0,1,1,0,0,0,0,0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("digit", args[0])
			if err != nil {
				return err
			}

			switch {
			case cmd.Flags().Changed("symbol"):
				sym, size := utf8.DecodeRuneInString(symbol)
				if size == 0 || size != len(symbol) {
					return fmt.Errorf("symbol must be a single character, got %q", symbol)
				}
				return opts.withDev(func(dev *max7219.Dev) error {
					return dev.SetDigitSymbol(n, sym, dp)
				})

			case cmd.Flags().Changed("byte"):
				b, err := parseByte(value)
				if err != nil {
					return err
				}
				return opts.withDev(func(dev *max7219.Dev) error {
					return dev.SetDigitSegmentsByte(n, b)
				})

			default:
				return opts.withDev(func(dev *max7219.Dev) error {
					return dev.SetDigitSegments(n, segments)
				})
			}
		},
	}

	digitCmd.Flags().StringVar(&symbol, "symbol", "", "Code B symbol: 0-9, -, E, H, L, P or space")
	digitCmd.Flags().BoolVar(&dp, "dp", false, "light the decimal point (with --symbol)")
	digitCmd.Flags().StringVar(&value, "byte", "", "raw register value")
	digitCmd.Flags().BoolSliceVar(&segments, "segments", nil, "8 segment bits, bit 0 first")
	digitCmd.MarkFlagsMutuallyExclusive("symbol", "byte", "segments")
	digitCmd.MarkFlagsOneRequired("symbol", "byte", "segments")

	return digitCmd
}

func newClearCmd(opts *options) *cobra.Command {
	var decode string

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Blank every digit",
		Long: `Blank every digit of the addressed chip. Digits in Code B mode need the
blank symbol rather than zero, and a fresh run cannot know the mode the chip
is in, so --decode is required: it is written first, then every digit is
blanked to match.

Examples:
  max7219 clear --decode none
  max7219 clear --decode all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDev(func(dev *max7219.Dev) error {
				if err := setDecode(dev, decode); err != nil {
					return err
				}
				return dev.ClearDisplay()
			})
		},
	}

	clearCmd.Flags().StringVar(&decode, "decode", "", "decode mode the chip is in: all, none or a digit mask")
	_ = clearCmd.MarkFlagRequired("decode")
	return clearCmd
}

func newTextCmd(opts *options) *cobra.Command {
	var keepDecode bool

	textCmd := &cobra.Command{
		Use:   "text TEXT",
		Short: "Show Code B text, right-aligned",
		Long: `Show up to 8 Code B symbols, right-aligned. A '.' lights the decimal
point of the symbol before it. Every digit is switched to Code B first,
unless --keep-decode is given. Text starting with '-' must follow "--" so it
is not read as a flag.

Examples:
  max7219 text -- -12.5
  max7219 --chip 1 text HELP`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check the text before touching the decode mode
			codes, err := segment.ParseText(args[0])
			if err != nil {
				return err
			}
			if len(codes) > max7219.Digits {
				return fmt.Errorf("%q needs %d digits, a chip has %d", args[0], len(codes), max7219.Digits)
			}

			return opts.withDev(func(dev *max7219.Dev) error {
				if !keepDecode {
					if err := dev.SetDecodeAll(); err != nil {
						return err
					}
				}
				return dev.SetText(args[0])
			})
		},
	}

	textCmd.Flags().BoolVar(&keepDecode, "keep-decode", false, "do not switch the digits to Code B")
	return textCmd
}
