// Package cmd implements the max7219 command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/flavioheleno/max7219"
	"github.com/flavioheleno/max7219/internal/config"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// PortOpener opens the SPI port the chain is wired to.
type PortOpener func(name string) (spi.PortCloser, error)

// options holds the global flags shared by every subcommand.
type options struct {
	open PortOpener

	spiBus    string
	chips     int
	chip      int
	reversed  bool
	intensity int
	debug     bool
	quiet     bool
}

// NewRootCommand builds the command tree. open is called once per command to
// reach the bus.
func NewRootCommand(open PortOpener) *cobra.Command {
	opts := &options{open: open}

	rootCmd := &cobra.Command{
		Use:   "max7219",
		Short: "MAX7219 LED driver chain controller",
		Long: `Send register writes to one chip of a daisy-chained MAX7219 LED
driver chain. Every other chip of the chain receives a no-op.

Examples:
  max7219 reset --chips 2                      # Reset both chips of the chain
  max7219 --chip 1 --chips 2 text -- -12.5     # Show a reading on the second chip
  max7219 digit 0 --symbol H --dp              # Show "H." on digit 0
  max7219 raw intensity 0x0f                   # Write a register directly`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.spiBus, "spi", "s", "", "SPI bus name (empty for default)")
	flags.IntVarP(&opts.chips, "chips", "n", 1, "number of daisy-chained chips")
	flags.IntVarP(&opts.chip, "chip", "c", 0, "chip to address, 0 is wired to the controller")
	flags.BoolVar(&opts.reversed, "reversed", false, "chip 0 is the far end of the chain")
	flags.IntVar(&opts.intensity, "reset-intensity", 8, "intensity applied by reset (0-15)")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "log every register write")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")

	rootCmd.AddCommand(
		newResetCmd(opts),
		newPowerCmd(opts, "on", "Take the chip out of shutdown", (*max7219.Dev).Startup),
		newPowerCmd(opts, "off", "Put the chip in shutdown", (*max7219.Dev).Shutdown),
		newTestCmd(opts),
		newIntensityCmd(opts),
		newScanLimitCmd(opts),
		newDecodeCmd(opts),
		newDigitCmd(opts),
		newClearCmd(opts),
		newTextCmd(opts),
		newRawCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command against the host's SPI ports.
func Execute(ctx context.Context) {
	if err := NewRootCommand(openHostPort).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openHostPort initializes periph.io and opens the named SPI port.
func openHostPort(name string) (spi.PortCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io: %w", err)
	}
	return spireg.Open(name)
}

// withDev opens the chain, selects the addressed chip and runs fn. The chips
// are not reset, so the command only changes what it writes.
func (o *options) withDev(fn func(dev *max7219.Dev) error) error {
	logger := config.CreateLogger(o.debug, o.quiet)

	port, err := o.open(o.spiBus)
	if err != nil {
		return fmt.Errorf("failed to open SPI bus: %w", err)
	}
	defer port.Close()

	order := max7219.ChipZeroLast
	if o.reversed {
		order = max7219.ChipZeroFirst
	}

	dev, err := max7219.NewSPI(port, &max7219.Opts{
		Chips:     o.chips,
		Order:     order,
		Intensity: o.intensity,
		SkipReset: true,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	if err := dev.SetActiveController(o.chip); err != nil {
		return err
	}
	return fn(dev)
}

// parseByte parses a register value in decimal, hex (0x..) or binary (0b..).
func parseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte value %q: %w", s, err)
	}
	return byte(v), nil
}

// parseInt parses a decimal argument.
func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}
