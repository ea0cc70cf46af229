// Package max7219 controls one or more daisy-chained MAX7219 LED display
// drivers via SPI.
//
// The MAX7219 (and the pin compatible MAX7221) multiplexes up to 8 common
// cathode seven-segment digits, or a single 8x8 LED matrix. Several chips can
// be chained to drive more digits from a single SPI port.
//
// # Chip Characteristics
//
// - 8 digit registers, each either raw segments or Code B decoded
// - Built-in Code B font: 0-9, '-', 'E', 'H', 'L', 'P' and blank
// - 16 intensity levels (0-15)
// - Scan limit of 1 to 8 digits
// - Shutdown mode that keeps register contents
// - Display test mode lighting every LED
//
// # Hardware Connection
//
// Connect the first chip of the chain to your system via SPI:
//
//	Chip Pin   → System Pin
//	GND        → GND
//	V+         → 5V
//	CLK        → SPI Clock (SCLK)
//	DIN        → SPI Data (MOSI)
//	LOAD (CS)  → SPI Chip Select
//
// Further chips take DOUT of the previous chip on their DIN and share CLK and
// LOAD with it.
//
// # Daisy Chaining
//
// Every chip is a 16-bit shift register: an address byte followed by a data
// byte. When LOAD rises all chips latch whatever pair they hold at that time,
// so each write shifts one pair per chip: the command for the target chip and
// a no-op (register 0x00) for every other one.
//
// Chips are numbered from 0. With the default ChipZeroLast order chip 0 is
// the one wired to the controller: the first pair shifted out travels to the
// far end of the chain, so chip 0's pair is sent last. For a three chip chain
// writing 0xFF to digit 0 of chip 1 sends:
//
//	0x00 0x00   0x01 0xFF   0x00 0x00
//	 chip 2      chip 1      chip 0
//
// Set Opts.Order to ChipZeroFirst when chip 0 should be the far end.
//
// # Basic Usage
//
// Example of creating and using a chain of two 8 digit displays:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/flavioheleno/max7219"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Create device, every chip is reset and started up
//		dev, _ := max7219.NewSPI(spiBus, &max7219.Opts{Chips: 2})
//		defer dev.Halt()
//
//		// Show a reading on the second chip
//		dev.SetActiveController(1)
//		dev.SetDecodeAll()
//		dev.SetText("-12.5")
//	}
//
// # Decode Modes
//
// Digits in raw mode take one bit per segment:
//
//	dev.SetDecodeNone()
//	dev.SetDigitSegmentsByte(0, 0x7E) // segments A-F: a zero
//
// Digits in Code B mode take a symbol from the built-in font:
//
//	dev.SetDecodeAll()
//	dev.SetDigitSymbol(0, 'H', true) // "H."
//
// The decode mode can be set per digit with SetDecodeMode. ClearDisplay
// remembers the last decode mode set on each chip and blanks each digit the
// way its mode needs.
//
// # Errors
//
// Arguments are checked before anything is sent: bad indexes and values fail
// with ErrOutOfRange, malformed segment slices, unknown symbols and unknown
// registers with ErrInvalidArgument. Bus failures come back as a
// *TransportError and are never retried.
//
// # Concurrency
//
// A Dev owns a single transmit buffer and serializes its operations with a
// mutex, so it can be shared between goroutines.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX7219-MAX7221.pdf
package max7219
