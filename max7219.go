// Package max7219 controls one or more daisy-chained MAX7219 LED display
// drivers via SPI.
//
// The MAX7219 drives up to 8 seven-segment digits (or an 8x8 LED matrix).
// Chained chips share the load strobe, so every write shifts one
// address/data pair through each chip of the chain.
//
// See the examples for how to use this package.
package max7219

import (
	"fmt"
	"sync"

	"github.com/flavioheleno/max7219/segment"
	"github.com/retroenv/retrogolib/log"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Order selects which end of the transmit buffer belongs to chip 0.
type Order int

const (
	// ChipZeroLast treats chip 0 as the chip wired to the controller's MOSI.
	// Its pair is shifted out last, after the pairs of every chip further
	// down the chain.
	ChipZeroLast Order = iota
	// ChipZeroFirst shifts chip 0's pair out first, making chip 0 the chip
	// at the far end of the chain.
	ChipZeroFirst
)

// Opts is the configuration for a MAX7219 chain.
type Opts struct {
	// Number of daisy-chained chips (default: 1)
	Chips int

	// Byte order of chip pairs within a transaction (default: ChipZeroLast)
	Order Order

	// Intensity applied by Reset, 0-15 (default: 8)
	Intensity int

	// Skip the Reset sequence in NewSPI
	SkipReset bool

	// Optional logger, every register write is logged at debug level
	Logger *log.Logger
}

// Dev is the device handle for a chain of MAX7219 chips.
type Dev struct {
	mu sync.Mutex

	// Communication
	c      conn.Conn
	logger *log.Logger

	// Chain geometry
	chips  int
	order  Order
	active int

	// Transmit buffer, 2 bytes per chip, reused for every write
	buf []byte

	// Decode mode last set on each chip, bit n set for digit n in Code B
	decode []byte

	intensity int
	halted    bool
}

// New creates a device on an already connected bus. Nothing is sent to the
// chips.
//
// opts can be nil to use defaults (a single chip).
func New(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}

	chips := opts.Chips
	if chips == 0 {
		chips = 1
	}
	if chips < 0 {
		return nil, fmt.Errorf("max7219: %w: chip count must be at least 1, got %d", ErrOutOfRange, chips)
	}
	if opts.Order != ChipZeroLast && opts.Order != ChipZeroFirst {
		return nil, fmt.Errorf("max7219: %w: unknown order %d", ErrInvalidArgument, opts.Order)
	}

	intensity := opts.Intensity
	if intensity == 0 {
		intensity = 8
	}
	if intensity < 0 || intensity > 15 {
		return nil, fmt.Errorf("max7219: %w: intensity %d not in [0, 15]", ErrOutOfRange, intensity)
	}

	return &Dev{
		c:         c,
		logger:    opts.Logger,
		chips:     chips,
		order:     opts.Order,
		buf:       make([]byte, 2*chips),
		decode:    make([]byte, chips),
		intensity: intensity,
	}, nil
}

// NewSPI creates a new MAX7219 chain connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. Unless opts.SkipReset is set, every chip is put through Reset.
//
// opts can be nil to use defaults (a single chip).
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}

	// The chip samples DIN on the rising edge: Mode0 works, as do Mode2/3.
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("max7219: %w", err)
	}

	d, err := New(c, opts)
	if err != nil {
		return nil, err
	}
	if opts.SkipReset {
		return d, nil
	}
	if err := d.Reset(); err != nil {
		return nil, err
	}
	return d, nil
}

// slot returns the offset of chip's address/data pair in the transmit buffer.
func (d *Dev) slot(chip int) int {
	if d.order == ChipZeroFirst {
		return 2 * chip
	}
	return 2 * (d.chips - 1 - chip)
}

// writeRegister sends value to register r of chip, and a no-op to every
// other chip in the same transaction. Callers hold d.mu.
func (d *Dev) writeRegister(chip int, r Register, value byte) error {
	if d.halted {
		return ErrHalted
	}
	if chip < 0 || chip >= d.chips {
		return fmt.Errorf("max7219: %w: chip %d not in [0, %d)", ErrOutOfRange, chip, d.chips)
	}
	if !r.Valid() {
		return fmt.Errorf("max7219: %w: %s", ErrInvalidArgument, r)
	}

	// No-op filler for every chip, then the command in the target slot
	clear(d.buf)
	i := d.slot(chip)
	d.buf[i] = byte(r)
	d.buf[i+1] = value

	if d.logger != nil {
		d.logger.Debug("Register write",
			log.Int("chip", chip),
			log.Stringer("register", r),
			log.Hex("value", value))
	}

	if err := d.c.Tx(d.buf, nil); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

// WriteRegister writes value to register r of the active chip.
func (d *Dev) WriteRegister(r Register, value byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeRegister(d.active, r, value)
}

// WriteRegisterTo writes value to register r of the given chip, leaving the
// active chip unchanged.
func (d *Dev) WriteRegisterTo(chip int, r Register, value byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeRegister(chip, r, value)
}

// Chips returns the number of chips in the chain.
func (d *Dev) Chips() int {
	return d.chips
}

// ActiveController returns the index of the chip targeted by the operations.
func (d *Dev) ActiveController() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// SetActiveController selects the chip targeted by subsequent operations.
// On failure the active chip is left unchanged.
func (d *Dev) SetActiveController(chip int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if chip < 0 || chip >= d.chips {
		return fmt.Errorf("max7219: %w: chip %d not in [0, %d)", ErrOutOfRange, chip, d.chips)
	}
	d.active = chip
	return nil
}

// Startup takes the active chip out of shutdown mode.
func (d *Dev) Startup() error {
	return d.WriteRegister(Shutdown, 0x01)
}

// Shutdown puts the active chip in shutdown mode. The digit registers keep
// their data.
func (d *Dev) Shutdown() error {
	return d.WriteRegister(Shutdown, 0x00)
}

// StartDisplayTest lights every LED of the active chip at full intensity.
func (d *Dev) StartDisplayTest() error {
	return d.WriteRegister(DisplayTest, 0x01)
}

// StopDisplayTest returns the active chip to normal operation.
func (d *Dev) StopDisplayTest() error {
	return d.WriteRegister(DisplayTest, 0x00)
}

// setDecode writes mask to the active chip's decode-mode register and
// records it for ClearDisplay. Callers hold d.mu.
func (d *Dev) setDecode(mask byte) error {
	if d.halted {
		return ErrHalted
	}
	// The record tracks the commanded mode, whether or not the write lands
	d.decode[d.active] = mask
	return d.writeRegister(d.active, DecodeMode, mask)
}

// SetDecodeMode selects, per digit, Code B decoding (true) or raw segments
// (false). modes must hold exactly 8 values, modes[n] applying to digit n.
func (d *Dev) SetDecodeMode(modes []bool) error {
	mask, err := segment.Encode(modes)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setDecode(mask)
}

// SetDecodeNone puts every digit of the active chip in raw segment mode.
func (d *Dev) SetDecodeNone() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setDecode(0x00)
}

// SetDecodeAll puts every digit of the active chip in Code B mode.
func (d *Dev) SetDecodeAll() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setDecode(0xff)
}

// SetDigitSegments sets the raw segments of digit n, segs[i] driving bit i.
func (d *Dev) SetDigitSegments(n int, segs []bool) error {
	r, err := DigitRegister(n)
	if err != nil {
		return err
	}
	b, err := segment.Encode(segs)
	if err != nil {
		return err
	}
	return d.WriteRegister(r, b)
}

// SetDigitSegmentsByte writes b unchanged to digit n.
func (d *Dev) SetDigitSegmentsByte(n int, b byte) error {
	r, err := DigitRegister(n)
	if err != nil {
		return err
	}
	return d.WriteRegister(r, b)
}

// SetDigitSymbol shows a Code B symbol on digit n. The digit must be in
// decode mode for the chip to render the glyph.
func (d *Dev) SetDigitSymbol(n int, sym rune, dp bool) error {
	r, err := DigitRegister(n)
	if err != nil {
		return err
	}
	b, err := segment.EncodeSymbol(sym, dp)
	if err != nil {
		return err
	}
	return d.WriteRegister(r, b)
}

// SetText shows s right-aligned on the active chip: the last symbol goes to
// digit 0 and unused digits are blanked. A '.' lights the decimal point of
// the symbol before it. The digits must be in decode mode.
func (d *Dev) SetText(s string) error {
	codes, err := segment.ParseText(s)
	if err != nil {
		return err
	}
	if len(codes) > Digits {
		return fmt.Errorf("max7219: %w: %q needs %d digits, have %d", ErrOutOfRange, s, len(codes), Digits)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for n := 0; n < Digits; n++ {
		v := segment.Blank
		if n < len(codes) {
			v = codes[len(codes)-1-n]
		}
		if err := d.writeRegister(d.active, Digit0+Register(n), v); err != nil {
			return err
		}
	}
	return nil
}

// clearDisplay blanks every digit of chip according to its decode mode.
// Callers hold d.mu.
func (d *Dev) clearDisplay(chip int) error {
	for n := 0; n < Digits; n++ {
		var v byte
		if d.decode[chip]&(1<<uint(n)) != 0 {
			v = segment.Blank
		}
		if err := d.writeRegister(chip, Digit0+Register(n), v); err != nil {
			return err
		}
	}
	return nil
}

// ClearDisplay turns off every digit of the active chip. Digits in Code B
// mode get the blank symbol, the others get all segments off. A chip whose
// decode mode was never set is cleared as raw segments.
func (d *Dev) ClearDisplay() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clearDisplay(d.active)
}

// SetDisplayIntensity sets the brightness of the active chip (0-15).
// Keep in mind that the brighter the display, the more current it draws.
func (d *Dev) SetDisplayIntensity(v int) error {
	if v < 0 || v > 15 {
		return fmt.Errorf("max7219: %w: intensity %d not in [0, 15]", ErrOutOfRange, v)
	}
	return d.WriteRegister(Intensity, byte(v))
}

// SetScanLimit sets how many digits (1-8) the active chip multiplexes.
func (d *Dev) SetScanLimit(n int) error {
	if n < 1 || n > Digits {
		return fmt.Errorf("max7219: %w: scan limit %d not in [1, %d]", ErrOutOfRange, n, Digits)
	}
	return d.WriteRegister(ScanLimit, byte(n-1))
}

// Reset puts every chip of the chain in a known state: display test off,
// raw segment mode, all 8 digits scanned, default intensity, blank digits,
// then out of shutdown. It also clears the halted state.
func (d *Dev) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.halted = false
	for chip := 0; chip < d.chips; chip++ {
		cmds := []struct {
			r Register
			v byte
		}{
			{DisplayTest, 0x00},
			{Shutdown, 0x00},
			{DecodeMode, 0x00},
			{ScanLimit, Digits - 1},
			{Intensity, byte(d.intensity)},
		}
		for _, cmd := range cmds {
			if err := d.writeRegister(chip, cmd.r, cmd.v); err != nil {
				return err
			}
		}
		d.decode[chip] = 0x00
		if err := d.clearDisplay(chip); err != nil {
			return err
		}
		if err := d.writeRegister(chip, Shutdown, 0x01); err != nil {
			return err
		}
	}
	return nil
}

// Halt shuts down every chip of the chain.
// After calling Halt, every write fails with ErrHalted until Reset is called.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.halted {
		return nil
	}
	for chip := 0; chip < d.chips; chip++ {
		if err := d.writeRegister(chip, Shutdown, 0x00); err != nil {
			return err
		}
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("max7219.Dev{%d chips}", d.chips)
}
