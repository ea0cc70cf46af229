package max7219

import (
	"fmt"
	"strings"
)

// Register is a MAX7219 register address, the first byte of every
// address/data pair shifted into a chip.
type Register byte

// Register addresses from the datasheet's register address map (table 2).
const (
	NoOp        Register = 0x00
	Digit0      Register = 0x01
	Digit1      Register = 0x02
	Digit2      Register = 0x03
	Digit3      Register = 0x04
	Digit4      Register = 0x05
	Digit5      Register = 0x06
	Digit6      Register = 0x07
	Digit7      Register = 0x08
	DecodeMode  Register = 0x09
	Intensity   Register = 0x0a
	ScanLimit   Register = 0x0b
	Shutdown    Register = 0x0c
	DisplayTest Register = 0x0f
)

// Digits is the number of digit registers per chip.
const Digits = 8

var registerNames = map[Register]string{
	NoOp:        "noop",
	Digit0:      "digit0",
	Digit1:      "digit1",
	Digit2:      "digit2",
	Digit3:      "digit3",
	Digit4:      "digit4",
	Digit5:      "digit5",
	Digit6:      "digit6",
	Digit7:      "digit7",
	DecodeMode:  "decode-mode",
	Intensity:   "intensity",
	ScanLimit:   "scan-limit",
	Shutdown:    "shutdown",
	DisplayTest: "display-test",
}

// DigitRegister returns the register of digit n (0-7).
func DigitRegister(n int) (Register, error) {
	if n < 0 || n >= Digits {
		return NoOp, fmt.Errorf("max7219: %w: digit %d not in [0, %d]", ErrOutOfRange, n, Digits-1)
	}
	return Digit0 + Register(n), nil
}

// Valid reports whether r is one of the addresses the chip decodes.
func (r Register) Valid() bool {
	_, ok := registerNames[r]
	return ok
}

func (r Register) String() string {
	if name, ok := registerNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Register(0x%02x)", byte(r))
}

// ParseRegister looks up a register by name, as returned by String.
// Matching ignores case, and "_" is accepted in place of "-".
func ParseRegister(name string) (Register, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for r, rn := range registerNames {
		if rn == n || strings.ReplaceAll(rn, "-", "") == n {
			return r, nil
		}
	}
	return NoOp, fmt.Errorf("max7219: %w: unknown register %q", ErrInvalidArgument, name)
}
