// Package segment encodes MAX7219 digit register values: raw segment bits
// and Code B font symbols.
package segment

import (
	"errors"
	"fmt"
)

// Bits is the number of segments (including the decimal point) in a digit.
const Bits = 8

const (
	// DecimalPoint is OR'd onto a Code B value to light the decimal point.
	DecimalPoint byte = 0x80
	// Blank is the Code B value that turns every segment of a digit off.
	Blank byte = 0x0f
)

// ErrInvalidArgument is returned for malformed input such as a segment slice
// of the wrong length or a symbol missing from the Code B font.
var ErrInvalidArgument = errors.New("invalid argument")

// codeB maps the displayable symbols to their 4-bit Code B font value.
var codeB = map[rune]byte{
	'0': 0x0, '1': 0x1, '2': 0x2, '3': 0x3, '4': 0x4,
	'5': 0x5, '6': 0x6, '7': 0x7, '8': 0x8, '9': 0x9,
	'-': 0xa,
	'E': 0xb,
	'H': 0xc,
	'L': 0xd,
	'P': 0xe,
	' ': 0xf,
}

// Code returns the 4-bit Code B value for sym.
func Code(sym rune) (byte, bool) {
	c, ok := codeB[sym]
	return c, ok
}

// Encode packs bits into a byte, bits[i] going to bit position i.
// It fails unless len(bits) is exactly 8.
func Encode(bits []bool) (byte, error) {
	if len(bits) != Bits {
		return 0, fmt.Errorf("segment: %w: got %d bits, want %d", ErrInvalidArgument, len(bits), Bits)
	}
	var b byte
	for i, on := range bits {
		if on {
			b |= 1 << uint(i)
		}
	}
	return b, nil
}

// Decode unpacks b into 8 booleans, bit position i going to index i.
func Decode(b byte) []bool {
	bits := make([]bool, Bits)
	for i := range bits {
		bits[i] = b&(1<<uint(i)) != 0
	}
	return bits
}

// EncodeSymbol returns the Code B register value for sym, with bit 7 set
// when dp is true.
func EncodeSymbol(sym rune, dp bool) (byte, error) {
	c, ok := codeB[sym]
	if !ok {
		return 0, fmt.Errorf("segment: %w: symbol %q not in Code B font", ErrInvalidArgument, sym)
	}
	if dp {
		c |= DecimalPoint
	}
	return c, nil
}

// ParseText converts s into one Code B value per displayed digit.
//
// A '.' does not take a digit of its own: it lights the decimal point of
// the preceding symbol, or of a blank digit when it leads the string or
// follows another '.'.
func ParseText(s string) ([]byte, error) {
	codes := make([]byte, 0, len(s))
	dotted := true
	for _, r := range s {
		if r == '.' {
			if dotted {
				codes = append(codes, Blank)
			}
			codes[len(codes)-1] |= DecimalPoint
			dotted = true
			continue
		}
		c, err := EncodeSymbol(r, false)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
		dotted = false
	}
	return codes, nil
}
