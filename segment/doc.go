// Package segment encodes the digit register values of the MAX7219 LED driver.
//
// A digit register holds one byte. In no-decode mode every bit drives one
// segment directly; in Code B decode mode the low nibble selects a glyph from
// the chip's built-in font and bit 7 drives the decimal point.
//
// Bit layout of a no-decode digit (datasheet table 6):
//
//	Bit:      D7  D6  D5  D4  D3  D2  D1  D0
//	Segment:  DP  A   B   C   D   E   F   G
//
// Encode packs a slice of 8 booleans by index, so bits[i] lands in Di:
//
//	Bits:  [1 0 0 0 0 0 0 1]
//	Byte:  0x81
//
// Code B font (datasheet table 5):
//
//	Symbol: 0 1 2 3 4 5 6 7 8 9 - E H L P (blank)
//	Code:   0 1 2 3 4 5 6 7 8 9 A B C D E F
//
// Example usage:
//
//	// Raw segments for digit 0
//	b, err := segment.Encode([]bool{true, false, false, false, false, false, false, true})
//
//	// 'H' with the decimal point lit: 0x8C
//	b, err = segment.EncodeSymbol('H', true)
//
//	// "12.5" as three Code B bytes: 0x01 0x82 0x05
//	codes, err := segment.ParseText("12.5")
package segment
