package main

// segmentEncodings maps a digit value (0-F) to the byte shifted into the
// display's shift register.  Bit 7 drives segment A down to bit 1 for
// segment G; bit 0 is the decimal point, which we never light.
var segmentEncodings = [16]byte{
	// ABCDEFG.
	0b11111100, // 0
	0b01100000, // 1
	0b11011010, // 2
	0b11110010, // 3
	0b01100110, // 4
	0b10110110, // 5
	0b10111110, // 6
	0b11100000, // 7
	0b11111110, // 8
	0b11110110, // 9
	0b11101110, // A
	0b00111110, // b
	0b10011100, // C
	0b01111010, // d
	0b10011110, // E
	0b10001110, // F
}

// blankPattern turns every segment off.
const blankPattern byte = 0

// encodeDigit returns the segment pattern for d.  Only the low nibble is used.
func encodeDigit(d byte) byte {
	return segmentEncodings[d&0x0F]
}

// Digits splits value into its digits in the given base, least significant
// first.  The loop stops as soon as the remaining value is zero, so a value
// of 0 yields no digits at all.
func Digits(value uint, base uint) []byte {
	if base < 2 {
		base = 10
	}
	var out []byte
	for value != 0 {
		out = append(out, byte(value%base))
		value /= base
	}
	return out
}
