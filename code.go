package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, spelled as a string of '0' and '1'
// characters with the first bit leftmost.
//
// Code is a value type: Append returns a new Code and never modifies the
// receiver, so two paths extended from the same prefix never observe each
// other.
type Code string

// maxPackedSize is the largest Code that fits in the integer form returned by
// Packed.
const maxPackedSize = 64

// ParseCode validates a string of '0' and '1' characters and returns it as a
// Code.
func ParseCode(str string) (Code, error) {
	for i := 0; i < len(str); i++ {
		if ch := str[i]; ch != '0' && ch != '1' {
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidCode, ch, i)
		}
	}
	return Code(str), nil
}

// MakeCode is a convenience function that constructs a Code from its packed
// form.  The least significant bit of bits is the first bit.
func MakeCode(size byte, bits uint64) Code {
	var buf strings.Builder
	buf.Grow(int(size))
	for i := byte(0); i < size; i++ {
		buf.WriteByte('0' + byte((bits>>i)&1))
	}
	return Code(buf.String())
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Bit returns the i'th bit (0 or 1).
func (hc Code) Bit(i int) byte {
	return hc[i] - '0'
}

// Append returns this Code extended by one bit.  Any non-zero bit is 1.
func (hc Code) Append(bit byte) Code {
	if bit == 0 {
		return hc + "0"
	}
	return hc + "1"
}

// HasPrefix reports whether prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// Packed returns the Code as an integer suitable for an LSB-first bit writer:
// the least significant bit of bits is the first bit.  ok is false if the
// Code is longer than 64 bits.
func (hc Code) Packed() (size byte, bits uint64, ok bool) {
	if len(hc) > maxPackedSize {
		return 0, 0, false
	}
	for i := len(hc) - 1; i >= 0; i-- {
		bits = (bits << 1) | uint64(hc.Bit(i))
	}
	return byte(len(hc)), bits, true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
