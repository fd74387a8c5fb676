// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package codec converts between integers and fixed-width binary and
// hexadecimal digit sequences.
//
// A Binary is a string of '0' and '1' digits, most significant first. Fields
// of an instruction word are built with DecimalToBinary at their exact width
// and joined with Concat; the finished word is packed into a Hex with
// BinaryToHex.
package codec

import (
	"strings"
)

// Binary is a sequence of binary digits, most significant first.
type Binary string

// Hex is a sequence of hexadecimal digits, most significant first.
type Hex string

// nibbleHex maps a nibble to its hexadecimal digit.
const nibbleHex = "0123456789abcdef"

// ParseBinary parses a binary literal. Underscores may be used as separators.
func ParseBinary(text string) (bin Binary, err error) {
	digits := strings.ReplaceAll(text, "_", "")
	for _, c := range digits {
		if c != '0' && c != '1' {
			err = ErrParseBinary(text)
			return
		}
	}

	bin = Binary(digits)
	return
}

// MustBinary parses a binary literal, and panics if it is malformed.
// It is intended for opcode tables.
func MustBinary(text string) Binary {
	bin, err := ParseBinary(text)
	if err != nil {
		panic(err)
	}
	return bin
}

// Zero returns width zero digits.
func Zero(width int) Binary {
	return Binary(strings.Repeat("0", width))
}

// Ones returns width one digits.
func Ones(width int) Binary {
	return Binary(strings.Repeat("1", width))
}

// Concat joins binary sequences in order.
func Concat(parts ...Binary) Binary {
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(string(part))
	}
	return Binary(sb.String())
}

// DecimalToBinary returns the width-bit two's-complement representation of n.
// Values outside of the width wrap modulo 2^width.
func DecimalToBinary(n int64, width int) Binary {
	digits := make([]byte, width)
	value := uint64(n)
	for pos := width - 1; pos >= 0; pos-- {
		digits[pos] = '0' + byte(value&1)
		value >>= 1
	}
	return Binary(digits)
}

// Width returns the number of digits.
func (bin Binary) Width() int {
	return len(bin)
}

// Unsigned interprets the sequence as an unsigned integer.
func (bin Binary) Unsigned() (value uint64) {
	for _, c := range bin {
		value = (value << 1) | uint64(c-'0')
	}
	return
}

// Signed interprets the sequence as a two's-complement integer.
func (bin Binary) Signed() int64 {
	width := len(bin)
	if width == 0 {
		return 0
	}

	value := int64(bin.Unsigned())
	if bin[0] == '1' && width < 64 {
		value -= int64(1) << width
	}
	return value
}

// BinaryToHex packs the sequence four digits at a time, most significant
// nibble first.
func BinaryToHex(bin Binary) (hex Hex, err error) {
	if len(bin)%4 != 0 {
		err = ErrHexWidth(len(bin))
		return
	}

	out := make([]byte, 0, len(bin)/4)
	for n := 0; n < len(bin); n += 4 {
		nibble, perr := ParseBinary(string(bin[n : n+4]))
		if perr != nil {
			err = ErrParseBinary(bin)
			return
		}
		out = append(out, nibbleHex[nibble.Unsigned()])
	}

	hex = Hex(out)
	return
}

// HexToBinary expands each hexadecimal digit into four binary digits.
// Either case is accepted, and underscores may be used as separators.
func HexToBinary(hex Hex) (bin Binary, err error) {
	digits := strings.ToLower(strings.ReplaceAll(string(hex), "_", ""))

	var sb strings.Builder
	for _, c := range digits {
		nibble := strings.IndexRune(nibbleHex, c)
		if nibble < 0 {
			err = ErrParseHex(hex)
			return
		}
		sb.WriteString(string(DecimalToBinary(int64(nibble), 4)))
	}

	bin = Binary(sb.String())
	return
}

// Upper returns the sequence with upper case digits.
func (hex Hex) Upper() Hex {
	return Hex(strings.ToUpper(string(hex)))
}

// Uint32 interprets a sequence of at most eight digits as an unsigned word.
func (hex Hex) Uint32() (word uint32, err error) {
	if len(hex) > 8 {
		err = ErrParseHex(hex)
		return
	}

	bin, err := HexToBinary(hex)
	if err != nil {
		return
	}

	word = uint32(bin.Unsigned())
	return
}
