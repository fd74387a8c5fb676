package codec

import (
	"github.com/ezrec/legv8/translate"
)

var f = translate.From

// ErrHexWidth is returned when a binary sequence of the given length can not
// be packed into whole nibbles.
type ErrHexWidth int

func (err ErrHexWidth) Error() string {
	return f("binary length %d is not a multiple of 4", int(err))
}

type ErrParseBinary string

func (err ErrParseBinary) Error() string {
	return f("'%v' is not a binary number", string(err))
}

type ErrParseHex string

func (err ErrParseHex) Error() string {
	return f("'%v' is not a hexadecimal number", string(err))
}
