package legv8

import (
	"errors"

	"github.com/ezrec/legv8/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrVectorOverflow  = errors.New(f("program has %d or more instructions and overwrites the exception vector", VectorSlot))

	// Parser errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrInstructionInvalid = errors.New(f("invalid instruction"))
	ErrRTypeInvalid       = errors.New(f("invalid R-type instruction"))
	ErrDTypeInvalid       = errors.New(f("invalid D-type instruction"))
	ErrITypeInvalid       = errors.New(f("invalid I-type instruction"))
	ErrCbzInvalid         = errors.New(f("invalid CBZ instruction"))
	ErrBrInvalid          = errors.New(f("invalid BR instruction"))
	ErrMrsInvalid         = errors.New(f("invalid MRS instruction"))
)

type ErrLabelDuplicate string

func (el ErrLabelDuplicate) Error() string {
	return f("label \"%v\" is duplicated", string(el))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label \"%v\" does not exist", string(el))
}

// ErrRegister is an unencodable register.
type ErrRegister string

func (er ErrRegister) Error() string {
	return f("register %v invalid", string(er))
}

func (er ErrRegister) Is(err error) bool {
	return err == ErrRegisterInvalid
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d \"%v\": %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrWordWidth reports an encoder table defect: the fields of an
// instruction did not total 32 bits.
type ErrWordWidth struct {
	Op    Opcode
	Width int
}

func (err ErrWordWidth) Error() string {
	return f("%v encodes to %d bits, not 32", err.Op, err.Width)
}
