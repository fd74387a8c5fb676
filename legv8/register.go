package legv8

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/legv8/codec"
)

// Register is a general purpose register index.
type Register int

const (
	X0  = Register(0)
	X1  = Register(1)
	X2  = Register(2)
	X3  = Register(3)
	X4  = Register(4)
	X5  = Register(5)
	X6  = Register(6)
	X7  = Register(7)
	X8  = Register(8)
	X9  = Register(9)
	X10 = Register(10)
	X11 = Register(11)
	X12 = Register(12)
	X13 = Register(13)
	X14 = Register(14)
	X15 = Register(15)
	X16 = Register(16)
	X17 = Register(17)
	X18 = Register(18)
	X19 = Register(19)
	X20 = Register(20)
	X21 = Register(21)
	X22 = Register(22)
	X23 = Register(23)
	X24 = Register(24)
	X25 = Register(25)
	X26 = Register(26)
	X27 = Register(27)
	X28 = Register(28)
	X29 = Register(29)
	X30 = Register(30)
	XZR = Register(31) // Zero register.
)

// ParseRegister parses X0 through X30, or XZR.
func ParseRegister(name string) (reg Register, err error) {
	if name == "XZR" {
		reg = XZR
		return
	}

	digits, ok := strings.CutPrefix(name, "X")
	if !ok || len(digits) == 0 || len(digits) > 2 || (len(digits) == 2 && digits[0] == '0') {
		err = ErrRegister(name)
		return
	}

	n, perr := strconv.Atoi(digits)
	if perr != nil || n < 0 || n > 30 {
		err = ErrRegister(name)
		return
	}

	reg = Register(n)
	return
}

// Valid returns true if the register can be encoded.
func (reg Register) Valid() bool {
	return reg >= X0 && reg <= XZR
}

// Binary returns the 5-bit register field.
func (reg Register) Binary() (bin codec.Binary, err error) {
	if !reg.Valid() {
		err = ErrRegister(reg.String())
		return
	}

	bin = codec.DecimalToBinary(int64(reg), 5)
	return
}

func (reg Register) String() string {
	if reg == XZR {
		return "XZR"
	}
	return fmt.Sprintf("X%d", int(reg))
}

// SystemRegister is one of the exception handling system registers.
type SystemRegister int

const (
	ERR = SystemRegister(0) // S2_0_C0_C0_0, exception return register.
	ELR = SystemRegister(1) // S2_0_C1_C0_0, exception link register.
	ESR = SystemRegister(2) // S2_0_C2_C0_0, exception syndrome register.
)

var systemRegisterName = [...]string{
	ERR: "S2_0_C0_C0_0",
	ELR: "S2_0_C1_C0_0",
	ESR: "S2_0_C2_C0_0",
}

var systemRegisterBinary = [...]codec.Binary{
	ERR: "0000",
	ELR: "0001",
	ESR: "0010",
}

var systemRegisterAlias = map[string]SystemRegister{
	"ERR": ERR,
	"ELR": ELR,
	"ESR": ESR,
}

// ParseSystemRegister parses a system register by encoded name or alias.
func ParseSystemRegister(name string) (sr SystemRegister, ok bool) {
	for n, sysname := range systemRegisterName {
		if name == sysname {
			sr = SystemRegister(n)
			ok = true
			return
		}
	}

	sr, ok = systemRegisterAlias[name]
	return
}

// Binary returns the 4-bit system register tag.
func (sr SystemRegister) Binary() codec.Binary {
	return systemRegisterBinary[sr]
}

func (sr SystemRegister) String() string {
	return systemRegisterName[sr]
}
