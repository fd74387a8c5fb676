package legv8

import (
	"fmt"

	"github.com/ezrec/legv8/codec"
)

// Opcode is an instruction mnemonic.
type Opcode int

const (
	OP_STUR    = Opcode(0)  // STUR
	OP_LDUR    = Opcode(1)  // LDUR
	OP_ADD     = Opcode(2)  // ADD
	OP_SUB     = Opcode(3)  // SUB
	OP_AND     = Opcode(4)  // AND
	OP_ORR     = Opcode(5)  // ORR
	OP_ADDI    = Opcode(6)  // ADDI
	OP_SUBI    = Opcode(7)  // SUBI
	OP_CBZ     = Opcode(8)  // CBZ
	OP_ERET    = Opcode(9)  // ERET
	OP_NOP     = Opcode(10) // NOP
	OP_MRS     = Opcode(11) // MRS
	OP_BR      = Opcode(12) // BR
	OP_INVALID = Opcode(13) // INVALID_INSTRUCTION
)

var opcodeName = [...]string{
	OP_STUR:    "STUR",
	OP_LDUR:    "LDUR",
	OP_ADD:     "ADD",
	OP_SUB:     "SUB",
	OP_AND:     "AND",
	OP_ORR:     "ORR",
	OP_ADDI:    "ADDI",
	OP_SUBI:    "SUBI",
	OP_CBZ:     "CBZ",
	OP_ERET:    "ERET",
	OP_NOP:     "NOP",
	OP_MRS:     "MRS",
	OP_BR:      "BR",
	OP_INVALID: "INVALID_INSTRUCTION",
}

func (op Opcode) String() string {
	if op < 0 || int(op) >= len(opcodeName) {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return opcodeName[op]
}

// opcodeBinary holds the fixed opcode field of each instruction.
var opcodeBinary = map[Opcode]codec.Binary{
	OP_STUR: codec.MustBinary("111_1100_0000"),
	OP_LDUR: codec.MustBinary("111_1100_0010"),
	OP_ADD:  codec.MustBinary("100_0101_1000"),
	OP_SUB:  codec.MustBinary("110_0101_1000"),
	OP_AND:  codec.MustBinary("100_0101_0000"),
	OP_ORR:  codec.MustBinary("101_0101_0000"),
	OP_ADDI: codec.MustBinary("10_0100_0100"),
	OP_SUBI: codec.MustBinary("11_0100_0100"),
	OP_CBZ:  codec.MustBinary("1011_0100"),
	OP_ERET: codec.MustBinary("110_1011_0100"),
	OP_MRS:  codec.MustBinary("110_1010_1001"),
	OP_BR:   codec.MustBinary("110_1011_0000"),
}

// Item is an element of a Program: an Instruction or a Label.
type Item interface {
	item()
}

// Instruction is a single encodable instruction.
type Instruction interface {
	Item
	fmt.Stringer

	// Opcode returns the instruction mnemonic.
	Opcode() Opcode
	// Encode returns the 32-bit instruction word for the instruction at
	// index, resolving branch targets with labels.
	Encode(index int, labels LabelTable) (codec.Binary, error)
}

// word joins the fields of an instruction word, which must total 32 bits.
func word(op Opcode, fields ...codec.Binary) codec.Binary {
	bin := codec.Concat(fields...)
	if bin.Width() != 32 {
		panic(ErrWordWidth{Op: op, Width: bin.Width()})
	}
	return bin
}

// registers encodes a list of registers.
func registers(regs ...Register) (bins []codec.Binary, err error) {
	bins = make([]codec.Binary, len(regs))
	for n, reg := range regs {
		bins[n], err = reg.Binary()
		if err != nil {
			return
		}
	}
	return
}

// RType is a three register ALU instruction: ADD, SUB, AND or ORR.
type RType struct {
	Op Opcode
	Rd Register
	Rn Register
	Rm Register
}

func (RType) item() {}

func (in RType) Opcode() Opcode { return in.Op }

func (in RType) Encode(index int, labels LabelTable) (bin codec.Binary, err error) {
	switch in.Op {
	case OP_ADD, OP_SUB, OP_AND, OP_ORR:
	default:
		err = ErrInstructionInvalid
		return
	}

	regs, err := registers(in.Rm, in.Rn, in.Rd)
	if err != nil {
		return
	}

	bin = word(in.Op,
		opcodeBinary[in.Op],
		regs[0],
		codec.Zero(6), // shamt
		regs[1],
		regs[2],
	)
	return
}

func (in RType) String() string {
	return fmt.Sprintf("%v %v, %v, %v", in.Op, in.Rd, in.Rn, in.Rm)
}

// DType is a memory load or store: LDUR or STUR.
type DType struct {
	Op     Opcode
	Rt     Register
	Rn     Register
	Offset int
}

func (DType) item() {}

func (in DType) Opcode() Opcode { return in.Op }

func (in DType) Encode(index int, labels LabelTable) (bin codec.Binary, err error) {
	switch in.Op {
	case OP_LDUR, OP_STUR:
	default:
		err = ErrInstructionInvalid
		return
	}

	regs, err := registers(in.Rn, in.Rt)
	if err != nil {
		return
	}

	bin = word(in.Op,
		opcodeBinary[in.Op],
		codec.DecimalToBinary(int64(in.Offset), 9),
		codec.Zero(2), // op2
		regs[0],
		regs[1],
	)
	return
}

func (in DType) String() string {
	return fmt.Sprintf("%v %v, [%v, #%d]", in.Op, in.Rt, in.Rn, in.Offset)
}

// IType is an ALU instruction with an immediate: ADDI or SUBI.
type IType struct {
	Op  Opcode
	Rd  Register
	Rn  Register
	Imm int
}

func (IType) item() {}

func (in IType) Opcode() Opcode { return in.Op }

func (in IType) Encode(index int, labels LabelTable) (bin codec.Binary, err error) {
	switch in.Op {
	case OP_ADDI, OP_SUBI:
	default:
		err = ErrInstructionInvalid
		return
	}

	regs, err := registers(in.Rn, in.Rd)
	if err != nil {
		return
	}

	bin = word(in.Op,
		opcodeBinary[in.Op],
		codec.DecimalToBinary(int64(in.Imm), 12),
		regs[0],
		regs[1],
	)
	return
}

func (in IType) String() string {
	return fmt.Sprintf("%v %v, %v, #%d", in.Op, in.Rd, in.Rn, in.Imm)
}

// CBZ branches to Label when Rt is zero.
type CBZ struct {
	Rt    Register
	Label string
}

func (CBZ) item() {}

func (CBZ) Opcode() Opcode { return OP_CBZ }

func (in CBZ) Encode(index int, labels LabelTable) (bin codec.Binary, err error) {
	target, ok := labels[in.Label]
	if !ok {
		err = ErrLabelMissing(in.Label)
		return
	}

	rt, err := in.Rt.Binary()
	if err != nil {
		return
	}

	bin = word(OP_CBZ,
		opcodeBinary[OP_CBZ],
		codec.DecimalToBinary(int64(target-index), 19),
		rt,
	)
	return
}

func (in CBZ) String() string {
	return fmt.Sprintf("CBZ %v, %v", in.Rt, in.Label)
}

// ERET returns from an exception.
type ERET struct{}

func (ERET) item() {}

func (ERET) Opcode() Opcode { return OP_ERET }

func (ERET) Encode(index int, labels LabelTable) (codec.Binary, error) {
	return word(OP_ERET,
		opcodeBinary[OP_ERET],
		codec.Ones(5),
		codec.Zero(6),
		codec.Ones(5),
		codec.Zero(5),
	), nil
}

func (ERET) String() string {
	return "ERET"
}

// BR branches to the address in Rn.
type BR struct {
	Rn Register
}

func (BR) item() {}

func (BR) Opcode() Opcode { return OP_BR }

func (in BR) Encode(index int, labels LabelTable) (bin codec.Binary, err error) {
	rn, err := in.Rn.Binary()
	if err != nil {
		return
	}

	bin = word(OP_BR,
		opcodeBinary[OP_BR],
		codec.Ones(5),
		codec.Zero(6),
		rn,
		codec.Zero(5),
	)
	return
}

func (in BR) String() string {
	return fmt.Sprintf("BR %v", in.Rn)
}

// MRS reads a system register into Rt.
type MRS struct {
	Rt     Register
	SysReg SystemRegister
}

func (MRS) item() {}

func (MRS) Opcode() Opcode { return OP_MRS }

func (in MRS) Encode(index int, labels LabelTable) (bin codec.Binary, err error) {
	rt, err := in.Rt.Binary()
	if err != nil {
		return
	}

	bin = word(OP_MRS,
		opcodeBinary[OP_MRS],
		codec.MustBinary("10"),  // o0
		codec.MustBinary("000"), // op1
		in.SysReg.Binary(),
		codec.Zero(4), // CRm
		codec.Zero(3), // op2
		rt,
	)
	return
}

func (in MRS) String() string {
	return fmt.Sprintf("MRS %v, %v", in.Rt, in.SysReg)
}

// NOP is encoded as ADD XZR, XZR, XZR.
type NOP struct{}

func (NOP) item() {}

func (NOP) Opcode() Opcode { return OP_NOP }

func (NOP) Encode(index int, labels LabelTable) (codec.Binary, error) {
	return RType{Op: OP_ADD, Rd: XZR, Rn: XZR, Rm: XZR}.Encode(index, labels)
}

func (NOP) String() string {
	return "NOP"
}

// Invalid is all zero bits, used to fill memory that must never execute.
type Invalid struct{}

func (Invalid) item() {}

func (Invalid) Opcode() Opcode { return OP_INVALID }

func (Invalid) Encode(index int, labels LabelTable) (codec.Binary, error) {
	return word(OP_INVALID, codec.Zero(32)), nil
}

func (Invalid) String() string {
	return "INVALID_INSTRUCTION"
}
