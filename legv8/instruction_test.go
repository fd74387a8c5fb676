package legv8

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/legv8/codec"
)

func TestInstruction_Encode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		in   Instruction
		hex  codec.Hex
		text string
	}){
		{RType{OP_ADD, X0, X1, X2}, "8b020020", "ADD X0, X1, X2"},
		{RType{OP_SUB, X3, X4, X5}, "cb050083", "SUB X3, X4, X5"},
		{RType{OP_AND, X0, X1, X2}, "8a020020", "AND X0, X1, X2"},
		{RType{OP_ORR, X0, X1, X2}, "aa020020", "ORR X0, X1, X2"},
		{DType{OP_LDUR, X1, X2, 8}, "f8408041", "LDUR X1, [X2, #8]"},
		{DType{OP_STUR, X1, X2, -8}, "f81f8041", "STUR X1, [X2, #-8]"},
		{IType{OP_ADDI, X0, X1, 5}, "91001420", "ADDI X0, X1, #5"},
		{IType{OP_SUBI, X0, X0, 1}, "d1000400", "SUBI X0, X0, #1"},
		{ERET{}, "d69f03e0", "ERET"},
		{BR{X30}, "d61f03c0", "BR X30"},
		{MRS{X0, ESR}, "d5302000", "MRS X0, S2_0_C2_C0_0"},
		{MRS{X1, ELR}, "d5301001", "MRS X1, S2_0_C1_C0_0"},
		{MRS{X2, ERR}, "d5300002", "MRS X2, S2_0_C0_C0_0"},
		{NOP{}, "8b1f03ff", "NOP"},
		{Invalid{}, "00000000", "INVALID_INSTRUCTION"},
	}

	for _, entry := range table {
		bin, err := entry.in.Encode(0, LabelTable{})
		assert.NoError(err, entry.text)
		assert.Equal(32, bin.Width(), entry.text)

		hex, err := codec.BinaryToHex(bin)
		assert.NoError(err, entry.text)
		assert.Equal(entry.hex, hex, entry.text)
		assert.Equal(entry.text, entry.in.String())
	}
}

func TestInstruction_EncodeAdd(t *testing.T) {
	assert := assert.New(t)

	bin, err := RType{Op: OP_ADD, Rd: X0, Rn: X1, Rm: X2}.Encode(0, nil)
	assert.NoError(err)
	assert.Equal(codec.MustBinary("10001011000_00010_000000_00001_00000"), bin)
	assert.Equal(codec.MustBinary("100_0101_1000"), bin[:11])

	nop, err := NOP{}.Encode(7, nil)
	assert.NoError(err)
	add, err := RType{Op: OP_ADD, Rd: XZR, Rn: XZR, Rm: XZR}.Encode(7, nil)
	assert.NoError(err)
	assert.Equal(add, nop)

	bin, err = Invalid{}.Encode(0, nil)
	assert.NoError(err)
	assert.Equal(codec.Zero(32), bin)
}

func TestInstruction_EncodeCBZ(t *testing.T) {
	assert := assert.New(t)

	labels := LabelTable{"loop": 0, "end": 3}

	table := [](struct {
		in    CBZ
		index int
		hex   codec.Hex
	}){
		{CBZ{X0, "loop"}, 0, "b4000000"},
		{CBZ{X1, "end"}, 1, "b4000041"},
		{CBZ{X1, "loop"}, 1, "b4ffffe1"},
		{CBZ{XZR, "end"}, 3, "b400001f"},
	}

	for _, entry := range table {
		bin, err := entry.in.Encode(entry.index, labels)
		assert.NoError(err)
		hex, err := codec.BinaryToHex(bin)
		assert.NoError(err)
		assert.Equal(entry.hex, hex, fmt.Sprintf("%+v", entry))
	}

	offset, err := CBZ{X0, "loop"}.Encode(5, labels)
	assert.NoError(err)
	assert.Equal(int64(-5), offset[8:27].Signed())

	_, err = CBZ{X0, "nowhere"}.Encode(0, labels)
	assert.Equal(ErrLabelMissing("nowhere"), err)
}

func TestInstruction_EncodeInvalid(t *testing.T) {
	assert := assert.New(t)

	table := []Instruction{
		RType{OP_ADD, Register(32), X0, X0},
		DType{OP_LDUR, X0, Register(40), 0},
		IType{OP_ADDI, X0, Register(-1), 0},
		CBZ{Register(33), "here"},
		BR{Register(99)},
		MRS{Register(32), ERR},
	}

	for _, in := range table {
		_, err := in.Encode(0, LabelTable{"here": 0})
		assert.True(errors.Is(err, ErrRegisterInvalid), in.String())
	}

	_, err := RType{Op: OP_CBZ}.Encode(0, nil)
	assert.Equal(ErrInstructionInvalid, err)
	_, err = DType{Op: OP_ADD}.Encode(0, nil)
	assert.Equal(ErrInstructionInvalid, err)
	_, err = IType{Op: OP_SUB}.Encode(0, nil)
	assert.Equal(ErrInstructionInvalid, err)
}

func TestInstruction_Opcode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(OP_SUB, RType{Op: OP_SUB}.Opcode())
	assert.Equal(OP_CBZ, CBZ{}.Opcode())
	assert.Equal(OP_NOP, NOP{}.Opcode())
	assert.Equal(OP_INVALID, Invalid{}.Opcode())
	assert.Equal("INVALID_INSTRUCTION", OP_INVALID.String())
	assert.Equal("Opcode(99)", Opcode(99).String())
}

func TestWord_Width(t *testing.T) {
	assert := assert.New(t)

	assert.PanicsWithValue(ErrWordWidth{Op: OP_ADD, Width: 31}, func() {
		word(OP_ADD, codec.Zero(31))
	})
}
