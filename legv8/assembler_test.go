package legv8

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/legv8/codec"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	words, err := asm.Assemble(Program{})
	assert.NoError(err)
	assert.Equal(0, len(words))
	assert.Equal(LabelTable{}, asm.Label)

	literals, err := asm.Compile(Program{RType{OP_ADD, X0, X1, X2}})
	assert.NoError(err)
	assert.Equal([]string{"32'h8b020020"}, literals)
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	literals, err := asm.Compile(Program{Label("loop"), CBZ{X0, "loop"}})
	assert.NoError(err)
	assert.Equal([]string{"32'hb4000000"}, literals)
	assert.Equal(LabelTable{"loop": 0}, asm.Label)

	// Forward reference.
	prog := Program{
		CBZ{X0, "end"},
		NOP{},
		Label("end"),
		Invalid{},
	}
	original := slices.Clone(prog)

	words, err := asm.Assemble(prog)
	assert.NoError(err)
	assert.Equal([]codec.Hex{"b4000040", "8b1f03ff", "00000000"}, words)
	assert.Equal(original, prog)

	// Identical input, identical output.
	again, err := asm.Assemble(prog)
	assert.NoError(err)
	assert.Equal(words, again)
}

func TestAssemblerErr(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Compile(Program{Label("dup"), NOP{}, CBZ{X0, "missing"}, Label("dup")})
	assert.Equal(ErrLabelDuplicate("dup"), err)

	_, err = asm.Compile(Program{NOP{}, CBZ{X0, "missing"}})
	assert.Equal(ErrLabelMissing("missing"), err)

	_, err = asm.Compile(Program{BR{Register(31 + 1)}})
	assert.True(errors.Is(err, ErrRegisterInvalid))
}

func TestAssemblerVector(t *testing.T) {
	assert := assert.New(t)

	vector := Program{Label("isr"), ERET{}}

	prog := append(repeatNop(VectorSlot-2), Label("last"), CBZ{X0, "isr"})
	literals, err := CompileWithVector(prog, vector)
	assert.NoError(err)
	assert.Equal(VectorSlot+1, len(literals))
	assert.Equal("32'hb4000040", literals[VectorSlot-2]) // CBZ X0, +2
	assert.Equal("32'h8b1f03ff", literals[VectorSlot-1])
	assert.Equal("32'hd69f03e0", literals[VectorSlot])
	for _, literal := range literals[:VectorSlot-2] {
		assert.Equal("32'h8b1f03ff", literal)
	}

	_, err = CompileWithVector(repeatNop(VectorSlot), vector)
	assert.True(errors.Is(err, ErrVectorOverflow))

	// Labels are shared between the program and the vector.
	_, err = CompileWithVector(Program{Label("isr"), NOP{}}, vector)
	assert.Equal(ErrLabelDuplicate("isr"), err)
}

func TestCompile(t *testing.T) {
	assert := assert.New(t)

	literals, err := Compile(Program{
		Label("top"),
		DType{OP_LDUR, X1, X2, 8},
		IType{OP_SUBI, X1, X1, 1},
		CBZ{X1, "done"},
		CBZ{XZR, "top"},
		Label("done"),
		DType{OP_STUR, X1, X2, -8},
	})
	assert.NoError(err)
	assert.Equal([]string{
		"32'hf8408041",
		"32'hd1000421",
		"32'hb4000041",
		"32'hb4ffffbf",
		"32'hf81f8041",
	}, literals)
}
