package legv8

import (
	"fmt"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/legv8/codec"
)

// Assembler is a two pass assembler for LEGv8 programs.
type Assembler struct {
	Verbose bool       // If set, verbosely logs the assembler actions.
	Label   LabelTable // Label table of the last assembled program.
}

// Assemble encodes the program into instruction words.
//
// The first pass builds the label table, so branches may refer to labels
// defined later in the program. The second pass encodes every instruction at
// its index. The program is not modified.
func (asm *Assembler) Assemble(prog Program) (words []codec.Hex, err error) {
	asm.Label, err = prog.Labels()
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, label := range slices.Sorted(maps.Keys(asm.Label)) {
			log.Printf("label %v: %d", label, asm.Label[label])
		}
	}

	for index, in := range prog.Instructions() {
		var bin codec.Binary
		bin, err = in.Encode(index, asm.Label)
		if err != nil {
			return
		}

		var hex codec.Hex
		hex, err = codec.BinaryToHex(bin)
		if err != nil {
			// Every encoding is 32 bits.
			panic(err)
		}

		if asm.Verbose {
			log.Printf("%4d: %v %v", index, hex, in)
		}

		words = append(words, hex)
	}

	return
}

// Compile assembles the program into 32'h literals.
func (asm *Assembler) Compile(prog Program) (literals []string, err error) {
	words, err := asm.Assemble(prog)
	if err != nil {
		return
	}

	literals = make([]string, len(words))
	for n, hex := range words {
		literals[n] = Literal(hex)
	}

	return
}

// CompileWithVector compiles the program with the vector program placed at
// the exception vector.
func (asm *Assembler) CompileWithVector(prog, vector Program) (literals []string, err error) {
	laid, err := Layout(prog, vector)
	if err != nil {
		return
	}

	return asm.Compile(laid)
}

// Literal formats a 32-bit word as a sized hex literal.
func Literal(hex codec.Hex) string {
	return fmt.Sprintf("32'h%v", hex)
}

// Compile assembles the program into 32'h literals.
func Compile(prog Program) ([]string, error) {
	asm := &Assembler{}
	return asm.Compile(prog)
}

// CompileWithVector compiles the program with the vector program placed at
// the exception vector.
func CompileWithVector(prog, vector Program) ([]string, error) {
	asm := &Assembler{}
	return asm.CompileWithVector(prog, vector)
}
