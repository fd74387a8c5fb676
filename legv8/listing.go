package legv8

import (
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/legv8/codec"
)

const listingIndent = "      "

// Result is a compiled listing, or the message of the error that prevented
// compilation.
type Result struct {
	Code    string   // Array initializer, or the error message.
	Words   []uint32 // Instruction words.
	RomSize int      // Number of instruction words.
	Err     error    // Error, if compilation failed.
}

// Builder compiles program and interrupt service routine text into a
// listing.
type Builder struct {
	Verbose   bool // If set, verbosely logs the parser and assembler actions.
	Uppercase bool // If set, hex digits are upper case.
}

// Build parses and compiles the program text. If isr is not blank, it is
// laid out at the exception vector.
func (b *Builder) Build(code, isr string) (result Result) {
	hexes, err := b.assemble(code, isr)
	if err != nil {
		if b.Verbose {
			log.Printf("build: %v", err)
		}
		result = Result{
			Code: fmt.Sprintf("\n%v%v\n", listingIndent, err),
			Err:  err,
		}
		return
	}

	literals := make([]string, len(hexes))
	words := make([]uint32, len(hexes))
	for n, hex := range hexes {
		words[n], err = hex.Uint32()
		if err != nil {
			panic(err)
		}
		if b.Uppercase {
			hex = hex.Upper()
		}
		literals[n] = Literal(hex)
	}

	result = Result{
		Code:    fmt.Sprintf("'{\n%v%v\n   };", listingIndent, strings.Join(literals, ",\n"+listingIndent)),
		Words:   words,
		RomSize: len(literals),
	}
	return
}

// assemble parses both texts and assembles the laid out program.
func (b *Builder) assemble(code, isr string) (words []codec.Hex, err error) {
	parser := &Parser{Verbose: b.Verbose}
	prog, err := parser.ParseText(code)
	if err != nil {
		return
	}

	if strings.TrimSpace(isr) != "" {
		var vector Program
		vector, err = parser.ParseText(isr)
		if err != nil {
			return
		}
		prog, err = Layout(prog, vector)
		if err != nil {
			return
		}
	}

	asm := &Assembler{Verbose: b.Verbose}
	words, err = asm.Assemble(prog)
	return
}

// Build parses and compiles the program text with lower case hex digits.
// If isr is not blank, it is laid out at the exception vector.
func Build(code, isr string) Result {
	b := &Builder{}
	return b.Build(code, isr)
}
