package legv8

import (
	"bufio"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":      "0",
	"VECTOR_SLOT": strconv.Itoa(VectorSlot),
}

// Parser converts LEGv8 assembly text into a Program.
//
// Each line holds at most one instruction, optionally preceded by one or
// more `label:` declarations. Lines starting with `//` are comments, as is
// any text following `//` on a line.
//
// The `.equ NAME VALUE` directive defines an integer equate, and `$(expr)`
// is replaced by the value of the Starlark expression expr, evaluated with
// the equates in scope.
type Parser struct {
	Verbose bool              // If set, verbosely logs the parser actions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (p *Parser) Predefine(equ string, value string) {
	if p.predefine == nil {
		p.predefine = map[string]string{equ: value}
	} else {
		p.predefine[equ] = value
	}
}

const reRegister = `(X\d{1,2}|XZR)`

var (
	reLabel      = regexp.MustCompile(`^(\w+):`)
	reName       = regexp.MustCompile(`^\w+$`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
)

// rule is the syntax of a single instruction form.
type rule struct {
	re    *regexp.Regexp
	err   error // Reported when operands are invalid.
	parse func(match []string) (Instruction, error)
}

var rules = []rule{
	{
		re:  regexp.MustCompile(`^(ADD|SUB|AND|ORR)\s+` + reRegister + `,\s*` + reRegister + `,\s*` + reRegister + `$`),
		err: ErrRTypeInvalid,
		parse: func(match []string) (in Instruction, err error) {
			regs, err := parseRegisters(match[2:5]...)
			if err != nil {
				return
			}
			in = RType{Op: mnemonic[match[1]], Rd: regs[0], Rn: regs[1], Rm: regs[2]}
			return
		},
	},
	{
		re:  regexp.MustCompile(`^(LDUR|STUR)\s+` + reRegister + `,\s*\[\s*` + reRegister + `,\s*#(-?\d+)\s*\]$`),
		err: ErrDTypeInvalid,
		parse: func(match []string) (in Instruction, err error) {
			regs, err := parseRegisters(match[2:4]...)
			if err != nil {
				return
			}
			offset, err := parseNumber(match[4])
			if err != nil {
				return
			}
			in = DType{Op: mnemonic[match[1]], Rt: regs[0], Rn: regs[1], Offset: offset}
			return
		},
	},
	{
		re:  regexp.MustCompile(`^(ADDI|SUBI)\s+` + reRegister + `,\s*` + reRegister + `,\s*#(-?\d+)$`),
		err: ErrITypeInvalid,
		parse: func(match []string) (in Instruction, err error) {
			regs, err := parseRegisters(match[2:4]...)
			if err != nil {
				return
			}
			imm, err := parseNumber(match[4])
			if err != nil {
				return
			}
			in = IType{Op: mnemonic[match[1]], Rd: regs[0], Rn: regs[1], Imm: imm}
			return
		},
	},
	{
		re:  regexp.MustCompile(`^CBZ\s+` + reRegister + `,\s*(\w+)$`),
		err: ErrCbzInvalid,
		parse: func(match []string) (in Instruction, err error) {
			rt, err := ParseRegister(match[1])
			if err != nil {
				return
			}
			in = CBZ{Rt: rt, Label: match[2]}
			return
		},
	},
	{
		re:  regexp.MustCompile(`^BR\s+` + reRegister + `$`),
		err: ErrBrInvalid,
		parse: func(match []string) (in Instruction, err error) {
			rn, err := ParseRegister(match[1])
			if err != nil {
				return
			}
			in = BR{Rn: rn}
			return
		},
	},
	{
		re:  regexp.MustCompile(`^MRS\s+` + reRegister + `,\s*(\w+)$`),
		err: ErrMrsInvalid,
		parse: func(match []string) (in Instruction, err error) {
			rt, err := ParseRegister(match[1])
			if err != nil {
				return
			}
			sr, ok := ParseSystemRegister(match[2])
			if !ok {
				err = ErrMrsInvalid
				return
			}
			in = MRS{Rt: rt, SysReg: sr}
			return
		},
	},
	{
		re:    regexp.MustCompile(`^ERET$`),
		parse: func([]string) (Instruction, error) { return ERET{}, nil },
	},
	{
		re:    regexp.MustCompile(`^NOP$`),
		parse: func([]string) (Instruction, error) { return NOP{}, nil },
	},
	{
		re:    regexp.MustCompile(`^INVALID_INSTRUCTION$`),
		parse: func([]string) (Instruction, error) { return Invalid{}, nil },
	},
}

// mnemonic maps multi-opcode instruction forms to their opcode.
var mnemonic = map[string]Opcode{
	"STUR": OP_STUR,
	"LDUR": OP_LDUR,
	"ADD":  OP_ADD,
	"SUB":  OP_SUB,
	"AND":  OP_AND,
	"ORR":  OP_ORR,
	"ADDI": OP_ADDI,
	"SUBI": OP_SUBI,
}

// parseRegisters parses a list of register names.
func parseRegisters(names ...string) (regs []Register, err error) {
	regs = make([]Register, len(names))
	for n, name := range names {
		regs[n], err = ParseRegister(name)
		if err != nil {
			return
		}
	}
	return
}

// parseNumber parses a signed decimal immediate.
func parseNumber(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (p *Parser) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range p.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseInstruction parses a line holding a single instruction.
func (p *Parser) parseInstruction(line string) (in Instruction, err error) {
	for _, r := range rules {
		match := r.re.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		in, err = r.parse(match)
		if err != nil && r.err != nil {
			if _, ok := err.(ErrParseNumber); !ok {
				err = r.err
			}
		}
		return
	}

	err = ErrInstructionInvalid
	return
}

// parseLine parses a single line into labels and an instruction.
func (p *Parser) parseLine(line string, lineno int) (items []Item, err error) {
	// Set line number.
	p.Equate["LINENO"] = strconv.Itoa(lineno)

	before, _, _ := strings.Cut(line, "//")
	line = strings.TrimSpace(before)

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := p.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.FormatInt(value, 10)
	})
	if err != nil {
		return
	}

	// .equ CONST VALUE
	words := strings.Fields(line)
	if len(words) > 0 && words[0] == ".equ" {
		if len(words) != 3 || !reName.MatchString(words[1]) {
			err = ErrEquateSyntax
			return
		}
		_, ok := p.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		_, err = strconv.ParseInt(words[2], 0, 64)
		if err != nil {
			err = ErrParseNumber(words[2])
			return
		}
		p.Equate[words[1]] = words[2]
		return
	}

	for {
		match := reLabel.FindStringSubmatch(line)
		if match == nil {
			break
		}
		items = append(items, Label(match[1]))
		line = strings.TrimSpace(line[len(match[0]):])
	}

	if len(line) == 0 {
		return
	}

	in, err := p.parseInstruction(line)
	if err != nil {
		return
	}

	items = append(items, in)
	return
}

// Parse parses an input stream into a Program.
func (p *Parser) Parse(input io.Reader) (prog Program, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
		}
	}()

	p.Equate = maps.Clone(sysEquate)
	maps.Copy(p.Equate, p.predefine)

	prog = Program{}
	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		var items []Item
		items, err = p.parseLine(text, lineno)
		if err != nil {
			prog = nil
			return
		}

		prog = append(prog, items...)
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}

// ParseText parses assembly text into a Program.
func (p *Parser) ParseText(text string) (Program, error) {
	return p.Parse(strings.NewReader(text))
}

// ParseText parses assembly text into a Program.
func ParseText(text string) (Program, error) {
	p := &Parser{}
	return p.ParseText(text)
}
