package legv8

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/legv8/internal"
)

// VectorSlot is the instruction index of the exception vector. It is fixed
// by the instruction memory layout of the target hardware.
const VectorSlot = 54

// Label names the index of the instruction that follows it.
type Label string

func (Label) item() {}

// Program is an ordered list of instructions and labels.
type Program []Item

// LabelTable maps label names to instruction indexes.
type LabelTable map[string]int

// Instructions returns an iterator over the instructions of the program,
// with their instruction index. Labels are skipped.
func (prog Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(index int, in Instruction) bool) {
		index := 0
		for _, item := range prog {
			in, ok := item.(Instruction)
			if !ok {
				continue
			}
			if !yield(index, in) {
				return
			}
			index++
		}
	}
}

// Count returns the number of instructions in the program.
func (prog Program) Count() (count int) {
	for range prog.Instructions() {
		count++
	}
	return
}

// Labels builds the label table of the program.
func (prog Program) Labels() (labels LabelTable, err error) {
	labels = make(LabelTable)
	index := 0
	for _, item := range prog {
		switch it := item.(type) {
		case Label:
			_, ok := labels[string(it)]
			if ok {
				err = ErrLabelDuplicate(it)
				return
			}
			labels[string(it)] = index
		case Instruction:
			index++
		}
	}
	return
}

// nops returns an iterator of count NOP instructions.
func nops(count int) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for range count {
			if !yield(NOP{}) {
				return
			}
		}
	}
}

// Layout places the vector program at the exception vector, padding prog
// with NOPs up to VectorSlot. The programs share a single label namespace.
func Layout(prog, vector Program) (laid Program, err error) {
	count := prog.Count()
	if count >= VectorSlot {
		err = ErrVectorOverflow
		return
	}

	laid = slices.Collect(internal.IterSeqConcat(
		slices.Values(prog),
		nops(VectorSlot-count),
		slices.Values(vector),
	))

	return
}

// Format renders a Program back into assembly text, one statement per line.
func (prog Program) Format() string {
	var sb strings.Builder
	for _, item := range prog {
		switch it := item.(type) {
		case Label:
			fmt.Fprintf(&sb, "%v:\n", string(it))
		case Instruction:
			fmt.Fprintf(&sb, "    %v\n", it)
		}
	}
	return sb.String()
}
