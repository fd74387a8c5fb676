// Package legv8 implements a two-pass assembler for the LEGv8 teaching
// instruction set.
//
// Assembly text is parsed line by line into a Program of instructions and
// labels. The Assembler resolves labels to instruction indexes, encodes each
// instruction into a 32-bit word, and formats the words as 32'h literals
// suitable for a hardware description language array initializer.
//
// An interrupt service routine may be laid out at the fixed exception vector,
// instruction index VectorSlot, by padding the main program with NOPs.
package legv8
