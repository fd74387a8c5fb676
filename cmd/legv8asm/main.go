// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command legv8asm compiles LEGv8 assembly into an instruction memory
// listing of 32'h literals.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tebeka/atexit"
	"github.com/xyproto/env/v2"
	"golang.org/x/term"

	"github.com/ezrec/legv8/legv8"
)

// readText reads a whole file, or stdin for "-".
func readText(name string) (text string, err error) {
	var data []byte
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	text = string(data)
	return
}

func main() {
	var compile string
	var isr string
	var output string
	var uppercase bool
	var image bool
	var verbose bool

	flag.StringVar(&compile, "c", "-", ".s file to compile")
	flag.StringVar(&isr, "isr", env.Str("LEGV8_ISR"), "Interrupt service routine .s file, placed at the exception vector")
	flag.StringVar(&output, "o", "-", "Listing output")
	flag.BoolVar(&uppercase, "x", env.Bool("LEGV8_UPPERCASE"), "Upper case hex digits")
	flag.BoolVar(&image, "b", false, "Write a big-endian binary image instead of a listing")
	flag.BoolVar(&verbose, "v", env.Bool("LEGV8_VERBOSE"), "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	code, err := readText(compile)
	if err != nil {
		atexit.Fatalf("%v: %v", compile, err)
	}

	var isrCode string
	if len(isr) != 0 {
		isrCode, err = readText(isr)
		if err != nil {
			atexit.Fatalf("%v: %v", isr, err)
		}
	}

	b := &legv8.Builder{Verbose: verbose, Uppercase: uppercase}
	result := b.Build(code, isrCode)
	if result.Err != nil {
		atexit.Fatalf("%v: %v", compile, result.Err)
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		atexit.Register(func() { file.Close() })
		ouf = file
	} else if image && term.IsTerminal(int(os.Stdout.Fd())) {
		atexit.Fatalf("%v: refusing to write a binary image to a terminal", os.Args[0])
	}

	if image {
		err = binary.Write(ouf, binary.BigEndian, result.Words)
	} else {
		_, err = fmt.Fprintln(ouf, result.Code)
	}
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}

	if verbose {
		log.Printf("%v: %d words", compile, result.RomSize)
	}

	atexit.Exit(0)
}
