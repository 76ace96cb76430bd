// Command lc3vm is a user-space emulator for the LC-3 educational
// architecture. It loads one or more object-file images and runs them to
// completion (TRAP HALT), to a fatal guest fault (RES/RTI/unknown opcode),
// or until interrupted.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"lc3vm/internal/lc3"
)

const usage = "usage: lc3vm [-dump] image-file [image-file ...]\n"

func main() {
	dump := flag.Bool("dump", false, "print the register file to stderr on exit")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	images := flag.Args()
	if len(images) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	console := lc3.NewConsole(os.Stdout)
	mem := lc3.NewMemory(console)

	for _, path := range images {
		if err := lc3.LoadImage(path, mem); err != nil {
			fmt.Fprintf(os.Stderr, "lc3vm: failed to load image %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	if err := console.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "lc3vm: failed to open console: %v\n", err)
		os.Exit(1)
	}
	defer console.Close()

	reg := lc3.NewRegisters()
	cpu := lc3.NewCPU(reg, mem, console)

	// A host-delivered interrupt restores terminal state before the process
	// exits, per spec.md §5/§6. Grounded on the signal-handling goroutine in
	// other_examples/ac74d441_lambdaclass-playground-vm-go__lc3.go.go, which
	// wires os/signal the same way for the same LC-3 core.
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	go func() {
		<-interrupted
		console.Close()
		if *dump {
			dumpRegisters(reg)
		}
		os.Exit(-2)
	}()

	err := cpu.Run()
	console.Close()

	if *dump {
		dumpRegisters(reg)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func dumpRegisters(reg *lc3.Registers) {
	fmt.Fprintf(os.Stderr, "PC=%04X COND=%03b", reg.PC, reg.Cond)
	for i, v := range reg.R {
		fmt.Fprintf(os.Stderr, " R%d=%04X", i, v)
	}
	fmt.Fprintln(os.Stderr)
}
