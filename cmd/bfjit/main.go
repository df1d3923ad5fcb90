// Command bfjit runs a Brainfuck source file with a choice of
// interpreter or recompiler back-end and tape memory model.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/lcox74/bfjit/internal/cmdline"
	"github.com/lcox74/bfjit/internal/diag"
	"github.com/lcox74/bfjit/internal/runner"
)

func main() {
	opts, err := cmdline.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// glog registers its own -v int flag on the global FlagSet; we
	// never call flag.Parse() ourselves, so toggling it here by name
	// can't collide with cmdline's own boolean -v/--verbose.
	flag.Set("logtostderr", "true")
	if opts.Verbose {
		flag.Set("v", "1")
	}
	defer glog.Flush()

	src, err := cmdline.ReadSource(opts.FileName)
	if err != nil {
		glog.Fatalf("reading %s: %v", opts.FileName, err)
	}
	diag.DumpSource(src)

	if err := runner.Run(opts, src, os.Stdin, os.Stdout); err != nil {
		glog.Fatalf("%v", err)
	}
}
