// Package cmdline parses bfjit's command line: a source file name plus
// an executor and memory-type selection, using flag.Value
// implementations so -e/--executor and -m/--memory_type enforce their
// small enumerations instead of accepting an arbitrary string.
package cmdline

import (
	"flag"
	"fmt"
	"os"
)

// Executor selects which back-end runs the program.
type Executor int

const (
	ExecutorSimple Executor = iota
	ExecutorWalk
	ExecutorJIT
)

// MemoryType selects the tape implementation.
type MemoryType int

const (
	MemoryFixed MemoryType = iota
	MemoryDual
	MemorySingle
)

// Options is the fully parsed command line.
type Options struct {
	FileName            string
	Executor            Executor
	MemoryType          MemoryType
	MemorySize          int // 0 means "unset"
	DisableOptimization bool
	Verbose             bool
}

// executorValue implements flag.Value for -e/--executor (oi|ni|r).
type executorValue Executor

func (e *executorValue) String() string {
	switch Executor(*e) {
	case ExecutorSimple:
		return "oi"
	case ExecutorWalk:
		return "ni"
	case ExecutorJIT:
		return "r"
	default:
		return "?"
	}
}

func (e *executorValue) Set(s string) error {
	switch s {
	case "oi":
		*e = executorValue(ExecutorSimple)
	case "ni":
		*e = executorValue(ExecutorWalk)
	case "r":
		*e = executorValue(ExecutorJIT)
	default:
		return fmt.Errorf("error parsing executor string %q (want oi, ni or r)", s)
	}
	return nil
}

// memoryValue implements flag.Value for -m/--memory_type (ua|da|sa).
type memoryValue MemoryType

func (m *memoryValue) String() string {
	switch MemoryType(*m) {
	case MemoryFixed:
		return "ua"
	case MemoryDual:
		return "da"
	case MemorySingle:
		return "sa"
	default:
		return "?"
	}
}

func (m *memoryValue) Set(s string) error {
	switch s {
	case "ua":
		*m = memoryValue(MemoryFixed)
	case "da":
		*m = memoryValue(MemoryDual)
	case "sa":
		*m = memoryValue(MemorySingle)
	default:
		return fmt.Errorf("error parsing memory type %q (want ua, da or sa)", s)
	}
	return nil
}

// Parse parses args (typically os.Args[1:]) into Options.
func Parse(args []string) (*Options, error) {
	fs := flag.NewFlagSet("bfjit", flag.ContinueOnError)

	exec := executorValue(ExecutorJIT)
	mem := memoryValue(MemoryFixed)
	var memorySize int
	var disableOpt bool
	var verbose bool

	fs.Var(&exec, "e", "executor: oi (simple), ni (tree-walk) or r (recompiler)")
	fs.Var(&exec, "executor", "executor: oi (simple), ni (tree-walk) or r (recompiler)")
	fs.Var(&mem, "m", "memory type: ua (fixed array), da (dual array) or sa (single array)")
	fs.Var(&mem, "memory_type", "memory type: ua (fixed array), da (dual array) or sa (single array)")
	fs.IntVar(&memorySize, "memory_size", 0, "custom tape length; mainly affects the fixed array memory type")
	fs.BoolVar(&disableOpt, "disable_optimization", false, "disable the peephole optimizer")
	fs.BoolVar(&verbose, "v", false, "print IR, emitted code and final tape state")
	fs.BoolVar(&verbose, "verbose", false, "print IR, emitted code and final tape state")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one source file argument, got %d", fs.NArg())
	}

	return &Options{
		FileName:            fs.Arg(0),
		Executor:            Executor(exec),
		MemoryType:          MemoryType(mem),
		MemorySize:          memorySize,
		DisableOptimization: disableOpt,
		Verbose:             verbose,
	}, nil
}

// ReadSource reads the raw bytes of a Brainfuck source file. Unlike
// the tape's cells, source text is read as raw bytes, not validated
// UTF-8: every non-command byte is a comment regardless of encoding.
func ReadSource(path string) ([]byte, error) {
	return os.ReadFile(path)
}
