package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lcox74/bfjit/internal/cmdline"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

// TestHelloWorldAcrossExecutors exercises spec's cross-back-end
// consistency requirement directly: every executor/memory combination
// on the same program must print identical bytes.
func TestHelloWorldAcrossExecutors(t *testing.T) {
	executors := []cmdline.Executor{cmdline.ExecutorSimple, cmdline.ExecutorWalk, cmdline.ExecutorJIT}
	memories := []cmdline.MemoryType{cmdline.MemoryFixed, cmdline.MemoryDual, cmdline.MemorySingle}

	for _, ex := range executors {
		for _, mem := range memories {
			opts := &cmdline.Options{Executor: ex, MemoryType: mem}
			var out bytes.Buffer
			err := Run(opts, []byte(helloWorld), strings.NewReader(""), &out)
			require.NoError(t, err)
			require.Equal(t, "Hello World!\n", out.String())
		}
	}
}

func TestDisableOptimizationStillProducesCorrectOutput(t *testing.T) {
	opts := &cmdline.Options{
		Executor:            cmdline.ExecutorWalk,
		MemoryType:          cmdline.MemoryFixed,
		DisableOptimization: true,
	}
	var out bytes.Buffer
	err := Run(opts, []byte(helloWorld), strings.NewReader(""), &out)
	require.NoError(t, err)
	require.Equal(t, "Hello World!\n", out.String())
}
