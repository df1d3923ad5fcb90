package simple

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lcox74/bfjit/internal/tape"
)

func run(t *testing.T, src string, input string) string {
	t.Helper()
	var out bytes.Buffer
	in := New(tape.NewFixed(0), WithInput(strings.NewReader(input)), WithOutput(&out))
	require.NoError(t, in.Run([]byte(src)))
	return out.String()
}

func TestSimpleHelloWorld(t *testing.T) {
	const hello = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."
	require.Equal(t, "Hello World!\n", run(t, hello, ""))
}

func TestSimpleEchoesInput(t *testing.T) {
	require.Equal(t, "A", run(t, ",.", "A"))
}

func TestSimpleIgnoresComments(t *testing.T) {
	require.Equal(t, "A", run(t, "this is a comment , . also a comment", "A"))
}

func TestSimpleUnmatchedBracket(t *testing.T) {
	in := New(tape.NewFixed(0))
	err := in.Run([]byte("[+"))
	require.Error(t, err)
	var uberr *UnmatchedBracketError
	require.ErrorAs(t, err, &uberr)
}
