package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLowerFlatProgram(t *testing.T) {
	ops, err := Lower(Tokenize([]byte("+-><.,")))
	require.NoError(t, err)
	require.Equal(t, []Op{
		Mod(1), Mod(-1), Move(1), Move(-1), PrintOutput(), GetInput(),
	}, ops)
}

func TestLowerNestedLoop(t *testing.T) {
	ops, err := Lower(Tokenize([]byte("+[->+<]")))
	require.NoError(t, err)
	require.Equal(t, []Op{
		Mod(1),
		Loop([]Op{Mod(-1), Move(1), Mod(1), Move(-1)}),
	}, ops)
}

func TestLowerUnmatchedOpenBracket(t *testing.T) {
	_, err := Lower(Tokenize([]byte("[+")))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestLowerUnmatchedCloseBracket(t *testing.T) {
	_, err := Lower(Tokenize([]byte("+]")))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}
