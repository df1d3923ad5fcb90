package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeSkipsComments(t *testing.T) {
	toks := Tokenize([]byte("+>comment<-"))
	var kinds []TokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []TokenKind{
		TokAdd, TokShiftRight, TokShiftLeft, TokSub, TokEOF,
	}, kinds)
}

func TestTokenizeHandlesEveryByteValue(t *testing.T) {
	src := make([]byte, 256)
	for i := range src {
		src[i] = byte(i)
	}
	require.NotPanics(t, func() {
		Tokenize(src)
	})
}

func TestTokenizeTracksLineAndColumn(t *testing.T) {
	toks := Tokenize([]byte("+\n+"))
	require.Len(t, toks, 3)
	require.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, toks[0].Pos)
	require.Equal(t, Position{Offset: 2, Line: 2, Column: 1}, toks[1].Pos)
}
