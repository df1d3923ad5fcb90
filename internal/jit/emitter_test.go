package jit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lcox74/bfjit/internal/core"
	"github.com/lcox74/bfjit/internal/tape"
)

func TestEmitSeqModAndSetValue(t *testing.T) {
	tp := tape.NewFixed(4)
	code, err := emitSeq([]core.Op{core.Mod(3), core.SetValue(9)}, tp)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x80, 0xc2, 0x03, // add dl, 3
		0xb2, 0x09, // mov dl, 9
	}, code)
}

func TestEmitSeqMoveOnFixedTape(t *testing.T) {
	tp := tape.NewFixed(4)
	code, err := emitSeq([]core.Op{core.Move(2)}, tp)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x88, 0x10, // mov [rax], dl
		0x48, 0x8d, 0x80, 0x02, 0x00, 0x00, 0x00, // lea rax, [rax+2]
		0x8a, 0x10, // mov dl, [rax]
	}, code)
}

func TestEmitLoopDisplacements(t *testing.T) {
	tp := tape.NewFixed(4)
	// Body is a single Move; emitLoop is exercised directly here to pin
	// down the raw displacement arithmetic for a body of known length.
	body := []core.Op{core.Move(1)}
	bodyBytes, err := emitSeq(body, tp)
	require.NoError(t, err)
	b := len(bodyBytes)

	loopBytes, err := emitLoop(body, tp)
	require.NoError(t, err)

	wantForward := int32(b + jmpSize)
	wantBackward := -int32(b + jmpSize + cmpJeLen)

	require.Equal(t, byte(0x80), loopBytes[0]) // cmp dl, 0
	require.Equal(t, byte(0xfa), loopBytes[1])
	require.Equal(t, byte(0x00), loopBytes[2])
	require.Equal(t, byte(0x0f), loopBytes[3]) // je rel32
	require.Equal(t, byte(0x84), loopBytes[4])

	gotForward := int32(leUint32(loopBytes[5:9]))
	require.Equal(t, wantForward, gotForward)

	jmpOffset := cmpJeLen + b
	require.Equal(t, byte(0xe9), loopBytes[jmpOffset])
	gotBackward := int32(leUint32(loopBytes[jmpOffset+1 : jmpOffset+5]))
	require.Equal(t, wantBackward, gotBackward)

	require.Len(t, loopBytes, cmpJeLen+b+jmpSize)
}

func TestGeneratePrependsPrologueAndAppendsEpilogue(t *testing.T) {
	tp := tape.NewFixed(4)
	code, err := Generate([]core.Op{core.Mod(1)}, tp)
	require.NoError(t, err)
	require.Equal(t, byte(0xc3), code[len(code)-1]) // ret
	// Epilogue's flush immediately precedes ret.
	require.Equal(t, []byte{0x88, 0x10, 0xc3}, code[len(code)-3:])
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
