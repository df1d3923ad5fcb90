package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimiseFusesMods(t *testing.T) {
	ops := Optimise([]Op{Mod(1), Mod(1), Mod(-1)})
	require.Equal(t, []Op{Mod(1)}, ops)
}

func TestOptimiseFusesModIntoSetValue(t *testing.T) {
	ops := Optimise([]Op{SetValue(5), Mod(3)})
	require.Equal(t, []Op{SetValue(8)}, ops)
}

func TestOptimiseFusesMoves(t *testing.T) {
	ops := Optimise([]Op{Move(3), Move(-1)})
	require.Equal(t, []Op{Move(2)}, ops)
}

func TestOptimiseCollapsesClearLoop(t *testing.T) {
	ops := Optimise([]Op{Loop([]Op{Mod(-1)})})
	require.Equal(t, []Op{SetValue(0)}, ops)

	ops = Optimise([]Op{Loop([]Op{Mod(1)})})
	require.Equal(t, []Op{SetValue(0)}, ops)
}

func TestOptimiseFixedPointAcrossNestedClearLoop(t *testing.T) {
	// Mod(1) followed by a clear loop collapses the loop to
	// SetValue(0), which must then fuse with the preceding Mod at the
	// *parent* level; appendSetValue does this in the same pass.
	ops := Optimise([]Op{Mod(1), Loop([]Op{Mod(-1)})})
	require.Equal(t, []Op{SetValue(0)}, ops)
}

func TestOptimiseLeavesNonTrivialLoopAlone(t *testing.T) {
	body := []Op{Mod(1), Move(1)}
	ops := Optimise([]Op{Loop(body)})
	require.Equal(t, []Op{Loop(body)}, ops)
}

func TestOptimisePreservesIO(t *testing.T) {
	ops := Optimise([]Op{GetInput(), PrintOutput()})
	require.Equal(t, []Op{GetInput(), PrintOutput()}, ops)
}
