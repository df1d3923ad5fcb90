package tape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDualVectorPositiveAndNegativeAreIndependent(t *testing.T) {
	tp := NewDualVector(0)
	*tp.CellAt(0) = 1
	*tp.CellAt(5) = 2
	*tp.CellAt(-5) = 3

	require.Equal(t, byte(1), *tp.CellAt(0))
	require.Equal(t, byte(2), *tp.CellAt(5))
	require.Equal(t, byte(3), *tp.CellAt(-5))
}

func TestDualVectorGrowsOnDemand(t *testing.T) {
	tp := NewDualVector(0)
	require.NotPanics(t, func() {
		*tp.CellAt(1000) = 7
		*tp.CellAt(-1000) = 9
	})
	require.Equal(t, byte(7), *tp.CellAt(1000))
	require.Equal(t, byte(9), *tp.CellAt(-1000))
}

func TestDualVectorCallbackAddrIsStable(t *testing.T) {
	tp := NewDualVector(0)
	require.Equal(t, tp.CallbackAddr(), tp.CallbackAddr())
	require.NotZero(t, tp.CallbackAddr())
}
