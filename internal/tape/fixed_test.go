package tape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedCenterIndex(t *testing.T) {
	tp := NewFixed(10)
	*tp.CellAt(0) = 5
	require.Equal(t, byte(5), *tp.CellAt(0))
}

func TestFixedDefaultSizeWhenNonPositive(t *testing.T) {
	tp := NewFixed(0)
	require.Len(t, tp.data, DefaultFixedSize)
}

func TestFixedCellAtCheckedReportsOutOfRange(t *testing.T) {
	tp := NewFixed(4)
	_, err := tp.CellAtChecked(1000)
	require.Error(t, err)
	var oorErr *OutOfRangeError
	require.ErrorAs(t, err, &oorErr)
}

func TestFixedCellAtPanicsOutOfRange(t *testing.T) {
	tp := NewFixed(4)
	require.Panics(t, func() {
		tp.CellAt(1000)
	})
}

func TestFixedEmitMoveIsLeaOnly(t *testing.T) {
	tp := NewFixed(4)
	code := tp.EmitMove(3)
	require.Equal(t, []byte{0x48, 0x8d, 0x80, 0x03, 0x00, 0x00, 0x00}, code)
}
