package ccl_test

import (
	"testing"

	"github.com/katalvlaran/lvlabel/ccl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabels_BadShape(t *testing.T) {
	for _, sh := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := ccl.NewLabels[int32](sh[0], sh[1])
		assert.ErrorIs(t, err, ccl.ErrBadShape)
		assert.ErrorIs(t, err, ccl.ErrInvalidArgument)
	}
}

func TestLabels_AtSet(t *testing.T) {
	m, err := ccl.NewLabels[int32](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(5), v)
	assert.True(t, m.Foreground(1, 2))
	assert.False(t, m.Foreground(0, 0))

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, ccl.ErrOutOfRange)
	assert.ErrorContains(t, err, "Labels.At(2,0)")
	assert.ErrorIs(t, m.Set(0, -1, 1), ccl.ErrOutOfRange)
}

func TestLabels_RowCloneString(t *testing.T) {
	m, err := ccl.LabelsFrom(2, 2, []int32{1, 0, 0, 2})
	require.NoError(t, err)

	assert.Equal(t, []int32{0, 2}, m.Row(1))
	assert.Nil(t, m.Row(2))
	assert.Equal(t, "[1, 0]\n[0, 2]\n", m.String())

	c := m.Clone()
	require.True(t, c.Equal(m))
	require.NoError(t, c.Set(0, 0, 7))
	v, _ := m.At(0, 0)
	assert.Equal(t, int32(1), v, "clone is independent")
	assert.False(t, c.Equal(m))

	_, err = ccl.LabelsFrom(2, 2, []int32{1, 2, 3})
	assert.ErrorIs(t, err, ccl.ErrDimensionMismatch)
}

func TestLabels_Reset(t *testing.T) {
	m, err := ccl.LabelsFrom(1, 4, []uint8{1, 2, 3, 4})
	require.NoError(t, err)

	require.NoError(t, m.Reset(2, 2))
	assert.Equal(t, []uint8{0, 0, 0, 0}, m.Data())
	require.NoError(t, m.Reset(3, 3))
	assert.Len(t, m.Data(), 9)
	assert.ErrorIs(t, m.Reset(0, 3), ccl.ErrBadShape)
	assert.Equal(t, 3, m.Rows(), "failed Reset leaves the grid alone")
}
