package grid

import (
	"testing"

	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestLayout_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		columns  int
		wantRows int
	}{
		{"single column", 4, 1, 4},
		{"even split", 4, 2, 2},
		{"short last row", 5, 2, 3},
		{"more columns than items", 3, 4, 1},
		{"exact fit wide", 8, 4, 2},
		{"one item", 1, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := seq(tt.items)
			rows, err := Layout(items, tt.columns)
			require.NoError(t, err)

			assert.Len(t, rows, tt.wantRows)
			assert.Equal(t, tt.wantRows, RowCount(tt.items, tt.columns))
			for i, row := range rows {
				assert.Len(t, row, tt.columns, "row %d should have exactly %d slots", i, tt.columns)
			}

			// Row-major concatenation of filled slots reproduces the input.
			assert.Equal(t, items, Items(rows))
		})
	}
}

func TestLayout_PadsFinalRow(t *testing.T) {
	rows, err := Layout([]string{"a", "b", "c"}, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	v, ok := rows[1][0].Value()
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	assert.True(t, rows[1][1].Empty())
	v, ok = rows[1][1].Value()
	assert.False(t, ok)
	assert.Equal(t, "", v, "placeholders carry no content")
}

func TestLayout_Empty(t *testing.T) {
	rows, err := Layout([]int{}, 3)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	rows, err = Layout[int](nil, 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLayout_RejectsNonPositiveColumns(t *testing.T) {
	for _, cols := range []int{0, -1, -10} {
		rows, err := Layout(seq(3), cols)
		require.Error(t, err)
		assert.Nil(t, rows)
		assert.True(t, errors.IsCode(err, errors.ErrInvalidArgument), "columns=%d should be an invalid argument", cols)
	}
}

func TestLayout_DoesNotAliasInput(t *testing.T) {
	items := []int{1, 2, 3}
	rows, err := Layout(items, 2)
	require.NoError(t, err)

	items[0] = 99
	v, _ := rows[0][0].Value()
	assert.Equal(t, 1, v)
}

func TestLayout_ManyShapesPreserveOrder(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for cols := 1; cols <= 5; cols++ {
			rows, err := Layout(seq(n), cols)
			require.NoError(t, err)
			assert.Len(t, rows, (n+cols-1)/cols)
			got := Items(rows)
			if n == 0 {
				assert.Empty(t, got)
				continue
			}
			assert.Equal(t, seq(n), got, "n=%d cols=%d", n, cols)
		}
	}
}

func TestRowCount(t *testing.T) {
	assert.Equal(t, 0, RowCount(0, 3))
	assert.Equal(t, 0, RowCount(5, 0))
	assert.Equal(t, 3, RowCount(5, 2))
	assert.Equal(t, 1, RowCount(4, 4))
}

func TestPosition(t *testing.T) {
	row, col := Position(5, 2)
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)

	row, col = Position(3, 0)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
}
