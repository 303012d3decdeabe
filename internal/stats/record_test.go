package stats

import (
	"testing"

	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	seed := Seed()

	require.Len(t, seed, 4)
	require.NoError(t, Validate(seed))

	assert.Equal(t, "1", seed[0].ID)
	assert.Equal(t, "Total Sales", seed[0].Title)
	assert.Equal(t, "$24.5K", seed[0].Value)
	assert.Equal(t, TrendDown, seed[2].Trend)

	// Each call returns a fresh slice.
	seed[0].Value = "changed"
	assert.Equal(t, "$24.5K", Seed()[0].Value)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		wantErr bool
	}{
		{"empty is valid", nil, false},
		{"seed is valid", Seed(), false},
		{"missing id", []Record{{ID: "1"}, {Title: "Orders"}}, true},
		{"blank id", []Record{{ID: "   "}}, true},
		{"duplicate id", []Record{{ID: "a"}, {ID: "b"}, {ID: "a"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.records)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInvalidArgument))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWithDefaults(t *testing.T) {
	r := Record{ID: "7"}.WithDefaults()

	assert.Equal(t, DefaultIcon, r.Icon)
	assert.Equal(t, DefaultIconColor, r.IconColor)
	assert.Equal(t, TrendUp, r.Trend)
	assert.Equal(t, "7", r.Title, "missing title falls back to the id")
	assert.Empty(t, r.TrendValue)

	down := Record{ID: "8", Trend: "DOWN", Icon: "people", IconColor: "#fff"}.WithDefaults()
	assert.Equal(t, TrendDown, down.Trend)
	assert.Equal(t, "people", down.Icon)
	assert.Equal(t, "#fff", down.IconColor)

	unknown := Record{ID: "9", Trend: "sideways"}.WithDefaults()
	assert.Equal(t, TrendUp, unknown.Trend)
}

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, "Orders", Record{ID: "3", Title: "Orders"}.DisplayTitle())
	assert.Equal(t, "3", Record{ID: "3"}.DisplayTitle())
}

func TestNormalize(t *testing.T) {
	in := []Record{{ID: " 1 ", Title: "Sales"}, {ID: "2"}}
	out, err := Normalize(in)
	require.NoError(t, err)

	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, DefaultIcon, out[1].Icon)
	assert.Equal(t, " 1 ", in[0].ID, "input must not be modified")
	assert.Empty(t, in[1].Icon)

	_, err = Normalize([]Record{{ID: "x"}, {ID: "x"}})
	assert.Error(t, err)
}

func TestWithValue(t *testing.T) {
	seed := Seed()
	updated := WithValue(seed, "1", "$25.2K")

	require.Len(t, updated, len(seed))
	assert.Equal(t, "$25.2K", updated[0].Value)
	assert.Equal(t, "$24.5K", seed[0].Value, "source slice is untouched")
	for i := 1; i < len(seed); i++ {
		assert.Equal(t, seed[i], updated[i], "record %d passes through unchanged", i)
	}

	none := WithValue(seed, "missing", "x")
	assert.Equal(t, seed, none)
}

func TestFindAndClone(t *testing.T) {
	seed := Seed()

	r, ok := Find(seed, "3")
	require.True(t, ok)
	assert.Equal(t, "Orders", r.Title)

	_, ok = Find(seed, "nope")
	assert.False(t, ok)

	c := Clone(seed)
	c[0].Title = "x"
	assert.Equal(t, "Total Sales", seed[0].Title)
	assert.Nil(t, Clone(nil))
}
