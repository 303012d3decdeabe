package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/responsive"
	"github.com/rileyhilliard/dash/internal/stats"
)

func TestLayoutFor(t *testing.T) {
	tests := []struct {
		name        string
		dims        responsive.Dimensions
		class       responsive.DeviceClass
		orientation responsive.Orientation
		columns     int
		rows        int
	}{
		{"narrow portrait", responsive.Dimensions{Width: 60, Height: 80}, responsive.Handset, responsive.Portrait, 1, 4},
		{"default terminal", responsive.Dimensions{Width: 80, Height: 24}, responsive.Handset, responsive.Landscape, 2, 2},
		{"wide landscape", responsive.Dimensions{Width: 120, Height: 40}, responsive.Tablet, responsive.Landscape, 4, 1},
		{"wide portrait", responsive.Dimensions{Width: 120, Height: 200}, responsive.Tablet, responsive.Portrait, 2, 2},
		{"square is portrait", responsive.Dimensions{Width: 50, Height: 50}, responsive.Handset, responsive.Portrait, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := layoutFor(stats.Seed(), tt.dims, 100)
			require.NoError(t, err)
			assert.Equal(t, tt.class, layout.Class)
			assert.Equal(t, tt.orientation, layout.Orientation)
			assert.Equal(t, tt.columns, layout.Columns)
			assert.Len(t, layout.Rows, tt.rows)
		})
	}
}

func TestLayoutForPadsLastRow(t *testing.T) {
	layout, err := layoutFor(stats.Seed()[:3], responsive.Dimensions{Width: 80, Height: 24}, 100)
	require.NoError(t, err)
	require.Len(t, layout.Rows, 2)
	require.Len(t, layout.Rows[1], 2)
	assert.False(t, layout.Rows[1][0].Empty())
	assert.True(t, layout.Rows[1][1].Empty())
}

func TestRenderStatsTable(t *testing.T) {
	layout, err := layoutFor(stats.Seed(), responsive.Dimensions{Width: 80, Height: 24}, 100)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderStats(&buf, layout, "table"))
	out := buf.String()

	assert.Contains(t, strings.ToLower(out), "mobile landscape, 2 columns")
	assert.Contains(t, out, "Total Sales: $24.5K ▲ +12%")
	assert.Contains(t, out, "Orders: 456 ▼ -3%")
	assert.Contains(t, strings.ToLower(out), "4 statistics")
}

func TestRenderStatsCSV(t *testing.T) {
	layout, err := layoutFor(stats.Seed(), responsive.Dimensions{Width: 60, Height: 80}, 100)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderStats(&buf, layout, "csv"))
	out := buf.String()

	assert.Contains(t, out, "Total Sales: $24.5K ▲ +12%")
	assert.Contains(t, out, "Revenue: $12.3K ▲ +15%")
}

func TestRenderStatsJSON(t *testing.T) {
	layout, err := layoutFor(stats.Seed()[:3], responsive.Dimensions{Width: 120, Height: 40}, 100)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderStats(&buf, layout, "JSON"))

	var got struct {
		Device      string            `json:"device"`
		Orientation string            `json:"orientation"`
		Columns     int               `json:"columns"`
		Rows        [][]*stats.Record `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "tablet", got.Device)
	assert.Equal(t, "landscape", got.Orientation)
	assert.Equal(t, 4, got.Columns)
	require.Len(t, got.Rows, 1)
	require.Len(t, got.Rows[0], 4)
	assert.Equal(t, "Total Sales", got.Rows[0][0].Title)
	assert.Nil(t, got.Rows[0][3], "placeholder cells are null")
}

func TestRenderStatsUnknownFormat(t *testing.T) {
	layout, err := layoutFor(stats.Seed(), responsive.Dimensions{Width: 80, Height: 24}, 100)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderStats(&buf, layout, "xml")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidArgument))
	assert.Empty(t, buf.String())
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "Total Sales: $24.5K ▲ +12%", cellText(stats.Seed()[0]))
	assert.Equal(t, "Visits: 10", cellText(stats.Record{ID: "9", Title: "Visits", Value: "10"}))
}
