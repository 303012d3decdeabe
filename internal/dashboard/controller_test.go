package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/logger"
	"github.com/rileyhilliard/dash/internal/responsive"
	"github.com/rileyhilliard/dash/internal/stats"
)

func newTestController(t *testing.T, width, height int) (*Controller, *responsive.Provider) {
	t.Helper()
	p := responsive.NewProvider(responsive.WithDimensions(width, height))
	c, err := NewController(p, nil, RefreshPolicy{Delay: 10 * time.Millisecond}, logger.Noop())
	require.NoError(t, err)
	return c, p
}

func valueOf(t *testing.T, records []stats.Record, id string) string {
	t.Helper()
	rec, ok := stats.Find(records, id)
	require.True(t, ok, "record %q not found", id)
	return rec.Value
}

func TestNewController(t *testing.T) {
	t.Run("nil records use seed", func(t *testing.T) {
		c, _ := newTestController(t, 80, 24)
		state := c.State()
		assert.Len(t, state.Records, 4)
		assert.False(t, state.Busy)
		assert.Equal(t, PhaseIdle, c.Phase())
		assert.Equal(t, "$24.5K", valueOf(t, state.Records, "1"))
	})

	t.Run("duplicate ids rejected", func(t *testing.T) {
		_, err := NewController(nil, []stats.Record{{ID: "a"}, {ID: "a"}}, RefreshPolicy{}, nil)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrInvalidArgument))
	})

	t.Run("zero policy gets defaults", func(t *testing.T) {
		c, err := NewController(nil, []stats.Record{}, RefreshPolicy{}, nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultRefreshPolicy(), c.Policy())
		assert.Empty(t, c.Records())
	})
}

func TestRefresh_Lifecycle(t *testing.T) {
	c, _ := newTestController(t, 80, 24)
	c.Mount()
	before := c.Records()

	assert.False(t, c.Busy())

	cmd, ok := c.RequestRefresh()
	require.True(t, ok)
	require.NotNil(t, cmd)
	assert.True(t, c.Busy())
	assert.Equal(t, PhaseRefreshing, c.Phase())

	// Re-entrant requests are ignored.
	again, ok := c.RequestRefresh()
	assert.False(t, ok)
	assert.Nil(t, again)

	msg := cmd()
	done, isDone := msg.(refreshDoneMsg)
	require.True(t, isDone)
	assert.Equal(t, uint64(1), done.seq)

	assert.True(t, c.CompleteRefresh(done.seq))
	assert.False(t, c.Busy())

	after := c.Records()
	assert.Equal(t, "$25.2K", valueOf(t, after, "1"))
	for _, id := range []string{"2", "3", "4"} {
		assert.Equal(t, valueOf(t, before, id), valueOf(t, after, id))
	}
	assert.Equal(t, "$24.5K", valueOf(t, before, "1"), "earlier snapshot must not change")
}

func TestCompleteRefresh_Ignored(t *testing.T) {
	t.Run("when idle", func(t *testing.T) {
		c, _ := newTestController(t, 80, 24)
		assert.False(t, c.CompleteRefresh(1))
		assert.Equal(t, "$24.5K", valueOf(t, c.Records(), "1"))
	})

	t.Run("stale sequence", func(t *testing.T) {
		c, _ := newTestController(t, 80, 24)
		_, ok := c.RequestRefresh()
		require.True(t, ok)
		assert.False(t, c.CompleteRefresh(99))
		assert.True(t, c.Busy())
	})

	t.Run("after unmount", func(t *testing.T) {
		c, _ := newTestController(t, 80, 24)
		c.Mount()
		_, ok := c.RequestRefresh()
		require.True(t, ok)

		c.Unmount()
		assert.False(t, c.CompleteRefresh(1))
		assert.Equal(t, "$24.5K", valueOf(t, c.Records(), "1"))

		cmd, ok := c.RequestRefresh()
		assert.False(t, ok)
		assert.Nil(t, cmd)
	})
}

func TestRefresh_MissingSentinel(t *testing.T) {
	records := []stats.Record{{ID: "a", Value: "1"}, {ID: "b", Value: "2"}}
	c, err := NewController(nil, records, RefreshPolicy{SentinelID: "zzz"}, nil)
	require.NoError(t, err)

	_, ok := c.RequestRefresh()
	require.True(t, ok)
	assert.True(t, c.CompleteRefresh(1))
	assert.Equal(t, "1", valueOf(t, c.Records(), "a"))
	assert.Equal(t, "2", valueOf(t, c.Records(), "b"))
	assert.False(t, c.Busy())
}

func TestRefresh_CustomPolicy(t *testing.T) {
	records := []stats.Record{{ID: "x", Value: "old"}}
	c, err := NewController(nil, records, RefreshPolicy{SentinelID: "x", Value: "new"}, nil)
	require.NoError(t, err)

	_, ok := c.RequestRefresh()
	require.True(t, ok)
	c.CompleteRefresh(1)
	assert.Equal(t, "new", valueOf(t, c.Records(), "x"))

	// A second refresh gets the next sequence number.
	_, ok = c.RequestRefresh()
	require.True(t, ok)
	assert.False(t, c.CompleteRefresh(1))
	assert.True(t, c.CompleteRefresh(2))
}

func TestStatColumns(t *testing.T) {
	tests := []struct {
		name   string
		class  responsive.DeviceClass
		o      responsive.Orientation
		expect int
	}{
		{"tablet landscape", responsive.Tablet, responsive.Landscape, 4},
		{"handset landscape", responsive.Handset, responsive.Landscape, 2},
		{"tablet portrait", responsive.Tablet, responsive.Portrait, 2},
		{"handset portrait", responsive.Handset, responsive.Portrait, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, StatColumns(tt.class, tt.o))
		})
	}
}

func TestController_DimensionChanges(t *testing.T) {
	c, p := newTestController(t, 80, 24)
	assert.Equal(t, uint64(0), c.LayoutVersion())

	c.Mount()
	assert.True(t, c.Mounted())
	assert.Equal(t, 1, p.Subscribers())
	assert.Equal(t, uint64(1), c.LayoutVersion())
	assert.Equal(t, 2, c.Columns())

	steps := []struct {
		width, height int
		orientation   responsive.Orientation
		class         responsive.DeviceClass
		columns       int
	}{
		{40, 60, responsive.Portrait, responsive.Handset, 1},
		{160, 50, responsive.Landscape, responsive.Tablet, 4},
		{90, 30, responsive.Landscape, responsive.Handset, 2},
		{100, 120, responsive.Portrait, responsive.Tablet, 2},
		// Square is portrait.
		{50, 50, responsive.Portrait, responsive.Handset, 1},
	}
	for i, s := range steps {
		p.Report(s.width, s.height)
		state := c.State()
		assert.Equal(t, s.orientation, state.Orientation, "step %d", i)
		assert.Equal(t, s.class, state.DeviceClass, "step %d", i)
		assert.Equal(t, s.columns, c.Columns(), "step %d", i)
		assert.Equal(t, uint64(i+2), c.LayoutVersion(), "step %d", i)
	}

	// Same dimensions still count as a change.
	p.Report(50, 50)
	assert.Equal(t, uint64(len(steps)+2), c.LayoutVersion())
}

func TestController_Unmount(t *testing.T) {
	c, p := newTestController(t, 80, 24)
	c.Mount()
	version := c.LayoutVersion()

	c.Unmount()
	c.Unmount()
	assert.False(t, c.Mounted())
	assert.Equal(t, 0, p.Subscribers())

	p.Report(200, 50)
	assert.Equal(t, version, c.LayoutVersion())

	// Mount after teardown does nothing.
	c.Mount()
	assert.False(t, c.Mounted())
	assert.Equal(t, 0, p.Subscribers())
}

func TestReplaceRecords(t *testing.T) {
	c, _ := newTestController(t, 80, 24)

	err := c.ReplaceRecords([]stats.Record{{ID: "a"}, {ID: "a"}})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidArgument))
	assert.Len(t, c.Records(), 4)

	require.NoError(t, c.ReplaceRecords([]stats.Record{{ID: "z", Value: "9"}}))
	records := c.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "z", records[0].Title, "title defaults to id")
	assert.Equal(t, stats.DefaultIcon, records[0].Icon)
}

func TestRecords_ReturnsCopy(t *testing.T) {
	c, _ := newTestController(t, 80, 24)
	records := c.Records()
	records[0].Value = "mutated"
	assert.Equal(t, "$24.5K", valueOf(t, c.Records(), "1"))
}

func TestActivate(t *testing.T) {
	c, _ := newTestController(t, 80, 24)
	tests := []struct {
		name   string
		target Target
		expect Alert
	}{
		{"statistic", Target{Kind: TargetStatistic, Title: "Orders"}, Alert{"Orders", "Detailed view for Orders"}},
		{"quick action", Target{Kind: TargetQuickAction, Title: "Settings"}, Alert{"Settings", "Settings pressed"}},
		{"menu", Target{Kind: TargetMenu}, Alert{"Menu", "Menu opened"}},
		{"notifications", Target{Kind: TargetNotifications}, Alert{"Notifications", "You have 3 notifications"}},
		{"profile", Target{Kind: TargetProfile}, Alert{"Profile", "Profile opened"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, c.Activate(tt.target))
		})
	}
}

func TestController_LogsRefresh(t *testing.T) {
	buf := logger.NewBufferLogger()
	c, err := NewController(nil, nil, RefreshPolicy{}, buf)
	require.NoError(t, err)

	_, ok := c.RequestRefresh()
	require.True(t, ok)
	c.CompleteRefresh(1)

	assert.True(t, buf.HasMessage("refresh triggered"))
	assert.True(t, buf.HasMessage("refresh complete"))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "refreshing", PhaseRefreshing.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
