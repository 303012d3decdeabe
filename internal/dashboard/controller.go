package dashboard

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/dash/internal/logger"
	"github.com/rileyhilliard/dash/internal/responsive"
	"github.com/rileyhilliard/dash/internal/stats"
)

// Phase is the refresh state of the screen.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRefreshing
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

// Refresh defaults.
const (
	DefaultRefreshDelay = 1500 * time.Millisecond
	DefaultSentinelID   = "1"
	DefaultRefreshValue = "$25.2K"
)

// RefreshPolicy describes what a refresh does: after Delay, the record with
// SentinelID gets Value.
type RefreshPolicy struct {
	Delay      time.Duration
	SentinelID string
	Value      string
}

// DefaultRefreshPolicy returns the built-in refresh behavior.
func DefaultRefreshPolicy() RefreshPolicy {
	return RefreshPolicy{
		Delay:      DefaultRefreshDelay,
		SentinelID: DefaultSentinelID,
		Value:      DefaultRefreshValue,
	}
}

func (p RefreshPolicy) withDefaults() RefreshPolicy {
	d := DefaultRefreshPolicy()
	if p.Delay < 0 {
		p.Delay = 0
	}
	if p.Delay == 0 {
		p.Delay = d.Delay
	}
	if p.SentinelID == "" {
		p.SentinelID = d.SentinelID
	}
	if p.Value == "" {
		p.Value = d.Value
	}
	return p
}

// State is a snapshot of the screen state. Records is a copy.
type State struct {
	Records     []stats.Record
	Orientation responsive.Orientation
	DeviceClass responsive.DeviceClass
	Busy        bool
}

// refreshDoneMsg is delivered when the refresh delay elapses.
type refreshDoneMsg struct {
	seq uint64
}

// StatColumns is the statistics grid column policy.
func StatColumns(class responsive.DeviceClass, o responsive.Orientation) int {
	switch {
	case class == responsive.Tablet && o == responsive.Landscape:
		return 4
	case o == responsive.Landscape:
		return 2
	case class == responsive.Tablet:
		return 2
	default:
		return 1
	}
}

// Controller owns the dashboard state: the records, the refresh state machine
// and the orientation derived from provider notifications.
//
// Bubble Tea calls it from a single goroutine, but provider notifications may
// arrive from elsewhere, so access is mutex-guarded.
type Controller struct {
	mu sync.Mutex

	records       []stats.Record
	phase         Phase
	pendingSeq    uint64
	orientation   responsive.Orientation
	class         responsive.DeviceClass
	layoutVersion uint64

	policy   RefreshPolicy
	provider *responsive.Provider
	log      logger.Logger

	unsubscribe func()
	mounted     bool
	unmounted   bool
}

// NewController validates records and creates an unmounted controller. Nil
// records fall back to the built-in sample statistics.
func NewController(provider *responsive.Provider, records []stats.Record, policy RefreshPolicy, log logger.Logger) (*Controller, error) {
	if records == nil {
		records = stats.Seed()
	}
	normalized, err := stats.Normalize(records)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		provider = responsive.NewProvider()
	}
	log = logger.OrDefault(log).With("component", "dashboard")

	dims := provider.Dimensions()
	return &Controller{
		records:     normalized,
		policy:      policy.withDefaults(),
		provider:    provider,
		log:         log,
		orientation: dims.Orientation(),
		class:       provider.DeviceClass(),
	}, nil
}

// Mount subscribes to dimension changes. Calling it again, or after Unmount,
// does nothing.
func (c *Controller) Mount() {
	c.mu.Lock()
	if c.mounted || c.unmounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.mu.Unlock()

	unsub := c.provider.Subscribe(c.handleDimensions)

	c.mu.Lock()
	c.unsubscribe = unsub
	c.mu.Unlock()

	c.handleDimensions(c.provider.Dimensions())
}

// Unmount releases the dimension subscription. Pending refresh completions
// become no-ops. It is idempotent.
func (c *Controller) Unmount() {
	c.mu.Lock()
	if c.unmounted {
		c.mu.Unlock()
		return
	}
	c.unmounted = true
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	c.log.Debug("dashboard unmounted")
}

func (c *Controller) handleDimensions(d responsive.Dimensions) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unmounted {
		return
	}
	c.orientation = d.Orientation()
	c.class = responsive.DeviceClassFor(d.Width, c.provider.Breakpoint())
	c.layoutVersion++
	c.log.Debug("orientation changed",
		"orientation", c.orientation.String(),
		"device", c.class.String(),
		"columns", StatColumns(c.class, c.orientation),
		"width", d.Width,
		"height", d.Height)
}

// RequestRefresh starts a refresh. It returns the single deferred command that
// completes it, or (nil, false) when a refresh is already running or the
// screen is unmounted.
func (c *Controller) RequestRefresh() (tea.Cmd, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unmounted || c.phase == PhaseRefreshing {
		return nil, false
	}
	c.phase = PhaseRefreshing
	c.pendingSeq++
	seq := c.pendingSeq
	c.log.Debug("refresh triggered", "seq", seq, "delay", c.policy.Delay.String())

	return tea.Tick(c.policy.Delay, func(time.Time) tea.Msg {
		return refreshDoneMsg{seq: seq}
	}), true
}

// CompleteRefresh applies the refresh result for seq and returns to idle. It
// reports whether anything changed. Completions after unmount, or for a
// refresh that isn't pending, are ignored.
func (c *Controller) CompleteRefresh(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unmounted {
		c.log.Debug("refresh completion ignored after unmount", "seq", seq)
		return false
	}
	if c.phase != PhaseRefreshing || seq != c.pendingSeq {
		return false
	}

	next := stats.WithValue(c.records, c.policy.SentinelID, c.policy.Value)
	if err := stats.Validate(next); err != nil {
		// Prior state stays intact.
		c.log.Error("refresh produced invalid records", "error", err.Error())
	} else {
		c.records = next
	}
	c.phase = PhaseIdle
	c.log.Debug("refresh complete", "seq", seq, "sentinel", c.policy.SentinelID)
	return true
}

// ReplaceRecords swaps in a new record set after validating it. On error the
// current records are left untouched.
func (c *Controller) ReplaceRecords(records []stats.Record) error {
	normalized, err := stats.Normalize(records)
	if err != nil {
		c.log.Warn("rejected record update", "error", err.Error())
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unmounted {
		return nil
	}
	c.records = normalized
	c.log.Debug("records replaced", "count", len(normalized))
	return nil
}

// State returns a snapshot of the screen state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Records:     stats.Clone(c.records),
		Orientation: c.orientation,
		DeviceClass: c.class,
		Busy:        c.phase == PhaseRefreshing,
	}
}

// Records returns a copy of the current records.
func (c *Controller) Records() []stats.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return stats.Clone(c.records)
}

// Phase returns the refresh phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Busy reports whether a refresh is in flight.
func (c *Controller) Busy() bool {
	return c.Phase() == PhaseRefreshing
}

// Columns is the statistics column count for the current dimensions.
func (c *Controller) Columns() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return StatColumns(c.class, c.orientation)
}

// LayoutVersion increases on every dimension notification. Renderers use it
// to drop layouts computed for stale dimensions.
func (c *Controller) LayoutVersion() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layoutVersion
}

// Mounted reports whether the controller is mounted and not yet torn down.
func (c *Controller) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted && !c.unmounted
}

// Policy returns the refresh policy in effect.
func (c *Controller) Policy() RefreshPolicy {
	return c.policy
}

// Provider returns the dimensions provider the controller listens to.
func (c *Controller) Provider() *responsive.Provider {
	return c.provider
}

// Logger returns the controller's logger.
func (c *Controller) Logger() logger.Logger {
	return c.log
}

// TargetKind identifies what was activated.
type TargetKind int

const (
	TargetStatistic TargetKind = iota
	TargetQuickAction
	TargetMenu
	TargetNotifications
	TargetProfile
)

// Target is something the user activated.
type Target struct {
	Kind  TargetKind
	Title string
}

// Alert is a modal message shown in response to an activation.
type Alert struct {
	Title   string
	Message string
}

// Activate returns the alert for an activated target.
func (c *Controller) Activate(t Target) Alert {
	var a Alert
	switch t.Kind {
	case TargetStatistic:
		a = Alert{Title: t.Title, Message: fmt.Sprintf("Detailed view for %s", t.Title)}
	case TargetQuickAction:
		a = Alert{Title: t.Title, Message: fmt.Sprintf("%s pressed", t.Title)}
	case TargetMenu:
		a = Alert{Title: "Menu", Message: "Menu opened"}
	case TargetNotifications:
		a = Alert{Title: "Notifications", Message: "You have 3 notifications"}
	case TargetProfile:
		a = Alert{Title: "Profile", Message: "Profile opened"}
	}
	c.log.Debug("activated", "kind", int(t.Kind), "title", a.Title)
	return a
}
