// Package responsive reports device-dependent layout parameters for the terminal
// the dashboard runs in, and fans out dimension-change notifications.
//
// The terminal plays the role of the device screen: its cell width picks the
// device class (handset vs. tablet), and its aspect picks the orientation.
package responsive

import (
	"slices"
	"sync"

	"github.com/rileyhilliard/dash/internal/logger"
	"golang.org/x/term"
)

// DeviceClass is the coarse categorization of the host screen.
type DeviceClass int

const (
	Handset DeviceClass = iota
	Tablet
)

// String returns a human-readable device class.
func (c DeviceClass) String() string {
	switch c {
	case Handset:
		return "mobile"
	case Tablet:
		return "tablet"
	default:
		return "unknown"
	}
}

// Orientation of the host screen.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// String returns a human-readable orientation.
func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return "unknown"
	}
}

// DefaultTabletBreakpoint is the width, in cells, at which a terminal counts as a tablet.
const DefaultTabletBreakpoint = 100

// Fallback dimensions when the output is not a terminal.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// Padding tiers by width
const (
	paddingTierSmall  = 60
	paddingTierMedium = 100
	paddingTierLarge  = 140
)

// Dimensions is a reported screen size in terminal cells.
type Dimensions struct {
	Width  int
	Height int
}

// Orientation is landscape iff width > height.
func (d Dimensions) Orientation() Orientation {
	return OrientationFor(d.Width, d.Height)
}

// OrientationFor returns landscape iff width > height.
func OrientationFor(width, height int) Orientation {
	if width > height {
		return Landscape
	}
	return Portrait
}

// DeviceClassFor returns Tablet when width reaches breakpoint, Handset otherwise.
// A non-positive breakpoint falls back to DefaultTabletBreakpoint.
func DeviceClassFor(width, breakpoint int) DeviceClass {
	if breakpoint <= 0 {
		breakpoint = DefaultTabletBreakpoint
	}
	if width >= breakpoint {
		return Tablet
	}
	return Handset
}

// AdaptivePadding returns the horizontal spacing for a screen width tier.
func AdaptivePadding(width int) int {
	switch {
	case width < paddingTierSmall:
		return 1
	case width < paddingTierMedium:
		return 2
	case width < paddingTierLarge:
		return 3
	default:
		return 4
	}
}

// GridColumns is the generic column count for a device class and orientation.
// Screens with their own policy (the statistics grid) don't use it.
func GridColumns(class DeviceClass, o Orientation) int {
	switch {
	case class == Tablet && o == Landscape:
		return 4
	case class == Tablet:
		return 3
	default:
		return 2
	}
}

// TerminalDimensions reads the size of the terminal on fd. ok is false when fd
// isn't a terminal or the size can't be read.
func TerminalDimensions(fd int) (d Dimensions, ok bool) {
	if !term.IsTerminal(fd) {
		return Dimensions{}, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return Dimensions{}, false
	}
	return Dimensions{Width: w, Height: h}, true
}

// Provider holds the current screen dimensions and notifies subscribers when the
// host reports a change. It is safe for concurrent use.
type Provider struct {
	mu         sync.Mutex
	dims       Dimensions
	breakpoint int
	handlers   []subscription // in subscription order
	nextID     uint64
	log        logger.Logger
}

type subscription struct {
	id uint64
	fn func(Dimensions)
}

// Option configures a Provider.
type Option func(*Provider)

// WithBreakpoint sets the tablet width breakpoint.
func WithBreakpoint(cells int) Option {
	return func(p *Provider) {
		if cells > 0 {
			p.breakpoint = cells
		}
	}
}

// WithDimensions sets the initial dimensions.
func WithDimensions(width, height int) Option {
	return func(p *Provider) {
		p.dims = Dimensions{Width: width, Height: height}
	}
}

// WithLogger sets the provider's logger.
func WithLogger(l logger.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.log = l
		}
	}
}

// NewProvider creates a provider. Without WithDimensions it starts at 80x24.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		dims:       Dimensions{Width: FallbackWidth, Height: FallbackHeight},
		breakpoint: DefaultTabletBreakpoint,
		log:        logger.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dimensions returns the last reported dimensions.
func (p *Provider) Dimensions() Dimensions {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dims
}

// Breakpoint returns the tablet width breakpoint.
func (p *Provider) Breakpoint() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.breakpoint
}

// DeviceClass returns the device class for the current width.
func (p *Provider) DeviceClass() DeviceClass {
	d := p.Dimensions()
	return DeviceClassFor(d.Width, p.Breakpoint())
}

// Columns returns the generic column count for the current screen.
func (p *Provider) Columns() int {
	d := p.Dimensions()
	return GridColumns(DeviceClassFor(d.Width, p.Breakpoint()), d.Orientation())
}

// AdaptivePadding returns the horizontal spacing for the current width.
func (p *Provider) AdaptivePadding() int {
	return AdaptivePadding(p.Dimensions().Width)
}

// Subscribe registers handler for dimension changes. The returned function
// deregisters it and may be called any number of times.
func (p *Provider) Subscribe(handler func(Dimensions)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.handlers = append(p.handlers, subscription{id: id, fn: handler})
	p.mu.Unlock()

	p.log.Debug("orientation listener added", "id", id)

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			p.handlers = slices.DeleteFunc(p.handlers, func(s subscription) bool { return s.id == id })
			p.mu.Unlock()
			p.log.Debug("orientation listener removed", "id", id)
		})
	}
}

// Subscribers returns the number of registered handlers.
func (p *Provider) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.handlers)
}

// Report records new dimensions from the host and invokes every handler in
// the order they subscribed.
// Handlers run on the caller's goroutine, outside the provider's lock.
func (p *Provider) Report(width, height int) {
	p.mu.Lock()
	p.dims = Dimensions{Width: width, Height: height}
	handlers := make([]func(Dimensions), 0, len(p.handlers))
	for _, s := range p.handlers {
		handlers = append(handlers, s.fn)
	}
	d := p.dims
	p.mu.Unlock()

	p.log.Debug("dimensions changed", "width", width, "height", height, "handlers", len(handlers))

	for _, h := range handlers {
		h(d)
	}
}
