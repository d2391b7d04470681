package mapview

import (
	"context"
	"errors"
	"sync"

	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/routing"
	"go.uber.org/zap"
)

var ErrWidgetClosed = errors.New("map widget is closed")

// View is the serializable snapshot of a map document that the embedding
// page renders.
type View struct {
	Center     geo.Point      `json:"center"`
	Zoom       int            `json:"zoom"`
	Height     int            `json:"height,omitempty"`
	Bounds     *geo.Bounds    `json:"bounds,omitempty"`
	Markers    []Marker       `json:"markers"`
	UserMarker *geo.Point     `json:"userMarker,omitempty"`
	Route      *routing.Route `json:"route,omitempty"`
}

// Document is a Widget that materializes the map state as a view document
// instead of driving a real tile widget. The routing capability behaves
// like a lazily loaded module: it is acquired on first use, at most once
// per document lifetime, and overlay requests fail cleanly until it is
// ready.
type Document struct {
	provider routing.Provider
	logger   *zap.Logger

	mu           sync.Mutex
	center       geo.Point
	zoom         int
	height       int
	bounds       *geo.Bounds
	markers      []Marker
	userMarker   *geo.Point
	route        *routing.Route
	scrollOffset int
	closed       bool

	loadRouting  sync.Once
	routingReady bool
}

func NewDocument(provider routing.Provider, logger *zap.Logger) *Document {
	return &Document{
		provider: provider,
		logger:   logger,
		markers:  []Marker{},
	}
}

// SetHeight records the rendered height hint the embedding page asked for.
func (d *Document) SetHeight(height int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.height = height
}

func (d *Document) SetView(center geo.Point, zoom int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.center = center
	d.zoom = zoom
}

func (d *Document) FitBounds(bounds geo.Bounds, padding int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	_ = padding // the client applies padding when it renders the bounds

	d.bounds = &bounds
	d.center = bounds.Center()
}

func (d *Document) AddStoreMarker(marker Marker) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.markers = append(d.markers, marker)
}

func (d *Document) RemoveStoreMarkers() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.markers = []Marker{}
	d.bounds = nil
}

func (d *Document) ShowUserMarker(p geo.Point) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.userMarker = &p
}

func (d *Document) MoveUserMarker(p geo.Point) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || d.userMarker == nil {
		return
	}

	*d.userMarker = p
}

func (d *Document) AddRouteOverlay(ctx context.Context, from, to geo.Point) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrWidgetClosed
	}
	d.mu.Unlock()

	// routing capability is acquired once per document lifetime
	d.loadRouting.Do(func() {
		d.routingReady = d.provider != nil
	})

	if !d.routingReady {
		return errors.New("routing capability unavailable")
	}

	route, err := d.provider.Route(ctx, from, to)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrWidgetClosed
	}

	d.route = route

	return nil
}

func (d *Document) RemoveRouteOverlay() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.route = nil

	return nil
}

func (d *Document) ScrollOffset() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.scrollOffset
}

func (d *Document) RestoreScroll(offset int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.scrollOffset = offset
}

func (d *Document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrWidgetClosed
	}

	d.closed = true
	d.markers = nil
	d.userMarker = nil
	d.route = nil
	d.bounds = nil

	return nil
}

// Snapshot returns a deep-enough copy of the current view for rendering.
func (d *Document) Snapshot() View {
	d.mu.Lock()
	defer d.mu.Unlock()

	view := View{
		Center:  d.center,
		Zoom:    d.zoom,
		Height:  d.height,
		Markers: append([]Marker{}, d.markers...),
	}

	if d.bounds != nil {
		bounds := *d.bounds
		view.Bounds = &bounds
	}

	if d.userMarker != nil {
		marker := *d.userMarker
		view.UserMarker = &marker
	}

	if d.route != nil {
		route := *d.route
		view.Route = &route
	}

	return view
}
