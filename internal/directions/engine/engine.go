package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/swamyrayudu/localhunt-backend/internal/directions"
	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/mapview"
	"github.com/swamyrayudu/localhunt-backend/internal/store"
	"github.com/swamyrayudu/localhunt-backend/pkg/events"
	"go.uber.org/zap"
)

// TopicGetDirections is the event channel popup "get directions" buttons
// publish on; the payload is the store id.
const TopicGetDirections = "map:get-directions"

var (
	ErrNotStarted = errors.New("map engine not started")
	ErrClosed     = errors.New("map engine closed")
)

type Config struct {
	DefaultCenter geo.Point
	DefaultZoom   int
	FitPadding    int
}

// Engine owns the imperative map widget for one session and keeps it in
// sync with the declarative view state. It is the only writer of the
// widget: apply passes are serialized by the caller, mirroring
// non-overlapping effect invocations.
type Engine struct {
	widget mapview.Widget
	bus    *events.Bus
	cfg    Config
	logger *zap.Logger

	mu               sync.Mutex
	started          bool
	closed           bool
	userMarkerShown  bool
	lastUserLocation *geo.Point
	overlayActive    bool
	overlayFrom      geo.Point
	overlayTo        geo.Point
	unsubscribe      func()
}

func New(widget mapview.Widget, bus *events.Bus, cfg Config, logger *zap.Logger) *Engine {
	return &Engine{
		widget: widget,
		bus:    bus,
		cfg:    cfg,
		logger: logger,
	}
}

// Start creates the initial view. It is idempotent: a second call never
// reinitializes the widget. The page scroll offset is preserved across the
// initial centering, like any other layout-affecting pass. onSelect
// receives store ids published by popup buttons for as long as the engine
// lives.
func (e *Engine) Start(userLocation *geo.Point, onSelect func(storeID string)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started || e.closed {
		return
	}
	e.started = true

	center := e.cfg.DefaultCenter
	if userLocation != nil {
		center = *userLocation
	}

	offset := e.widget.ScrollOffset()
	e.widget.SetView(center, e.cfg.DefaultZoom)
	e.widget.RestoreScroll(offset)

	if e.bus != nil && onSelect != nil {
		e.unsubscribe = e.bus.Subscribe(TopicGetDirections, onSelect)
	}
}

// Apply resynchronizes the widget with the view state: markers are fully
// re-rendered, the user marker is created or moved, and the routing
// overlay is reconciled. The page scroll offset is captured before the
// layout-affecting calls and restored right after them, plus once more at
// the end of the pass to cover delayed reflows.
func (e *Engine) Apply(ctx context.Context, view directions.ViewState) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return ErrNotStarted
	}
	if e.closed {
		return ErrClosed
	}

	offset := e.widget.ScrollOffset()
	defer e.widget.RestoreScroll(offset)

	e.renderMarkers(view)
	e.syncUserMarker(view)

	e.widget.RestoreScroll(offset)

	e.syncOverlay(ctx, view)

	return nil
}

// renderMarkers clears every previous marker before re-adding, so no stale
// marker survives a store-list change, then fits the view around whatever
// is visible.
func (e *Engine) renderMarkers(view directions.ViewState) {
	e.widget.RemoveStoreMarkers()

	points := make([]geo.Point, 0, len(view.Stores))
	for _, s := range view.Stores {
		point, ok := s.Point()
		if !ok {
			continue
		}

		e.widget.AddStoreMarker(buildMarker(s, point))
		points = append(points, point)
	}

	if len(points) == 0 {
		return
	}

	if view.UserLocation != nil {
		points = append(points, *view.UserLocation)
	}

	if bounds, ok := geo.FitBounds(points); ok {
		e.widget.FitBounds(bounds, e.cfg.FitPadding)
	}
}

// syncUserMarker creates the user marker on the first fix and moves it in
// place afterwards, panning to it whenever the location changes. The
// marker is never destroyed once shown.
func (e *Engine) syncUserMarker(view directions.ViewState) {
	location := view.UserLocation
	if location == nil {
		return
	}

	changed := e.lastUserLocation == nil || *e.lastUserLocation != *location

	if !e.userMarkerShown {
		e.widget.ShowUserMarker(*location)
		e.userMarkerShown = true
	} else if changed {
		e.widget.MoveUserMarker(*location)
	}

	if changed {
		e.widget.SetView(*location, e.cfg.DefaultZoom)
	}

	point := *location
	e.lastUserLocation = &point
}

// syncOverlay enforces the single-overlay invariant: exactly one overlay
// exists while directions are shown with a located user and a mappable
// selected store, none otherwise. A previous overlay is always removed
// before a replacement is created.
func (e *Engine) syncOverlay(ctx context.Context, view directions.ViewState) {
	target := overlayTarget(view)
	if target == nil {
		e.removeOverlay()
		return
	}

	from := *view.UserLocation
	to := *target

	if e.overlayActive && e.overlayFrom == from && e.overlayTo == to {
		return
	}

	e.removeOverlay()

	if err := e.widget.AddRouteOverlay(ctx, from, to); err != nil {
		// degrade to "no overlay": the reference stays nulled
		e.logger.Error("failed to create routing overlay", zap.Error(err))
		e.overlayActive = false

		return
	}

	e.overlayActive = true
	e.overlayFrom = from
	e.overlayTo = to
}

func (e *Engine) removeOverlay() {
	if !e.overlayActive {
		return
	}

	if err := e.widget.RemoveRouteOverlay(); err != nil {
		e.logger.Error("failed to remove routing overlay", zap.Error(err))
	}

	e.overlayActive = false
}

// Close tears the session down: the overlay is removed before the widget
// is destroyed, and only the first call does anything.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	e.removeOverlay()

	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}

	if !e.started {
		return nil
	}

	if err := e.widget.Close(); err != nil {
		e.logger.Error("failed to close map widget", zap.Error(err))

		return err
	}

	return nil
}

func overlayTarget(view directions.ViewState) *geo.Point {
	if !view.ShowDirections || view.UserLocation == nil || view.SelectedStoreID == "" {
		return nil
	}

	for _, s := range view.Stores {
		if s.ID != view.SelectedStoreID {
			continue
		}

		if point, ok := s.Point(); ok {
			return &point
		}

		return nil
	}

	return nil
}

func buildMarker(s store.Location, point geo.Point) mapview.Marker {
	popup := mapview.Popup{
		Price:            s.Price,
		DirectionsAction: s.ID,
	}

	if s.ShopName != nil {
		popup.ShopName = *s.ShopName
	}
	if s.ProductName != nil {
		popup.ProductName = *s.ProductName
	}
	if s.Address != nil {
		popup.Address = *s.Address
	}
	if s.Image != nil {
		popup.Image = *s.Image
	}

	return mapview.Marker{
		ID:      s.ID,
		Point:   point,
		Tooltip: s.Label(),
		Popup:   popup,
	}
}
