package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/swamyrayudu/localhunt-backend/internal/directions"
	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/geolocation"
	"github.com/swamyrayudu/localhunt-backend/internal/metrics"
	"github.com/swamyrayudu/localhunt-backend/internal/navigation"
	"github.com/swamyrayudu/localhunt-backend/internal/store"
	"go.uber.org/zap"
)

// Controller owns the directions session state. All transitions happen
// under one mutex; geolocation resolutions are last-write-wins, so an
// in-flight request is never cancelled, only overwritten.
type Controller struct {
	locator geolocation.Locator
	opts    geolocation.Options
	logger  *zap.Logger

	mu             sync.Mutex
	stores         []store.Location
	initialID      string
	started        bool
	autoSelectDone bool
	scrollPending  bool

	userLocation   *geo.Point
	selected       *store.Location
	showDirections bool
	stepsExpanded  bool
	locationError  string
	isLocating     bool
}

func New(
	stores []store.Location,
	initialSelectedID string,
	locator geolocation.Locator,
	opts geolocation.Options,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		locator:   locator,
		opts:      opts,
		logger:    logger,
		stores:    stores,
		initialID: initialSelectedID,
	}
}

// Start activates the controller and applies the initial selection (if
// any) before returning, so the first snapshot already reflects it.
// Repeated calls are no-ops. The location auto-request is issued
// separately: callers decide whether that blocks.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return
	}
	c.started = true
	c.autoSelectInitialLocked()
}

// RequestLocation acquires the user's position. Safe to call repeatedly,
// including while a previous request is still in flight: whichever
// resolution lands last wins, and isLocating is reset on every settle.
func (c *Controller) RequestLocation(ctx context.Context) {
	c.mu.Lock()
	if c.locator == nil {
		c.isLocating = false
		c.locationError = geolocation.Message(geolocation.ErrUnsupported)
		c.mu.Unlock()

		metrics.GeolocationFailures.WithLabelValues("unsupported").Inc()

		return
	}

	c.isLocating = true
	c.locationError = ""
	opts := c.opts
	c.mu.Unlock()

	position, err := c.locator.CurrentPosition(ctx, opts)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.isLocating = false

	if err != nil {
		c.locationError = geolocation.Message(err)
		metrics.GeolocationFailures.WithLabelValues(failureKind(err)).Inc()

		c.logger.Warn("geolocation request failed", zap.Error(err))

		return
	}

	point := position.Point
	c.userLocation = &point
	c.locationError = ""
}

// ReportPosition accepts a position the client resolved itself.
func (c *Controller) ReportPosition(p geo.Point) error {
	if !p.Valid() {
		return errors.New("invalid coordinates")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.userLocation = &p
	c.locationError = ""
	c.isLocating = false

	return nil
}

// SelectStore selects a store by id and turns directions on. Stores
// without mappable coordinates are not selectable.
func (c *Controller) SelectStore(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.selectStoreLocked(id)
}

func (c *Controller) selectStoreLocked(id string) error {
	target := findStore(c.stores, id)
	if target == nil {
		return directions.ErrUnknownStore
	}

	if !target.Mappable() {
		return directions.ErrStoreNotMappable
	}

	selected := *target
	c.selected = &selected
	c.showDirections = true

	return nil
}

// ClearDirections resets the selection, the directions flag and the
// expanded step list together.
func (c *Controller) ClearDirections() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = nil
	c.showDirections = false
	c.stepsExpanded = false
}

// ToggleSteps flips the turn-by-turn list between collapsed and expanded.
func (c *Controller) ToggleSteps() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stepsExpanded = !c.stepsExpanded
}

// SetStores replaces the store list. When the selected store disappears
// from the new list, directions are cleared: a stale overlay target would
// violate the selection invariant against the current list.
func (c *Controller) SetStores(stores []store.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stores = stores

	if c.selected != nil && findStore(stores, c.selected.ID) == nil {
		c.selected = nil
		c.showDirections = false
		c.stepsExpanded = false
	}

	if c.started {
		c.autoSelectInitialLocked()
	}
}

// autoSelectInitialLocked consumes the initial selection exactly once, as
// soon as the store list is non-empty.
func (c *Controller) autoSelectInitialLocked() {
	if c.autoSelectDone || c.initialID == "" || len(c.stores) == 0 {
		return
	}

	c.autoSelectDone = true

	if err := c.selectStoreLocked(c.initialID); err != nil {
		c.logger.Warn("initial store selection skipped",
			zap.String("storeId", c.initialID),
			zap.Error(err),
		)
		return
	}

	c.scrollPending = true
}

// ConsumeScrollIntoView reports whether the map should be scrolled into
// view and clears the flag, so the effect fires at most once.
func (c *Controller) ConsumeScrollIntoView() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := c.scrollPending
	c.scrollPending = false

	return pending
}

// NavigationURL builds the external maps deep link from the user location
// to the selected store.
func (c *Controller) NavigationURL() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.userLocation == nil || c.selected == nil {
		return "", directions.ErrNavigationUnavailable
	}

	destination, ok := c.selected.Point()
	if !ok {
		return "", directions.ErrNavigationUnavailable
	}

	return navigation.DriveURL(*c.userLocation, destination), nil
}

// Snapshot returns a copy of the session state.
func (c *Controller) Snapshot() directions.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	session := directions.Session{
		ShowDirections: c.showDirections,
		LocationError:  c.locationError,
		IsLocating:     c.isLocating,
		StepsExpanded:  c.stepsExpanded,
	}

	if c.userLocation != nil {
		point := *c.userLocation
		session.UserLocation = &point
	}

	if c.selected != nil {
		selected := *c.selected
		session.SelectedStore = &selected
	}

	return session
}

// ViewState returns the declarative state the map engine applies.
func (c *Controller) ViewState() directions.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := directions.ViewState{
		Stores:         append([]store.Location{}, c.stores...),
		ShowDirections: c.showDirections,
	}

	if c.userLocation != nil {
		point := *c.userLocation
		view.UserLocation = &point
	}

	if c.selected != nil {
		view.SelectedStoreID = c.selected.ID
	}

	return view
}

func findStore(stores []store.Location, id string) *store.Location {
	for i := range stores {
		if stores[i].ID == id {
			return &stores[i]
		}
	}
	return nil
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, geolocation.ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, geolocation.ErrPositionUnavailable):
		return "position_unavailable"
	case errors.Is(err, geolocation.ErrTimeout):
		return "timeout"
	case errors.Is(err, geolocation.ErrUnsupported):
		return "unsupported"
	default:
		return "unknown"
	}
}
