package mapview

import (
	"context"

	"github.com/swamyrayudu/localhunt-backend/internal/geo"
)

// Popup is the structured content of a store marker popup. DirectionsAction
// is the event payload the "get directions" button publishes on the session
// bus.
type Popup struct {
	ShopName         string   `json:"shopName,omitempty"`
	ProductName      string   `json:"productName,omitempty"`
	Address          string   `json:"address,omitempty"`
	Image            string   `json:"image,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	DirectionsAction string   `json:"directionsAction,omitempty"`
}

// Marker is one store pin.
type Marker struct {
	ID      string    `json:"id"`
	Point   geo.Point `json:"point"`
	Tooltip string    `json:"tooltip,omitempty"`
	Popup   Popup     `json:"popup"`
}

// Widget is the imperative surface of the underlying map library. The
// directions engine is the only caller; everything else sees declarative
// state. All mutating calls happen on serialized apply passes, so
// implementations do not need to be safe for concurrent writers beyond
// snapshot reads.
//
//go:generate mockgen -source=widget.go -destination=mocks/mock.go -package=mockmapview
type Widget interface {
	// SetView recenters the map without animation.
	SetView(center geo.Point, zoom int)
	// FitBounds adjusts the view so the bounds are visible with the given
	// padding, without animation.
	FitBounds(bounds geo.Bounds, padding int)

	AddStoreMarker(marker Marker)
	RemoveStoreMarkers()

	// ShowUserMarker creates the user marker; MoveUserMarker updates it in
	// place. The engine guarantees Show is called before any Move.
	ShowUserMarker(p geo.Point)
	MoveUserMarker(p geo.Point)

	// AddRouteOverlay draws the route overlay between the two points. At
	// most one overlay exists; the engine removes any previous overlay
	// before calling this.
	AddRouteOverlay(ctx context.Context, from, to geo.Point) error
	RemoveRouteOverlay() error

	// ScrollOffset and RestoreScroll bracket layout-affecting calls so the
	// embedding page does not jump.
	ScrollOffset() int
	RestoreScroll(offset int)

	Close() error
}
