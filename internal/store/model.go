package store

import (
	"github.com/swamyrayudu/localhunt-backend/internal/geo"
)

// Location is a read-only projection of a seller's product listing used for
// mapping. Coordinates are kept nullable: catalog entries without a
// geocoded address still exist, they just never reach the map.
type Location struct {
	ID          string   `json:"id"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	DisplayName *string  `json:"displayName,omitempty"`
	ShopName    *string  `json:"shopName,omitempty"`
	ProductName *string  `json:"productName,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

// Point returns the location's coordinates. The second return value is
// false when the entry is not mappable (either coordinate missing or out
// of range).
func (l Location) Point() (geo.Point, bool) {
	if l.Latitude == nil || l.Longitude == nil {
		return geo.Point{}, false
	}

	p := geo.Point{Latitude: *l.Latitude, Longitude: *l.Longitude}
	if !p.Valid() {
		return geo.Point{}, false
	}

	return p, true
}

// Mappable reports whether the location can be rendered as a marker.
func (l Location) Mappable() bool {
	_, ok := l.Point()
	return ok
}

// FilterMappable returns the subset of locations with valid coordinates,
// preserving order.
func FilterMappable(locations []Location) []Location {
	out := make([]Location, 0, len(locations))
	for _, l := range locations {
		if l.Mappable() {
			out = append(out, l)
		}
	}
	return out
}

// Label is the name shown in marker tooltips: product name when present,
// shop name otherwise.
func (l Location) Label() string {
	if l.ProductName != nil && *l.ProductName != "" {
		return *l.ProductName
	}
	if l.ShopName != nil && *l.ShopName != "" {
		return *l.ShopName
	}
	return l.ID
}
