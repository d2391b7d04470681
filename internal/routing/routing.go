package routing

import (
	"context"
	"errors"

	"github.com/swamyrayudu/localhunt-backend/internal/geo"
)

var ErrNoRoute = errors.New("no route found")

// Step is one turn-by-turn instruction.
type Step struct {
	Instruction     string    `json:"instruction"`
	DistanceMeters  float64   `json:"distanceMeters"`
	DurationSeconds float64   `json:"durationSeconds"`
	Location        geo.Point `json:"location"`
}

// Route is a computed route between two coordinates.
type Route struct {
	From            geo.Point   `json:"from"`
	To              geo.Point   `json:"to"`
	DistanceMeters  float64     `json:"distanceMeters"`
	DurationSeconds float64     `json:"durationSeconds"`
	Geometry        []geo.Point `json:"geometry"`
	Steps           []Step      `json:"steps"`
}

// Provider computes routes through an external routing engine. The engine
// is a black box: callers only see success or failure.
//
//go:generate mockgen -source=routing.go -destination=mocks/mock.go -package=mockrouting
type Provider interface {
	Route(ctx context.Context, from, to geo.Point) (*Route, error)
}
