package geolocation

import (
	"context"
	"errors"
	"time"

	"github.com/swamyrayudu/localhunt-backend/internal/geo"
)

// Failure kinds mirror the device geolocation capability: each one maps to
// its own user-facing message and none of them is fatal to the session.
var (
	ErrUnsupported         = errors.New("geolocation unsupported")
	ErrPermissionDenied    = errors.New("geolocation permission denied")
	ErrPositionUnavailable = errors.New("geolocation position unavailable")
	ErrTimeout             = errors.New("geolocation timeout")
)

// Position is a resolved device fix.
type Position struct {
	Point     geo.Point
	Accuracy  float64
	Timestamp time.Time
}

type Options struct {
	HighAccuracy bool
	// Timeout bounds a single acquisition attempt.
	Timeout time.Duration
	// MaximumAge allows serving a cached fix no older than this.
	MaximumAge time.Duration
}

func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		Timeout:      10 * time.Second,
		MaximumAge:   5 * time.Minute,
	}
}

//go:generate mockgen -source=geolocation.go -destination=mocks/mock.go -package=mockgeolocation
type Locator interface {
	CurrentPosition(ctx context.Context, opts Options) (*Position, error)
}

// Message translates a failure into the inline text shown next to the
// directions controls. Unknown errors fall back to a generic message.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrUnsupported):
		return "Geolocation is not supported on this device"
	case errors.Is(err, ErrPermissionDenied):
		return "Location access was denied. Enable location permissions to get directions"
	case errors.Is(err, ErrPositionUnavailable):
		return "Your location could not be determined right now"
	case errors.Is(err, ErrTimeout):
		return "Locating you took too long. Try updating your location again"
	default:
		return "Unable to get your location"
	}
}
