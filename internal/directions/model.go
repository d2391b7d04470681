package directions

import (
	"errors"

	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/store"
)

var (
	ErrSessionNotFound       = errors.New("map session not found")
	ErrUnknownStore          = errors.New("unknown store")
	ErrStoreNotMappable      = errors.New("store has no mappable location")
	ErrNavigationUnavailable = errors.New("navigation link requires a user location and a selected store")
)

// Session is the user-visible directions state of one map session.
// Invariant: ShowDirections implies SelectedStore is non-nil.
type Session struct {
	UserLocation   *geo.Point      `json:"userLocation"`
	SelectedStore  *store.Location `json:"selectedStore"`
	ShowDirections bool            `json:"showDirections"`
	LocationError  string          `json:"locationError,omitempty"`
	IsLocating     bool            `json:"isLocating"`
	StepsExpanded  bool            `json:"stepsExpanded"`
}

// ViewState is the declarative input the map engine synchronizes the
// widget against.
type ViewState struct {
	Stores          []store.Location
	UserLocation    *geo.Point
	SelectedStoreID string
	ShowDirections  bool
}

// SessionState is the session snapshot plus the one-shot scroll effect.
type SessionState struct {
	Session
	ScrollIntoView bool `json:"scrollIntoView"`
}

// SessionInfo is returned on session creation.
type SessionInfo struct {
	ID    string  `json:"id"`
	Token string  `json:"token"`
	State Session `json:"state"`
}
