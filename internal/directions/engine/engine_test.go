package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swamyrayudu/localhunt-backend/internal/directions"
	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/mapview"
	mockmapview "github.com/swamyrayudu/localhunt-backend/internal/mapview/mocks"
	"github.com/swamyrayudu/localhunt-backend/internal/store"
	"github.com/swamyrayudu/localhunt-backend/pkg/events"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrStr(v string) *string     { return &v }

var testConfig = Config{
	DefaultCenter: geo.Point{Latitude: 16.5062, Longitude: 80.648},
	DefaultZoom:   12,
	FitPadding:    50,
}

func testStores() []store.Location {
	return []store.Location{
		{ID: "a", Latitude: ptrFloat(35.0), Longitude: ptrFloat(139.0), ShopName: ptrStr("A")},
		{ID: "b", ShopName: ptrStr("B")}, // not mappable
	}
}

// allowChrome relaxes the calls every apply pass makes around the
// assertions under test.
func allowChrome(widget *mockmapview.MockWidget) {
	widget.EXPECT().ScrollOffset().Return(120).AnyTimes()
	widget.EXPECT().RestoreScroll(120).AnyTimes()
	widget.EXPECT().RemoveStoreMarkers().AnyTimes()
	widget.EXPECT().AddStoreMarker(gomock.Any()).AnyTimes()
	widget.EXPECT().FitBounds(gomock.Any(), gomock.Any()).AnyTimes()
	widget.EXPECT().SetView(gomock.Any(), gomock.Any()).AnyTimes()
	widget.EXPECT().ShowUserMarker(gomock.Any()).AnyTimes()
	widget.EXPECT().MoveUserMarker(gomock.Any()).AnyTimes()
}

func TestStartIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	widget := mockmapview.NewMockWidget(ctrl)
	widget.EXPECT().ScrollOffset().Return(0).Times(1)
	widget.EXPECT().SetView(testConfig.DefaultCenter, 12).Times(1)
	widget.EXPECT().RestoreScroll(0).Times(1)

	e := New(widget, nil, testConfig, zap.NewNop())

	e.Start(nil, nil)
	e.Start(nil, nil)
}

func TestStartCentersOnKnownUserLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	location := geo.Point{Latitude: 35.5, Longitude: 139.5}

	widget := mockmapview.NewMockWidget(ctrl)

	// the initial centering is scroll-contained like every other pass
	gomock.InOrder(
		widget.EXPECT().ScrollOffset().Return(80),
		widget.EXPECT().SetView(location, 12),
		widget.EXPECT().RestoreScroll(80),
	)

	e := New(widget, nil, testConfig, zap.NewNop())

	e.Start(&location, nil)
}

func TestApplyRequiresStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := New(mockmapview.NewMockWidget(ctrl), nil, testConfig, zap.NewNop())

	err := e.Apply(context.Background(), directions.ViewState{})

	require.ErrorIs(t, err, ErrNotStarted)
}

func TestApplyRendersOnlyMappableMarkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	widget := mockmapview.NewMockWidget(ctrl)
	widget.EXPECT().SetView(gomock.Any(), gomock.Any()).AnyTimes()
	// one capture in Start, one in Apply; Apply restores twice
	widget.EXPECT().ScrollOffset().Return(0).Times(2)
	widget.EXPECT().RestoreScroll(0).Times(3)

	var rendered []mapview.Marker
	gomock.InOrder(
		widget.EXPECT().RemoveStoreMarkers(),
		widget.EXPECT().AddStoreMarker(gomock.Any()).Do(func(m mapview.Marker) {
			rendered = append(rendered, m)
		}),
		widget.EXPECT().FitBounds(geo.Bounds{
			SouthWest: geo.Point{Latitude: 35.0, Longitude: 139.0},
			NorthEast: geo.Point{Latitude: 35.0, Longitude: 139.0},
		}, 50),
	)

	e := New(widget, nil, testConfig, zap.NewNop())
	e.Start(nil, nil)

	err := e.Apply(context.Background(), directions.ViewState{Stores: testStores()})
	require.NoError(t, err)

	require.Len(t, rendered, 1)
	assert.Equal(t, "a", rendered[0].ID)
	assert.Equal(t, "A", rendered[0].Tooltip)
	assert.Equal(t, "a", rendered[0].Popup.DirectionsAction)
}

func TestApplyWithoutMappableStoresSkipsFit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	widget := mockmapview.NewMockWidget(ctrl)
	widget.EXPECT().SetView(gomock.Any(), gomock.Any())
	widget.EXPECT().ScrollOffset().Return(0).Times(2)
	widget.EXPECT().RestoreScroll(0).Times(3)
	widget.EXPECT().RemoveStoreMarkers()

	e := New(widget, nil, testConfig, zap.NewNop())
	e.Start(nil, nil)

	err := e.Apply(context.Background(), directions.ViewState{
		Stores: []store.Location{{ID: "b"}},
	})

	require.NoError(t, err)
}

func TestUserMarkerCreatedOnceThenMoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := geo.Point{Latitude: 16.5, Longitude: 80.6}
	second := geo.Point{Latitude: 16.6, Longitude: 80.7}

	widget := mockmapview.NewMockWidget(ctrl)
	widget.EXPECT().ScrollOffset().Return(0).AnyTimes()
	widget.EXPECT().RestoreScroll(0).AnyTimes()
	widget.EXPECT().RemoveStoreMarkers().AnyTimes()
	widget.EXPECT().SetView(testConfig.DefaultCenter, 12)

	gomock.InOrder(
		widget.EXPECT().ShowUserMarker(first),
		widget.EXPECT().SetView(first, 12),
		widget.EXPECT().MoveUserMarker(second),
		widget.EXPECT().SetView(second, 12),
	)

	e := New(widget, nil, testConfig, zap.NewNop())
	e.Start(nil, nil)

	require.NoError(t, e.Apply(context.Background(), directions.ViewState{UserLocation: &first}))
	// unchanged location: no move, no pan
	require.NoError(t, e.Apply(context.Background(), directions.ViewState{UserLocation: &first}))
	require.NoError(t, e.Apply(context.Background(), directions.ViewState{UserLocation: &second}))
}

func TestOverlayLifecycleSingleOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := geo.Point{Latitude: 16.5, Longitude: 80.6}
	storeA := geo.Point{Latitude: 35.0, Longitude: 139.0}

	widget := mockmapview.NewMockWidget(ctrl)
	allowChrome(widget)

	gomock.InOrder(
		widget.EXPECT().AddRouteOverlay(gomock.Any(), user, storeA).Return(nil),
		widget.EXPECT().RemoveRouteOverlay().Return(nil),
		widget.EXPECT().AddRouteOverlay(gomock.Any(), user, storeA).Return(nil),
	)

	e := New(widget, nil, testConfig, zap.NewNop())
	e.Start(nil, nil)

	withDirections := directions.ViewState{
		Stores:          testStores(),
		UserLocation:    &user,
		SelectedStoreID: "a",
		ShowDirections:  true,
	}

	require.NoError(t, e.Apply(context.Background(), withDirections))
	// same target: the existing overlay is kept, not duplicated
	require.NoError(t, e.Apply(context.Background(), withDirections))

	// clearing removes the overlay
	require.NoError(t, e.Apply(context.Background(), directions.ViewState{
		Stores:       testStores(),
		UserLocation: &user,
	}))

	// selecting again creates exactly one new overlay
	require.NoError(t, e.Apply(context.Background(), withDirections))
}

func TestOverlayRemovedBeforeReplacement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := geo.Point{Latitude: 16.5, Longitude: 80.6}
	storeA := geo.Point{Latitude: 35.0, Longitude: 139.0}
	storeC := geo.Point{Latitude: 36.0, Longitude: 138.0}

	stores := append(testStores(), store.Location{
		ID: "c", Latitude: ptrFloat(36.0), Longitude: ptrFloat(138.0),
	})

	widget := mockmapview.NewMockWidget(ctrl)
	allowChrome(widget)

	gomock.InOrder(
		widget.EXPECT().AddRouteOverlay(gomock.Any(), user, storeA).Return(nil),
		widget.EXPECT().RemoveRouteOverlay().Return(nil),
		widget.EXPECT().AddRouteOverlay(gomock.Any(), user, storeC).Return(nil),
	)

	e := New(widget, nil, testConfig, zap.NewNop())
	e.Start(nil, nil)

	base := directions.ViewState{Stores: stores, UserLocation: &user, ShowDirections: true}

	viewA := base
	viewA.SelectedStoreID = "a"
	require.NoError(t, e.Apply(context.Background(), viewA))

	viewC := base
	viewC.SelectedStoreID = "c"
	require.NoError(t, e.Apply(context.Background(), viewC))
}

func TestOverlayConstructionErrorDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := geo.Point{Latitude: 16.5, Longitude: 80.6}

	widget := mockmapview.NewMockWidget(ctrl)
	allowChrome(widget)

	widget.EXPECT().
		AddRouteOverlay(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("routing control blew up"))
	// no RemoveRouteOverlay expected: nothing was registered

	e := New(widget, nil, testConfig, zap.NewNop())
	e.Start(nil, nil)

	withDirections := directions.ViewState{
		Stores:          testStores(),
		UserLocation:    &user,
		SelectedStoreID: "a",
		ShowDirections:  true,
	}

	require.NoError(t, e.Apply(context.Background(), withDirections))

	// clearing afterwards must not try to remove a half-registered overlay
	require.NoError(t, e.Apply(context.Background(), directions.ViewState{
		Stores:       testStores(),
		UserLocation: &user,
	}))
}

func TestSelectingUnmappableStoreRendersNoOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := geo.Point{Latitude: 16.5, Longitude: 80.6}

	widget := mockmapview.NewMockWidget(ctrl)
	allowChrome(widget)
	// no AddRouteOverlay expectation: store "b" has no coordinates

	e := New(widget, nil, testConfig, zap.NewNop())
	e.Start(nil, nil)

	require.NoError(t, e.Apply(context.Background(), directions.ViewState{
		Stores:          testStores(),
		UserLocation:    &user,
		SelectedStoreID: "b",
		ShowDirections:  true,
	}))
}

func TestCloseRemovesOverlayBeforeWidget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := geo.Point{Latitude: 16.5, Longitude: 80.6}

	widget := mockmapview.NewMockWidget(ctrl)
	allowChrome(widget)

	gomock.InOrder(
		widget.EXPECT().AddRouteOverlay(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		widget.EXPECT().RemoveRouteOverlay().Return(nil),
		widget.EXPECT().Close().Return(nil),
	)

	e := New(widget, nil, testConfig, zap.NewNop())
	e.Start(nil, nil)

	require.NoError(t, e.Apply(context.Background(), directions.ViewState{
		Stores:          testStores(),
		UserLocation:    &user,
		SelectedStoreID: "a",
		ShowDirections:  true,
	}))

	require.NoError(t, e.Close())
	// second close is a no-op
	require.NoError(t, e.Close())

	// applies after close are rejected
	assert.ErrorIs(t, e.Apply(context.Background(), directions.ViewState{}), ErrClosed)
}

func TestPopupSelectionBus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	widget := mockmapview.NewMockWidget(ctrl)
	widget.EXPECT().ScrollOffset().Return(0)
	widget.EXPECT().SetView(gomock.Any(), gomock.Any())
	widget.EXPECT().RestoreScroll(0)
	widget.EXPECT().Close().Return(nil)

	bus := events.NewBus()

	var selected []string
	e := New(widget, bus, testConfig, zap.NewNop())
	e.Start(nil, func(storeID string) { selected = append(selected, storeID) })

	bus.Publish(TopicGetDirections, "a")
	require.Equal(t, []string{"a"}, selected)

	// the subscription dies with the engine
	require.NoError(t, e.Close())
	bus.Publish(TopicGetDirections, "a")
	assert.Equal(t, []string{"a"}, selected)
}
