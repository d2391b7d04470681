package mapview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/routing"
	mockrouting "github.com/swamyrayudu/localhunt-backend/internal/routing/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestDocumentMarkers(t *testing.T) {
	doc := NewDocument(nil, zap.NewNop())

	doc.AddStoreMarker(Marker{ID: "a", Point: geo.Point{Latitude: 35, Longitude: 139}})
	doc.AddStoreMarker(Marker{ID: "b", Point: geo.Point{Latitude: 36, Longitude: 138}})

	view := doc.Snapshot()
	require.Len(t, view.Markers, 2)

	doc.RemoveStoreMarkers()

	view = doc.Snapshot()
	assert.Empty(t, view.Markers)
	assert.Nil(t, view.Bounds)
}

func TestDocumentUserMarker(t *testing.T) {
	doc := NewDocument(nil, zap.NewNop())

	// moving before the marker exists does nothing
	doc.MoveUserMarker(geo.Point{Latitude: 1})
	assert.Nil(t, doc.Snapshot().UserMarker)

	doc.ShowUserMarker(geo.Point{Latitude: 35, Longitude: 139})
	doc.MoveUserMarker(geo.Point{Latitude: 35.5, Longitude: 139.5})

	marker := doc.Snapshot().UserMarker
	require.NotNil(t, marker)
	assert.Equal(t, 35.5, marker.Latitude)
}

func TestDocumentFitBoundsRecenters(t *testing.T) {
	doc := NewDocument(nil, zap.NewNop())

	bounds := geo.Bounds{
		SouthWest: geo.Point{Latitude: 34, Longitude: 138},
		NorthEast: geo.Point{Latitude: 36, Longitude: 140},
	}
	doc.FitBounds(bounds, 50)

	view := doc.Snapshot()
	require.NotNil(t, view.Bounds)
	assert.Equal(t, geo.Point{Latitude: 35, Longitude: 139}, view.Center)
}

func TestDocumentRouteOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := geo.Point{Latitude: 16.5, Longitude: 80.6}
	to := geo.Point{Latitude: 35, Longitude: 139}

	mockProvider := mockrouting.NewMockProvider(ctrl)
	mockProvider.EXPECT().
		Route(gomock.Any(), from, to).
		Return(&routing.Route{From: from, To: to, DistanceMeters: 100}, nil)

	doc := NewDocument(mockProvider, zap.NewNop())

	require.NoError(t, doc.AddRouteOverlay(context.Background(), from, to))
	require.NotNil(t, doc.Snapshot().Route)

	require.NoError(t, doc.RemoveRouteOverlay())
	assert.Nil(t, doc.Snapshot().Route)
}

func TestDocumentRouteOverlayProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mockrouting.NewMockProvider(ctrl)
	mockProvider.EXPECT().
		Route(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("engine down"))

	doc := NewDocument(mockProvider, zap.NewNop())

	err := doc.AddRouteOverlay(context.Background(), geo.Point{}, geo.Point{Latitude: 1})

	require.Error(t, err)
	assert.Nil(t, doc.Snapshot().Route)
}

func TestDocumentRouteOverlayWithoutProvider(t *testing.T) {
	doc := NewDocument(nil, zap.NewNop())

	err := doc.AddRouteOverlay(context.Background(), geo.Point{}, geo.Point{Latitude: 1})

	require.Error(t, err)
}

func TestDocumentClose(t *testing.T) {
	doc := NewDocument(nil, zap.NewNop())

	doc.AddStoreMarker(Marker{ID: "a"})

	require.NoError(t, doc.Close())
	assert.ErrorIs(t, doc.Close(), ErrWidgetClosed)

	// mutations after close are ignored
	doc.AddStoreMarker(Marker{ID: "b"})
	doc.ShowUserMarker(geo.Point{Latitude: 1})

	view := doc.Snapshot()
	assert.Empty(t, view.Markers)
	assert.Nil(t, view.UserMarker)
}
