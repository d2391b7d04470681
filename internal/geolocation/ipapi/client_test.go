package ipapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swamyrayudu/localhunt-backend/internal/geolocation"
	"go.uber.org/zap"
)

func TestCurrentPosition(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		expectedError error
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"success","lat":16.5062,"lon":80.648}`))
			},
		},
		{
			name: "provider reports failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"fail","message":"private range"}`))
			},
			expectedError: geolocation.ErrPositionUnavailable,
		},
		{
			name: "missing coordinates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"success"}`))
			},
			expectedError: geolocation.ErrPositionUnavailable,
		},
		{
			name: "permission denied",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			expectedError: geolocation.ErrPermissionDenied,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedError: geolocation.ErrPositionUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := New(server.URL, zap.NewNop())

			position, err := client.CurrentPosition(context.Background(), geolocation.Options{Timeout: time.Second})

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 16.5062, position.Point.Latitude)
			assert.Equal(t, 80.648, position.Point.Longitude)
			assert.False(t, position.Timestamp.IsZero())
		})
	}
}

func TestCurrentPositionTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := New(server.URL, zap.NewNop())

	_, err := client.CurrentPosition(context.Background(), geolocation.Options{Timeout: 20 * time.Millisecond})

	require.ErrorIs(t, err, geolocation.ErrTimeout)
}

func TestCurrentPositionServesCachedFix(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"status":"success","lat":16.5062,"lon":80.648}`))
	}))
	defer server.Close()

	client := New(server.URL, zap.NewNop())
	opts := geolocation.Options{Timeout: time.Second, MaximumAge: 5 * time.Minute}

	_, err := client.CurrentPosition(context.Background(), opts)
	require.NoError(t, err)

	cached, err := client.CurrentPosition(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, requests)
	assert.Equal(t, 16.5062, cached.Point.Latitude)

	// a zero maximum age always forces a fresh fix
	_, err = client.CurrentPosition(context.Background(), geolocation.Options{Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
}

func TestMessageDistinctPerFailureKind(t *testing.T) {
	failures := []error{
		geolocation.ErrUnsupported,
		geolocation.ErrPermissionDenied,
		geolocation.ErrPositionUnavailable,
		geolocation.ErrTimeout,
	}

	seen := make(map[string]bool)
	for _, failure := range failures {
		message := geolocation.Message(failure)
		assert.NotEmpty(t, message)
		assert.False(t, seen[message], "message reused: %s", message)
		seen[message] = true
	}
}
