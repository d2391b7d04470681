package ipapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/geolocation"
	"go.uber.org/zap"
)

// IP fixes are city-level at best.
const ipFixAccuracyMeters = 25000

// Client resolves an approximate position from an ip-api style endpoint.
// It keeps the last successful fix and serves it while it is younger than
// Options.MaximumAge, the same stale-but-good-enough contract the device
// geolocation capability offers.
type Client struct {
	providerURL string
	httpClient  *http.Client
	logger      *zap.Logger

	mu      sync.Mutex
	lastFix *geolocation.Position
}

func New(providerURL string, logger *zap.Logger) *Client {
	return &Client{
		providerURL: providerURL,
		httpClient:  &http.Client{},
		logger:      logger,
	}
}

type providerResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lon"`
}

func (c *Client) CurrentPosition(ctx context.Context, opts geolocation.Options) (*geolocation.Position, error) {
	if cached := c.cachedFix(opts.MaximumAge); cached != nil {
		return cached, nil
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.providerURL, nil)
	if err != nil {
		return nil, geolocation.ErrUnsupported
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, geolocation.ErrTimeout
		}

		c.logger.Warn("geolocation provider unreachable", zap.Error(err))

		return nil, geolocation.ErrPositionUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, geolocation.ErrPermissionDenied
	case resp.StatusCode != http.StatusOK:
		c.logger.Warn("geolocation provider error", zap.Int("status", resp.StatusCode))

		return nil, geolocation.ErrPositionUnavailable
	}

	var body providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, geolocation.ErrPositionUnavailable
	}

	if body.Status != "success" || body.Latitude == nil || body.Longitude == nil {
		c.logger.Warn("geolocation provider returned no fix", zap.String("message", body.Message))

		return nil, geolocation.ErrPositionUnavailable
	}

	fix := &geolocation.Position{
		Point:     geo.Point{Latitude: *body.Latitude, Longitude: *body.Longitude},
		Accuracy:  ipFixAccuracyMeters,
		Timestamp: time.Now(),
	}

	c.mu.Lock()
	c.lastFix = fix
	c.mu.Unlock()

	return fix, nil
}

func (c *Client) cachedFix(maximumAge time.Duration) *geolocation.Position {
	if maximumAge <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lastFix == nil || time.Since(c.lastFix.Timestamp) > maximumAge {
		return nil
	}

	fix := *c.lastFix

	return &fix
}
