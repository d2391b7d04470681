package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/metrics"
	"github.com/swamyrayudu/localhunt-backend/internal/routing"
	"go.uber.org/zap"
)

// Client computes routes against an OSRM HTTP endpoint.
type Client struct {
	baseURL    string
	profile    string
	httpClient *http.Client
	logger     *zap.Logger
}

func New(baseURL, profile string, timeout time.Duration, logger *zap.Logger) *Client {
	if profile == "" {
		profile = "driving"
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		profile:    profile,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Legs []struct {
			Steps []struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
				Name     string  `json:"name"`
				Maneuver struct {
					Type     string    `json:"type"`
					Modifier string    `json:"modifier"`
					Location []float64 `json:"location"`
				} `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

func (c *Client) Route(ctx context.Context, from, to geo.Point) (*routing.Route, error) {
	// OSRM takes lng,lat pairs
	url := fmt.Sprintf(
		"%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=geojson&steps=true&alternatives=false",
		c.baseURL,
		c.profile,
		from.Longitude, from.Latitude,
		to.Longitude, to.Latitude,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RouteErrors.Inc()

		return nil, fmt.Errorf("routing engine unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		metrics.RouteErrors.Inc()

		return nil, fmt.Errorf("routing engine returned status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.RouteErrors.Inc()

		return nil, fmt.Errorf("failed to decode routing response: %w", err)
	}

	if body.Code != "Ok" || len(body.Routes) == 0 {
		c.logger.Warn("routing engine found no route",
			zap.String("code", body.Code),
			zap.String("message", body.Message),
		)

		return nil, routing.ErrNoRoute
	}

	best := body.Routes[0]

	route := &routing.Route{
		From:            from,
		To:              to,
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
	}

	for _, pair := range best.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		route.Geometry = append(route.Geometry, geo.Point{Latitude: pair[1], Longitude: pair[0]})
	}

	for _, leg := range best.Legs {
		for _, step := range leg.Steps {
			s := routing.Step{
				Instruction:     buildInstruction(step.Maneuver.Type, step.Maneuver.Modifier, step.Name),
				DistanceMeters:  step.Distance,
				DurationSeconds: step.Duration,
			}
			if len(step.Maneuver.Location) >= 2 {
				s.Location = geo.Point{Latitude: step.Maneuver.Location[1], Longitude: step.Maneuver.Location[0]}
			}
			route.Steps = append(route.Steps, s)
		}
	}

	metrics.RoutesComputed.Inc()

	return route, nil
}

func buildInstruction(maneuverType, modifier, road string) string {
	var sb strings.Builder

	switch maneuverType {
	case "depart":
		sb.WriteString("Head out")
	case "arrive":
		sb.WriteString("Arrive at your destination")
	case "turn", "end of road", "fork":
		sb.WriteString("Turn")
		if modifier != "" {
			sb.WriteString(" " + modifier)
		}
	case "roundabout", "rotary":
		sb.WriteString("Take the roundabout")
	case "merge":
		sb.WriteString("Merge")
		if modifier != "" {
			sb.WriteString(" " + modifier)
		}
	case "continue", "new name":
		sb.WriteString("Continue")
		if modifier != "" && modifier != "straight" {
			sb.WriteString(" " + modifier)
		}
	default:
		sb.WriteString("Continue")
	}

	if road != "" && maneuverType != "arrive" {
		sb.WriteString(" onto " + road)
	}

	return sb.String()
}
