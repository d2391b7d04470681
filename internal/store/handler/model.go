package handler

import "github.com/swamyrayudu/localhunt-backend/internal/store"

type LocationsResponse struct {
	Locations []store.Location `json:"locations"`
}

type LocationResponse struct {
	Location store.Location `json:"location"`
}

type nearbyQuery struct {
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
	Radius    float64 `validate:"min=1,max=100000"`
}
