package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/swamyrayudu/localhunt-backend/internal/apperror"
	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/handlers"
	"github.com/swamyrayudu/localhunt-backend/internal/store"
	"go.uber.org/zap"
)

var validate = validator.New()

const defaultRadiusMeters = 5000

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockstorehandler
type Service interface {
	GetMapLocations(ctx context.Context) ([]store.Location, error)
	GetByID(ctx context.Context, id string) (*store.Location, error)
	GetNearby(ctx context.Context, center geo.Point, radiusMeters float64) ([]store.Location, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/stores", func(storeRouter chi.Router) {
		storeRouter.Get("/locations", apperror.Middleware(h.GetLocationsHandler))
		storeRouter.Get("/locations/nearby", apperror.Middleware(h.GetNearbyHandler))
		storeRouter.Get("/locations/{id}", apperror.Middleware(h.GetLocationHandler))
	})
}

//	@Tags		stores
//	@Success	200		{object}	LocationsResponse
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/stores/locations [get]
func (h *handler) GetLocationsHandler(w http.ResponseWriter, r *http.Request) error {
	locations, err := h.service.GetMapLocations(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, LocationsResponse{Locations: locations})

	return nil
}

//	@Tags		stores
//	@Success	200		{object}	LocationResponse
//	@Failure	404,500	{object}	apperror.AppError
//	@Param		id		path		string	true	"Location ID"
//	@Router		/stores/locations/{id} [get]
func (h *handler) GetLocationHandler(w http.ResponseWriter, r *http.Request) error {
	location, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, LocationResponse{Location: *location})

	return nil
}

//	@Tags		stores
//	@Success	200		{object}	LocationsResponse
//	@Failure	400,500	{object}	apperror.AppError
//	@Param		lat		query		number	true	"Latitude"
//	@Param		lng		query		number	true	"Longitude"
//	@Param		radius	query		number	false	"Radius in meters"
//	@Router		/stores/locations/nearby [get]
func (h *handler) GetNearbyHandler(w http.ResponseWriter, r *http.Request) error {
	query, err := parseNearbyQuery(r)
	if err != nil {
		return err
	}

	if err := validate.Struct(query); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return apperror.NewValidationErr(validationErrs)
		}
		return err
	}

	locations, err := h.service.GetNearby(
		r.Context(),
		geo.Point{Latitude: query.Latitude, Longitude: query.Longitude},
		query.Radius,
	)
	if err != nil {
		return err
	}

	render.JSON(w, r, LocationsResponse{Locations: locations})

	return nil
}

func parseNearbyQuery(r *http.Request) (*nearbyQuery, error) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		return nil, apperror.NewAppError("lat should be a number")
	}

	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		return nil, apperror.NewAppError("lng should be a number")
	}

	radius := float64(defaultRadiusMeters)
	if raw := r.URL.Query().Get("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, apperror.NewAppError("radius should be a number")
		}
	}

	return &nearbyQuery{Latitude: lat, Longitude: lng, Radius: radius}, nil
}
