package service

import (
	"context"
	"errors"

	"github.com/swamyrayudu/localhunt-backend/internal/apperror"
	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/store"
	"github.com/swamyrayudu/localhunt-backend/internal/store/db"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockstoreservice

type Repository interface {
	GetMappable(ctx context.Context) ([]store.Location, error)
	GetByID(ctx context.Context, id string) (*store.Location, error)
	GetNearby(ctx context.Context, bounds geo.Bounds) ([]store.Location, error)
}

// ImageResolver resolves a stored image object key to a fetchable URL.
type ImageResolver interface {
	Resolve(ctx context.Context, objectKey string) (string, error)
}

type service struct {
	repository    Repository
	imageResolver ImageResolver
	logger        *zap.Logger
}

func New(
	repository Repository,
	imageResolver ImageResolver,
	logger *zap.Logger,
) *service {
	return &service{
		repository:    repository,
		imageResolver: imageResolver,
		logger:        logger,
	}
}

// GetMapLocations returns the mappable projection with image keys resolved
// to URLs. Only entries with valid coordinates survive.
func (s *service) GetMapLocations(ctx context.Context) ([]store.Location, error) {
	locations, err := s.repository.GetMappable(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching map locations", zap.Error(err))

		return nil, err
	}

	locations = store.FilterMappable(locations)
	s.resolveImages(ctx, locations)

	return locations, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*store.Location, error) {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrLocationNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching location by id", zap.Error(err))

		return nil, err
	}

	single := []store.Location{*existing}
	s.resolveImages(ctx, single)

	return &single[0], nil
}

// GetNearby returns mappable locations within radiusMeters of center,
// bounding-box prefiltered in SQL and refined by haversine distance.
func (s *service) GetNearby(ctx context.Context, center geo.Point, radiusMeters float64) ([]store.Location, error) {
	candidates, err := s.repository.GetNearby(ctx, geo.BoundingBox(center, radiusMeters))
	if err != nil {
		s.logger.Error("unexpected error when fetching nearby locations", zap.Error(err))

		return nil, err
	}

	nearby := make([]store.Location, 0, len(candidates))
	for _, candidate := range candidates {
		point, ok := candidate.Point()
		if !ok {
			continue
		}

		if geo.Haversine(center, point) <= radiusMeters {
			nearby = append(nearby, candidate)
		}
	}

	s.resolveImages(ctx, nearby)

	return nearby, nil
}

// resolveImages swaps image object keys for presigned URLs in place.
// Resolution failures leave the entry without an image rather than failing
// the whole listing.
func (s *service) resolveImages(ctx context.Context, locations []store.Location) {
	for i := range locations {
		if locations[i].Image == nil || *locations[i].Image == "" {
			continue
		}

		resolved, err := s.imageResolver.Resolve(ctx, *locations[i].Image)
		if err != nil {
			locations[i].Image = nil
			continue
		}

		locations[i].Image = &resolved
	}
}
