package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/swamyrayudu/localhunt-backend/internal/config"
	"github.com/swamyrayudu/localhunt-backend/internal/directions"
	"github.com/swamyrayudu/localhunt-backend/internal/directions/controller"
	"github.com/swamyrayudu/localhunt-backend/internal/directions/engine"
	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/geolocation"
	"github.com/swamyrayudu/localhunt-backend/internal/mapview"
	"github.com/swamyrayudu/localhunt-backend/internal/metrics"
	"github.com/swamyrayudu/localhunt-backend/internal/routing"
	"github.com/swamyrayudu/localhunt-backend/internal/store"
	"github.com/swamyrayudu/localhunt-backend/pkg/events"
	"github.com/swamyrayudu/localhunt-backend/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockdirectionsservice

type StoreService interface {
	GetMapLocations(ctx context.Context) ([]store.Location, error)
}

type TokenManager interface {
	GenerateToken(sessionID string) (string, error)
}

type mapSession struct {
	id         string
	controller *controller.Controller
	engine     *engine.Engine
	widget     *mapview.Document
	bus        *events.Bus
	lastActive time.Time
}

// Service is the registry of live map sessions. Each session owns its own
// widget, engine and controller; the registry only routes calls and reaps
// idle sessions.
type Service struct {
	storeService    StoreService
	locator         geolocation.Locator
	routingProvider routing.Provider
	tokenManager    TokenManager
	mapConfig       config.Map
	geoOptions      geolocation.Options
	logger          *zap.Logger

	mu       sync.Mutex
	sessions map[string]*mapSession

	stopOnce sync.Once
	stopCh   chan struct{}
}

func New(
	storeService StoreService,
	locator geolocation.Locator,
	routingProvider routing.Provider,
	tokenManager TokenManager,
	mapConfig config.Map,
	geoOptions geolocation.Options,
	logger *zap.Logger,
) *Service {
	s := &Service{
		storeService:    storeService,
		locator:         locator,
		routingProvider: routingProvider,
		tokenManager:    tokenManager,
		mapConfig:       mapConfig,
		geoOptions:      geoOptions,
		logger:          logger,
		sessions:        make(map[string]*mapSession),
		stopCh:          make(chan struct{}),
	}

	go s.janitor()

	return s
}

// CreateSession builds a new session around the given store list. An empty
// list means "everything mappable from the catalog". Duplicate store ids
// are collapsed, first occurrence wins. The initial selection is applied
// before the response snapshot is taken; only the location auto-request
// runs in the background, so creation does not block on the geolocation
// provider.
func (s *Service) CreateSession(
	ctx context.Context,
	stores []store.Location,
	initialSelectedID string,
	height int,
) (*directions.SessionInfo, error) {
	if len(stores) == 0 {
		catalog, err := s.storeService.GetMapLocations(ctx)
		if err != nil {
			return nil, err
		}
		stores = catalog
	}

	stores = utils.DedupeBy(stores, func(l store.Location) string { return l.ID })

	id := uuid.NewString()

	token, err := s.tokenManager.GenerateToken(id)
	if err != nil {
		s.logger.Error("failed to issue session token", zap.Error(err))

		return nil, err
	}

	bus := events.NewBus()
	widget := mapview.NewDocument(s.routingProvider, s.logger)
	widget.SetHeight(height)
	ctrl := controller.New(stores, initialSelectedID, s.locator, s.geoOptions, s.logger)
	eng := engine.New(widget, bus, engine.Config{
		DefaultCenter: geo.Point{
			Latitude:  s.mapConfig.DefaultLatitude,
			Longitude: s.mapConfig.DefaultLongitude,
		},
		DefaultZoom: s.mapConfig.DefaultZoom,
		FitPadding:  s.mapConfig.FitPadding,
	}, s.logger)

	sess := &mapSession{
		id:         id,
		controller: ctrl,
		engine:     eng,
		widget:     widget,
		bus:        bus,
		lastActive: time.Now(),
	}

	// popup buttons route back into the session's own controller
	eng.Start(nil, func(storeID string) {
		if err := ctrl.SelectStore(storeID); err != nil {
			s.logger.Warn("popup selection rejected",
				zap.String("sessionId", id),
				zap.String("storeId", storeID),
				zap.Error(err),
			)
			return
		}

		s.apply(context.Background(), sess)
	})

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	metrics.ActiveSessions.Inc()

	ctrl.Start()
	s.apply(ctx, sess)

	go func() {
		ctrl.RequestLocation(context.Background())
		s.apply(context.Background(), sess)
	}()

	return &directions.SessionInfo{
		ID:    id,
		Token: token,
		State: ctrl.Snapshot(),
	}, nil
}

func (s *Service) GetState(ctx context.Context, id string) (*directions.SessionState, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	return &directions.SessionState{
		Session:        sess.controller.Snapshot(),
		ScrollIntoView: sess.controller.ConsumeScrollIntoView(),
	}, nil
}

// RequestLocation resolves the user position, either from the coordinates
// the client reported or through the geolocation provider, and reconciles
// the map.
func (s *Service) RequestLocation(ctx context.Context, id string, reported *geo.Point) (*directions.SessionState, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	if reported != nil {
		if err := sess.controller.ReportPosition(*reported); err != nil {
			return nil, err
		}
	} else {
		sess.controller.RequestLocation(ctx)
	}

	s.apply(ctx, sess)

	return s.GetState(ctx, id)
}

func (s *Service) SelectStore(ctx context.Context, id string, storeID string) (*directions.SessionState, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	if err := sess.controller.SelectStore(storeID); err != nil {
		return nil, err
	}

	s.apply(ctx, sess)

	return s.GetState(ctx, id)
}

// PublishAction dispatches a popup action event on the session bus. Only
// the get-directions topic has subscribers today; unknown topics fall
// through silently, matching fire-and-forget event semantics.
func (s *Service) PublishAction(ctx context.Context, id string, topic string, payload string) error {
	sess, err := s.session(id)
	if err != nil {
		return err
	}

	sess.bus.Publish(topic, payload)

	return nil
}

func (s *Service) ClearDirections(ctx context.Context, id string) (*directions.SessionState, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.controller.ClearDirections()
	s.apply(ctx, sess)

	return s.GetState(ctx, id)
}

func (s *Service) ToggleSteps(ctx context.Context, id string) (*directions.SessionState, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.controller.ToggleSteps()

	return s.GetState(ctx, id)
}

func (s *Service) SetStores(ctx context.Context, id string, stores []store.Location) (*directions.SessionState, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.controller.SetStores(utils.DedupeBy(stores, func(l store.Location) string { return l.ID }))
	s.apply(ctx, sess)

	return s.GetState(ctx, id)
}

func (s *Service) NavigationLink(ctx context.Context, id string) (string, error) {
	sess, err := s.session(id)
	if err != nil {
		return "", err
	}

	return sess.controller.NavigationURL()
}

// MapView returns the materialized widget state of one session.
func (s *Service) MapView(ctx context.Context, id string) (*mapview.View, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	view := sess.widget.Snapshot()

	return &view, nil
}

func (s *Service) CloseSession(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok {
		return directions.ErrSessionNotFound
	}

	s.closeSession(sess)

	return nil
}

// Stop tears down the janitor and every live session. Used on shutdown.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})

	s.mu.Lock()
	sessions := make([]*mapSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.sessions = make(map[string]*mapSession)
	s.mu.Unlock()

	for _, sess := range sessions {
		s.closeSession(sess)
	}
}

func (s *Service) session(id string) (*mapSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, directions.ErrSessionNotFound
	}

	sess.lastActive = time.Now()

	return sess, nil
}

// apply reconciles the widget with the controller state. Engine passes are
// serialized internally, so concurrent callers are safe.
func (s *Service) apply(ctx context.Context, sess *mapSession) {
	if err := sess.engine.Apply(ctx, sess.controller.ViewState()); err != nil {
		s.logger.Error("failed to apply map view",
			zap.String("sessionId", sess.id),
			zap.Error(err),
		)
	}
}

func (s *Service) closeSession(sess *mapSession) {
	if err := sess.engine.Close(); err != nil {
		s.logger.Error("failed to close map session",
			zap.String("sessionId", sess.id),
			zap.Error(err),
		)
	}

	metrics.ActiveSessions.Dec()
}

func (s *Service) janitor() {
	ticker := time.NewTicker(s.mapConfig.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Service) sweep() {
	deadline := time.Now().Add(-s.mapConfig.SessionTTL)

	s.mu.Lock()
	var expired []*mapSession
	for id, sess := range s.sessions {
		if sess.lastActive.Before(deadline) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		s.logger.Info("expiring idle map session", zap.String("sessionId", sess.id))
		s.closeSession(sess)
		metrics.SessionsExpired.Inc()
	}
}
