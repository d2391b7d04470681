package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/swamyrayudu/localhunt-backend/internal/apperror"
	"github.com/swamyrayudu/localhunt-backend/internal/directions"
	"github.com/swamyrayudu/localhunt-backend/internal/geo"
	"github.com/swamyrayudu/localhunt-backend/internal/handlers"
	"github.com/swamyrayudu/localhunt-backend/internal/mapview"
	"github.com/swamyrayudu/localhunt-backend/internal/store"
	"go.uber.org/zap"
)

var validate = validator.New()

// popup actions publish on "map:"-prefixed event topics
const actionTopicPrefix = "map:"

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockdirectionshandler
type Service interface {
	CreateSession(ctx context.Context, stores []store.Location, initialSelectedID string, height int) (*directions.SessionInfo, error)
	GetState(ctx context.Context, id string) (*directions.SessionState, error)
	RequestLocation(ctx context.Context, id string, reported *geo.Point) (*directions.SessionState, error)
	SelectStore(ctx context.Context, id string, storeID string) (*directions.SessionState, error)
	PublishAction(ctx context.Context, id string, topic string, payload string) error
	ClearDirections(ctx context.Context, id string) (*directions.SessionState, error)
	ToggleSteps(ctx context.Context, id string) (*directions.SessionState, error)
	SetStores(ctx context.Context, id string, stores []store.Location) (*directions.SessionState, error)
	NavigationLink(ctx context.Context, id string) (string, error)
	MapView(ctx context.Context, id string) (*mapview.View, error)
	CloseSession(ctx context.Context, id string) error
}

type handler struct {
	service           Service
	sessionMiddleware func(http.Handler) http.Handler
	logger            *zap.Logger
}

func New(service Service, sessionMiddleware func(http.Handler) http.Handler, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:           service,
		sessionMiddleware: sessionMiddleware,
		logger:            logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/map/sessions", func(sessionsRouter chi.Router) {
		sessionsRouter.Post("/", apperror.Middleware(h.CreateSessionHandler))

		sessionsRouter.Route("/{id}", func(sessionRouter chi.Router) {
			sessionRouter.Use(h.sessionMiddleware)

			sessionRouter.Get("/", apperror.Middleware(h.GetStateHandler))
			sessionRouter.Delete("/", apperror.Middleware(h.CloseSessionHandler))
			sessionRouter.Post("/locate", apperror.Middleware(h.LocateHandler))
			sessionRouter.Post("/select/{storeID}", apperror.Middleware(h.SelectStoreHandler))
			sessionRouter.Post("/actions", apperror.Middleware(h.ActionHandler))
			sessionRouter.Post("/directions/clear", apperror.Middleware(h.ClearDirectionsHandler))
			sessionRouter.Post("/directions/steps/toggle", apperror.Middleware(h.ToggleStepsHandler))
			sessionRouter.Put("/stores", apperror.Middleware(h.SetStoresHandler))
			sessionRouter.Get("/view", apperror.Middleware(h.MapViewHandler))
			sessionRouter.Get("/navigation-link", apperror.Middleware(h.NavigationLinkHandler))
		})
	})
}

//	@Tags		map
//	@Param		request	body		CreateSessionRequest	true	"request body"
//	@Success	200		{object}	directions.SessionInfo
//	@Failure	400,500	{object}	apperror.AppError
//	@Router		/map/sessions [post]
func (h *handler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateSessionRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	info, err := h.service.CreateSession(r.Context(), toDomainStores(dto.Stores), dto.InitialSelectedID, dto.Height)
	if err != nil {
		return mapServiceError(err)
	}

	render.JSON(w, r, info)

	return nil
}

//	@Tags		map
//	@Security	ApiKeyAuth
//	@Success	200			{object}	directions.SessionState
//	@Failure	401,403,404	{object}	apperror.AppError
//	@Router		/map/sessions/{id} [get]
func (h *handler) GetStateHandler(w http.ResponseWriter, r *http.Request) error {
	state, err := h.service.GetState(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return mapServiceError(err)
	}

	render.JSON(w, r, state)

	return nil
}

//	@Tags		map
//	@Security	ApiKeyAuth
//	@Success	200
//	@Failure	401,403,404	{object}	apperror.AppError
//	@Router		/map/sessions/{id} [delete]
func (h *handler) CloseSessionHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.CloseSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		return mapServiceError(err)
	}

	return nil
}

//	@Tags		map
//	@Security	ApiKeyAuth
//	@Param		request	body		LocateRequest	true	"request body"
//	@Success	200		{object}	directions.SessionState
//	@Failure	400,401,403,404	{object}	apperror.AppError
//	@Router		/map/sessions/{id}/locate [post]
func (h *handler) LocateHandler(w http.ResponseWriter, r *http.Request) error {
	var dto LocateRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	reported, err := reportedPoint(dto)
	if err != nil {
		return err
	}

	state, err := h.service.RequestLocation(r.Context(), chi.URLParam(r, "id"), reported)
	if err != nil {
		return mapServiceError(err)
	}

	render.JSON(w, r, state)

	return nil
}

//	@Tags		map
//	@Security	ApiKeyAuth
//	@Success	200				{object}	directions.SessionState
//	@Failure	400,401,403,404	{object}	apperror.AppError
//	@Router		/map/sessions/{id}/select/{storeID} [post]
func (h *handler) SelectStoreHandler(w http.ResponseWriter, r *http.Request) error {
	state, err := h.service.SelectStore(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "storeID"))
	if err != nil {
		return mapServiceError(err)
	}

	render.JSON(w, r, state)

	return nil
}

//	@Tags		map
//	@Security	ApiKeyAuth
//	@Param		request	body	ActionRequest	true	"request body"
//	@Success	200
//	@Failure	400,401,403,404	{object}	apperror.AppError
//	@Router		/map/sessions/{id}/actions [post]
func (h *handler) ActionHandler(w http.ResponseWriter, r *http.Request) error {
	var dto ActionRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	err := h.service.PublishAction(r.Context(), chi.URLParam(r, "id"), actionTopicPrefix+dto.Type, dto.StoreID)
	if err != nil {
		return mapServiceError(err)
	}

	return nil
}

//	@Tags		map
//	@Security	ApiKeyAuth
//	@Success	200			{object}	directions.SessionState
//	@Failure	401,403,404	{object}	apperror.AppError
//	@Router		/map/sessions/{id}/directions/clear [post]
func (h *handler) ClearDirectionsHandler(w http.ResponseWriter, r *http.Request) error {
	state, err := h.service.ClearDirections(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return mapServiceError(err)
	}

	render.JSON(w, r, state)

	return nil
}

//	@Tags		map
//	@Security	ApiKeyAuth
//	@Success	200			{object}	directions.SessionState
//	@Failure	401,403,404	{object}	apperror.AppError
//	@Router		/map/sessions/{id}/directions/steps/toggle [post]
func (h *handler) ToggleStepsHandler(w http.ResponseWriter, r *http.Request) error {
	state, err := h.service.ToggleSteps(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return mapServiceError(err)
	}

	render.JSON(w, r, state)

	return nil
}

//	@Tags		map
//	@Security	ApiKeyAuth
//	@Param		request	body		SetStoresRequest	true	"request body"
//	@Success	200		{object}	directions.SessionState
//	@Failure	400,401,403,404	{object}	apperror.AppError
//	@Router		/map/sessions/{id}/stores [put]
func (h *handler) SetStoresHandler(w http.ResponseWriter, r *http.Request) error {
	var dto SetStoresRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	state, err := h.service.SetStores(r.Context(), chi.URLParam(r, "id"), toDomainStores(dto.Stores))
	if err != nil {
		return mapServiceError(err)
	}

	render.JSON(w, r, state)

	return nil
}

//	@Tags		map
//	@Security	ApiKeyAuth
//	@Success	200			{object}	mapview.View
//	@Failure	401,403,404	{object}	apperror.AppError
//	@Router		/map/sessions/{id}/view [get]
func (h *handler) MapViewHandler(w http.ResponseWriter, r *http.Request) error {
	view, err := h.service.MapView(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return mapServiceError(err)
	}

	render.JSON(w, r, view)

	return nil
}

//	@Tags		map
//	@Security	ApiKeyAuth
//	@Success	200				{object}	NavigationLinkResponse
//	@Failure	400,401,403,404	{object}	apperror.AppError
//	@Router		/map/sessions/{id}/navigation-link [get]
func (h *handler) NavigationLinkHandler(w http.ResponseWriter, r *http.Request) error {
	link, err := h.service.NavigationLink(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return mapServiceError(err)
	}

	render.JSON(w, r, NavigationLinkResponse{URL: link})

	return nil
}

func reportedPoint(dto LocateRequest) (*geo.Point, error) {
	if dto.Latitude == nil && dto.Longitude == nil {
		return nil, nil
	}

	if dto.Latitude == nil || dto.Longitude == nil {
		return nil, apperror.NewAppError("latitude and longitude must be provided together")
	}

	return &geo.Point{Latitude: *dto.Latitude, Longitude: *dto.Longitude}, nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, directions.ErrSessionNotFound),
		errors.Is(err, directions.ErrUnknownStore):
		return apperror.ErrNotFound
	case errors.Is(err, directions.ErrStoreNotMappable):
		return apperror.NewAppError("store location is not available on the map")
	case errors.Is(err, directions.ErrNavigationUnavailable):
		return apperror.NewAppError("navigation link requires a located user and a selected store")
	default:
		return err
	}
}
