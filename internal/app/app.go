package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/swamyrayudu/localhunt-backend/internal/config"
	directionshandler "github.com/swamyrayudu/localhunt-backend/internal/directions/handler"
	directionsservice "github.com/swamyrayudu/localhunt-backend/internal/directions/service"
	"github.com/swamyrayudu/localhunt-backend/internal/directions/token"
	"github.com/swamyrayudu/localhunt-backend/internal/geolocation"
	"github.com/swamyrayudu/localhunt-backend/internal/geolocation/ipapi"
	"github.com/swamyrayudu/localhunt-backend/internal/metrics"
	"github.com/swamyrayudu/localhunt-backend/internal/routing/osrm"
	storedb "github.com/swamyrayudu/localhunt-backend/internal/store/db"
	storehandler "github.com/swamyrayudu/localhunt-backend/internal/store/handler"
	storeimage "github.com/swamyrayudu/localhunt-backend/internal/store/image"
	storeservice "github.com/swamyrayudu/localhunt-backend/internal/store/service"
	minioclient "github.com/swamyrayudu/localhunt-backend/pkg/client/minio"
	pgclient "github.com/swamyrayudu/localhunt-backend/pkg/client/postgresql"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/swamyrayudu/localhunt-backend/docs"
)

type App struct {
	HTTPServer        *http.Server
	directionsService *directionsservice.Service
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	pgClient, err := pgclient.NewClient(
		context.TODO(),
		pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
		},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	minioClient, err := minioclient.New(minioclient.Config{
		Endpoint:        cfg.Minio.Endpoint,
		AccessKeyID:     cfg.Minio.AccessKeyID,
		SecretAccessKey: cfg.Minio.SecretAccessKey,
		UseSSL:          cfg.Minio.UseSSL,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	router := chi.NewRouter()

	router.Use(
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   cfg.HTTPServer.AllowedMethods,
			AllowedHeaders:   cfg.HTTPServer.AllowedHeaders,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
		metrics.HTTPMiddleware,
	)

	router.Get("/swagger/*", httpSwagger.Handler())
	router.Handle("/metrics", metrics.Handler())

	var app App

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		storeRepository := storedb.New(pgClient, log)

		imageResolver := storeimage.NewResolver(
			minioClient,
			cfg.Minio.ImagesBucket,
			cfg.Minio.ImageURLTTL,
			log,
		)

		storeService := storeservice.New(storeRepository, imageResolver, log)

		locator := ipapi.New(cfg.Geolocation.ProviderURL, log)

		routingProvider := osrm.New(cfg.Routing.BaseURL, cfg.Routing.Profile, cfg.Routing.Timeout, log)

		tokenManager := token.NewManager(cfg.JWT)

		directionsService := directionsservice.New(
			storeService,
			locator,
			routingProvider,
			tokenManager,
			cfg.Map,
			geolocation.Options{
				HighAccuracy: cfg.Geolocation.HighAccuracy,
				Timeout:      cfg.Geolocation.Timeout,
				MaximumAge:   cfg.Geolocation.MaximumAge,
			},
			log,
		)
		app.directionsService = directionsService

		sessionMiddleware := token.NewMiddleware(log, tokenManager)

		storeHandler := storehandler.New(storeService, log)

		log.Info("register store handlers")

		storeHandler.Register(r)

		directionsHandler := directionshandler.New(directionsService, sessionMiddleware, log)

		log.Info("register map session handlers")

		directionsHandler.Register(r)
	})

	app.HTTPServer = &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &app
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic("failed to start server")
	}
}

// Shutdown stops accepting requests and tears down every live map session.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.HTTPServer.Shutdown(ctx)

	if a.directionsService != nil {
		a.directionsService.Stop()
	}

	return err
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
