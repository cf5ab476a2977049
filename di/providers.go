package di

import (
	"fmt"
	"net/http"

	"github.com/VinothKuppanna/gastimator/configs"
	"github.com/VinothKuppanna/gastimator/internal/common"
	"github.com/VinothKuppanna/gastimator/internal/endpoints/distances"
	"github.com/VinothKuppanna/gastimator/internal/endpoints/gastimator"
	"github.com/VinothKuppanna/gastimator/internal/endpoints/healthcheck"
	"github.com/VinothKuppanna/gastimator/internal/endpoints/places"
	"github.com/VinothKuppanna/gastimator/internal/middleware/logging"
	"github.com/VinothKuppanna/gastimator/pkg/data"
	"github.com/VinothKuppanna/gastimator/pkg/domain"
	"github.com/VinothKuppanna/gastimator/pkg/domain/definition"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"googlemaps.github.io/maps"
)

func provideMapsClient(cfg *configs.Config) (*maps.Client, error) {
	options := []maps.ClientOption{maps.WithAPIKey(cfg.Maps.APIKey)}
	if len(cfg.Maps.BaseURL) > 0 {
		options = append(options, maps.WithBaseURL(cfg.Maps.BaseURL))
	}
	if cfg.Maps.RequestsPerSecond > 0 {
		options = append(options, maps.WithRateLimit(cfg.Maps.RequestsPerSecond))
	}
	return maps.NewClient(options...)
}

func provideDistancesService(client *maps.Client, logger log.Logger) definition.DistancesService {
	return data.NewDistancesLoggingMiddleware(logger)(data.NewDistancesService(client))
}

func providePlacesService(client *maps.Client, cfg *configs.Config, logger log.Logger) definition.PlacesService {
	service := data.NewPlacesService(client, data.PlacesCountry(cfg.Maps.Country))
	return data.NewPlacesLoggingMiddleware(logger)(service)
}

func provideSessionsRepository(cfg *configs.Config) *data.SessionsRepository {
	return data.NewSessionsRepository(data.SessionTTL(cfg.Session.TTL))
}

func provideGastimator(distances definition.DistancesService, cfg *configs.Config, logger log.Logger) *domain.Gastimator {
	return domain.NewGastimator(distances, cfg.LookupTimeout, log.With(logger, "component", "gastimator"))
}

func provideCurrency(cfg *configs.Config) gastimator.Currency {
	return gastimator.Currency(cfg.Currency)
}

func provideRouter(
	logger log.Logger,
	publisher logging.Publisher,
	page *gastimator.Handler,
	distancesService definition.DistancesService,
	placesService definition.PlacesService,
	sessions *data.SessionsRepository,
) *mux.Router {
	router := mux.NewRouter()
	router.MethodNotAllowedHandler = http.HandlerFunc(common.MethodNotAllowed)
	logging.New(publisher, logger).Setup(router)

	healthcheck.SetupRouts(router, sessions)
	distances.NewHandler(distancesService, logger).SetupRouts(router)
	places.NewHandler(placesService, logger).SetupRouts(router)
	page.SetupRouts(router)
	return router
}

func provideHTTPHandler(router *mux.Router, cfg *configs.Config, logger log.Logger) http.Handler {
	var handler http.Handler = router
	if origins := cfg.Server.AllowedOrigins; len(origins) > 0 {
		handler = handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(handler)
	}
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{logger}),
		handlers.PrintRecoveryStack(true),
	)(handler)
}

type recoveryLogger struct {
	logger log.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	_ = level.Error(l.logger).Log("msg", "recovered from panic", "err", fmt.Sprint(v...))
}
