//go:build wireinject
// +build wireinject

package di

import (
	"net/http"

	"github.com/VinothKuppanna/gastimator/configs"
	"github.com/VinothKuppanna/gastimator/internal/endpoints/gastimator"
	"github.com/VinothKuppanna/gastimator/internal/middleware/logging"
	"github.com/VinothKuppanna/gastimator/pkg/data"
	"github.com/VinothKuppanna/gastimator/pkg/domain"
	"github.com/go-kit/log"
	"github.com/google/wire"
)

func InitHTTPHandler(cfg *configs.Config, logger log.Logger, publisher logging.Publisher) (http.Handler, error) {
	wire.Build(
		provideMapsClient,
		provideDistancesService,
		providePlacesService,
		provideSessionsRepository,
		provideGastimator,
		provideCurrency,
		gastimator.NewHandler,
		wire.Bind(new(gastimator.Gastimations), new(*domain.Gastimator)),
		wire.Bind(new(gastimator.Sessions), new(*data.SessionsRepository)),
		provideRouter,
		provideHTTPHandler,
	)
	return nil, nil
}
