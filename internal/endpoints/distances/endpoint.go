package distances

import (
	"context"

	"github.com/VinothKuppanna/gastimator/pkg/domain/definition"
	"github.com/go-kit/kit/endpoint"
)

type endpoints struct {
	findDistance endpoint.Endpoint
}

func makeEndpoints(service definition.DistancesService) *endpoints {
	return &endpoints{findDistance: makeFindDistanceEndpoint(service)}
}

type findDistanceRequest struct {
	origin      string
	destination string
}

type findDistanceResponse struct {
	miles float64
}

// The endpoint reports miles for compatibility with existing API clients;
// the web form works in kilometers from the same meter value.
func makeFindDistanceEndpoint(service definition.DistancesService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(*findDistanceRequest)
		response := service.FindDistance(ctx, &definition.FindDistanceRequest{
			Origin:      req.origin,
			Destination: req.destination,
		})
		if response.Error != nil {
			return nil, response.Error
		}
		if response.Result == nil {
			return nil, &definition.DistanceLookupError{}
		}
		return &findDistanceResponse{miles: response.Result.Miles()}, nil
	}
}
