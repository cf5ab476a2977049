package data

import (
	"context"

	"github.com/VinothKuppanna/gastimator/pkg/domain/definition"
	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

const elementStatusOK = "OK"

type distancesService struct {
	client *maps.Client
}

func (d *distancesService) FindDistance(ctx context.Context, request *definition.FindDistanceRequest) *definition.FindDistanceResponse {
	response := &definition.FindDistanceResponse{}
	distanceRequest := maps.DistanceMatrixRequest{
		Origins:      []string{request.Origin},
		Destinations: []string{request.Destination},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	}
	distanceResponse, err := d.client.DistanceMatrix(ctx, &distanceRequest)
	if err != nil {
		response.Error = &definition.DistanceLookupError{Err: errors.Wrap(err, "DistancesService.FindDistance")}
		return response
	}
	if rows := distanceResponse.Rows; len(rows) > 0 {
		if elements := rows[0].Elements; len(elements) > 0 && elements[0] != nil {
			element := elements[0]
			if element.Status != elementStatusOK {
				response.Error = &definition.DistanceLookupError{Status: element.Status}
				return response
			}
			response.Result = &definition.Distance{Meters: element.Distance.Meters}
			return response
		}
	}
	response.Error = &definition.DistanceLookupError{Err: errors.New("DistancesService.FindDistance: empty distance matrix")}
	return response
}

func NewDistancesService(client *maps.Client) definition.DistancesService {
	return &distancesService{client}
}
