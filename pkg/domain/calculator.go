package domain

import (
	"github.com/VinothKuppanna/gastimator/internal/utils"
	"github.com/VinothKuppanna/gastimator/pkg/domain/definition"
	"github.com/pkg/errors"
)

// FuelRequired returns litres needed to drive distanceKm at efficiency L/100km.
func FuelRequired(distanceKm float64, efficiency string) (float64, error) {
	value, err := utils.ParseDecimal(efficiency)
	if err != nil {
		return 0, errors.Wrap(definition.ErrInvalidEfficiency, err.Error())
	}
	if value < 0 {
		return 0, errors.Wrapf(definition.ErrInvalidEfficiency, "negative efficiency %v", value)
	}
	if distanceKm < 0 {
		distanceKm = 0
	}
	return (distanceKm / 100) * value, nil
}

// ParseFuelPrice parses a price per litre, which must be strictly positive.
func ParseFuelPrice(fuelPrice string) (float64, error) {
	price, err := utils.ParseDecimal(fuelPrice)
	if err != nil {
		return 0, errors.Wrap(definition.ErrInvalidPrice, err.Error())
	}
	if price <= 0 {
		return 0, errors.Wrapf(definition.ErrInvalidPrice, "non-positive price %v", price)
	}
	return price, nil
}

func TotalCost(fuelRequiredL float64, fuelPrice string) (float64, error) {
	price, err := ParseFuelPrice(fuelPrice)
	if err != nil {
		return 0, err
	}
	return fuelRequiredL * price, nil
}
