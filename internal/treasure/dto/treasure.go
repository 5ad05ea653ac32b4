package dto

import (
	"math"
	"net/url"
	"strconv"

	"kitra-backend/pkg/validation"
)

// TreasureQuery is the validated form of the treasure search parameters.
type TreasureQuery struct {
	Latitude  float64
	Longitude float64
	// Distance is the radius class in kilometers, 1 or 10.
	Distance int
	// PrizeValue, when set, restricts results to treasures holding a
	// prize entry of exactly this amount.
	PrizeValue *int
}

// ParseTreasureQuery validates the raw query parameters, collecting one
// error per failing field. No value reaches the query engine unless every
// field parsed cleanly.
func ParseTreasureQuery(values url.Values) (*TreasureQuery, []validation.FieldError) {
	var errs []validation.FieldError
	q := &TreasureQuery{}

	lat, err := strconv.ParseFloat(values.Get("latitude"), 64)
	if err != nil || math.IsNaN(lat) || lat < -90 || lat > 90 {
		errs = append(errs, validation.FieldError{Msg: "Invalid latitude", Path: "latitude"})
	} else {
		q.Latitude = lat
	}

	lng, err := strconv.ParseFloat(values.Get("longitude"), 64)
	if err != nil || math.IsNaN(lng) || lng < -180 || lng > 180 {
		errs = append(errs, validation.FieldError{Msg: "Invalid longitude", Path: "longitude"})
	} else {
		q.Longitude = lng
	}

	distance, err := strconv.Atoi(values.Get("distance"))
	if err != nil || (distance != 1 && distance != 10) {
		errs = append(errs, validation.FieldError{Msg: "Distance must be 1 or 10", Path: "distance"})
	} else {
		q.Distance = distance
	}

	if raw := values.Get("prizeValue"); raw != "" {
		prizeValue, err := strconv.Atoi(raw)
		if err != nil || prizeValue < 10 || prizeValue > 30 {
			errs = append(errs, validation.FieldError{Msg: "Prize value must be between 10 and 30", Path: "prizeValue"})
		} else {
			q.PrizeValue = &prizeValue
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return q, nil
}

type TreasureResult struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	PrizeValue int     `json:"prizeValue"`
}

type TreasureListResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Data    []TreasureResult `json:"data"`
}
