package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"airquality-api/internal/models"
	"airquality-api/internal/services/forecast"
)

const (
	msgCoordinatesRequired        = "Latitude and longitude are required."
	msgCoordinatesInvalid         = "Invalid latitude or longitude format."
	msgLatitudeRange              = "Latitude must be between -90 and 90"
	msgLongitudeRange             = "Longitude must be between -180 and 180"
	msgPredictCoordinatesRequired = "Latitude and longitude are required for prediction."
	msgPredictionHoursInvalid     = "prediction_hours must be a list of positive integers."
	msgPredictInvalid             = "Invalid latitude, longitude, or prediction_hours format."
	msgModelNotLoaded             = "ML model not loaded. Cannot make predictions. Please check server logs."
)

var (
	errMissing = errors.New("missing value")
	errFormat  = errors.New("invalid format")
)

// coordinateParams is a parsed coordinate pair awaiting range validation.
type coordinateParams struct {
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
}

// forecastParams is a parsed forecast request awaiting validation.
type forecastParams struct {
	Latitude        float64 `validate:"gte=-90,lte=90"`
	Longitude       float64 `validate:"gte=-180,lte=180"`
	PredictionHours []int   `validate:"min=1,dive,gt=0,lte=8760"`
}

// validationMessage maps the first failed field to its client message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return msgPredictInvalid
	}

	// dive errors are reported as PredictionHours[i]
	field := verrs[0].Field()
	switch {
	case field == "Latitude":
		return msgLatitudeRange
	case field == "Longitude":
		return msgLongitudeRange
	case strings.HasPrefix(field, "PredictionHours"):
		return msgPredictionHoursInvalid
	}
	return msgPredictInvalid
}

func parseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errMissing
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errFormat
	}
	return v, nil
}

// parseCoordinateJSON accepts a JSON number or a string holding one.
func parseCoordinateJSON(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, errMissing
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, errFormat
		}
		return parseCoordinate(s)
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, errFormat
	}
	return v, nil
}

// parseHours accepts a JSON array of integer literals. Floats, strings and
// booleans are rejected even when they hold a whole number.
func parseHours(raw json.RawMessage) ([]int, error) {
	if raw == nil {
		return append([]int(nil), forecast.DefaultHours...), nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, errFormat
	}

	hours := make([]int, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || (item[0] != '-' && (item[0] < '0' || item[0] > '9')) {
			return nil, errFormat
		}

		n, err := json.Number(item).Int64()
		if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
			return nil, errFormat
		}
		hours = append(hours, int(n))
	}
	return hours, nil
}

// predictBody keeps each field raw so presence and type can be checked
// separately.
type predictBody struct {
	Latitude        json.RawMessage `json:"latitude"`
	Longitude       json.RawMessage `json:"longitude"`
	PredictionHours json.RawMessage `json:"prediction_hours"`
}

// requestError is a rejected request with the message shown to the client.
type requestError struct {
	message string
}

func (e *requestError) Error() string { return e.message }

func badRequest(msg string) error {
	return &requestError{message: msg}
}

func (r *routes) parseCurrentQuery(latRaw, lonRaw string) (models.Coordinate, error) {
	lat, latErr := parseCoordinate(latRaw)
	lon, lonErr := parseCoordinate(lonRaw)

	switch {
	case errors.Is(latErr, errMissing) || errors.Is(lonErr, errMissing):
		return models.Coordinate{}, badRequest(msgCoordinatesRequired)
	case latErr != nil || lonErr != nil:
		return models.Coordinate{}, badRequest(msgCoordinatesInvalid)
	}

	params := coordinateParams{Latitude: lat, Longitude: lon}
	if err := r.validate.Struct(params); err != nil {
		return models.Coordinate{}, badRequest(validationMessage(err))
	}

	return models.Coordinate{Lat: lat, Lon: lon}, nil
}

func (r *routes) parsePredictBody(body []byte) (models.Coordinate, []int, error) {
	var b predictBody
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &b); err != nil {
			return models.Coordinate{}, nil, badRequest(msgPredictInvalid)
		}
	}

	lat, latErr := parseCoordinateJSON(b.Latitude)
	lon, lonErr := parseCoordinateJSON(b.Longitude)

	switch {
	case errors.Is(latErr, errMissing) || errors.Is(lonErr, errMissing):
		return models.Coordinate{}, nil, badRequest(msgPredictCoordinatesRequired)
	case latErr != nil || lonErr != nil:
		return models.Coordinate{}, nil, badRequest(msgPredictInvalid)
	}

	hours, err := parseHours(b.PredictionHours)
	if err != nil {
		return models.Coordinate{}, nil, badRequest(msgPredictionHoursInvalid)
	}

	params := forecastParams{Latitude: lat, Longitude: lon, PredictionHours: hours}
	if err := r.validate.Struct(params); err != nil {
		return models.Coordinate{}, nil, badRequest(validationMessage(err))
	}

	return models.Coordinate{Lat: lat, Lon: lon}, hours, nil
}
