// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wneessen/cuaca/internal/condition"
	"github.com/wneessen/cuaca/internal/vartype"
)

// DateFormat is the date layout used by the prediction backend.
const DateFormat = "2006-01-02"

// Provider is implemented by the prediction backend client.
type Provider interface {
	Daily(ctx context.Context, date time.Time) (*DailyForecast, error)
	Hourly(ctx context.Context, date time.Time) (json.RawMessage, error)
}

// DailyForecast is the daily prediction for a single date.
type DailyForecast struct {
	Date                  string              `json:"date"`
	Status                string              `json:"status"`
	PredictedCondition    string              `json:"predictedCondition"`
	ModelPredictionResult string              `json:"modelPredictionResult"`
	ModelProbability      vartype.VarFloat64  `json:"modelProbability"`
	Observation           ObservationSnapshot `json:"visualCrossingData"`
}

// ObservationSnapshot holds the measured values the daily prediction was based on.
type ObservationSnapshot struct {
	Datetime    string             `json:"datetime"`
	Temperature vartype.VarFloat64 `json:"temp"`
	FeelsLike   vartype.VarFloat64 `json:"feelslike"`
	Humidity    vartype.VarFloat64 `json:"humidity"`
	WindSpeed   vartype.VarFloat64 `json:"windspeed"`
	UVIndex     vartype.VarFloat64 `json:"uvindex"`
	Visibility  vartype.VarFloat64 `json:"visibility"`
	Pressure    vartype.VarFloat64 `json:"pressure"`
	Conditions  string             `json:"conditions"`
	Description string             `json:"description"`
}

// RawHour is a single element of the hourly forecast array as delivered by the backend.
type RawHour struct {
	Temperature vartype.VarFloat64 `json:"temp"`
	FeelsLike   vartype.VarFloat64 `json:"feelslike"`
	Humidity    vartype.VarFloat64 `json:"humidity"`
	WindSpeed   vartype.VarFloat64 `json:"windspeed"`
	UVIndex     vartype.VarFloat64 `json:"uvindex"`
	Visibility  vartype.VarFloat64 `json:"visibility"`
	Pressure    vartype.VarFloat64 `json:"pressure"`
	Probability vartype.VarFloat64 `json:"model_prob"`
	Condition   string             `json:"condition"`
	Conditions  string             `json:"conditions"`
	Description string             `json:"description"`
	Icon        string             `json:"icon"`

	ModelPredictionResult string `json:"modelPredictionResult"`
	FullPrediction        string `json:"full_prediction"`
}

// HourRecord is the forecast for a single hour of a ForecastSet. Numeric values keep their
// "unset" state, defaults are only applied when rendering.
type HourRecord struct {
	Offset       int
	Hour         string
	CalendarDate time.Time
	DayName      string

	Temperature vartype.VarFloat64
	FeelsLike   vartype.VarFloat64
	Humidity    vartype.VarFloat64
	WindSpeed   vartype.VarFloat64
	UVIndex     vartype.VarFloat64
	Visibility  vartype.VarFloat64
	Pressure    vartype.VarFloat64
	Probability vartype.VarFloat64

	Condition             string
	Description           string
	Icon                  string
	ModelPredictionResult string
}

// Category classifies the record's condition.
func (r HourRecord) Category() condition.Category {
	return condition.Classify(r.Condition)
}

// Date returns the calendar date in the backend date format.
func (r HourRecord) Date() string {
	return r.CalendarDate.Format(DateFormat)
}

// ForecastSet is the ordered list of hour records of one hourly query.
type ForecastSet struct {
	BaseDate  time.Time
	StartHour int
	Records   []HourRecord
}

// Len returns the number of records. It is safe to call on a nil set.
func (s *ForecastSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

// At returns the record at index i.
func (s *ForecastSet) At(i int) (HourRecord, bool) {
	if s == nil || i < 0 || i >= len(s.Records) {
		return HourRecord{}, false
	}
	return s.Records[i], true
}
