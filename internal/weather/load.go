// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput is returned by Load for input that cannot be turned into a ForecastSet.
var ErrInvalidInput = errors.New("invalid hourly forecast input")

// Load builds a ForecastSet from the raw hourly array. The record at index i belongs to the hour
// startHour+i, counted from midnight of baseDate, so hours past 23:00 roll over to the next days.
func Load(raw json.RawMessage, startHour int, baseDate time.Time) (*ForecastSet, error) {
	if startHour < 0 || startHour > 23 {
		return nil, fmt.Errorf("%w: start hour %d out of range", ErrInvalidInput, startHour)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: hourly forecast is not a JSON array", ErrInvalidInput)
	}

	var items []RawHour
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	base := StartOfDay(baseDate)
	set := &ForecastSet{
		BaseDate:  base,
		StartHour: startHour,
		Records:   make([]HourRecord, 0, len(items)),
	}
	for i, item := range items {
		totalHour := startHour + i
		date := base.AddDate(0, 0, totalHour/24)
		cond := item.Condition
		if cond == "" {
			cond = item.Conditions
		}
		model := item.ModelPredictionResult
		if model == "" {
			model = item.FullPrediction
		}

		set.Records = append(set.Records, HourRecord{
			Offset:                i,
			Hour:                  fmt.Sprintf("%02d:00", totalHour%24),
			CalendarDate:          date,
			DayName:               DayName(date),
			Temperature:           item.Temperature,
			FeelsLike:             item.FeelsLike,
			Humidity:              item.Humidity,
			WindSpeed:             item.WindSpeed,
			UVIndex:               item.UVIndex,
			Visibility:            item.Visibility,
			Pressure:              item.Pressure,
			Probability:           item.Probability,
			Condition:             cond,
			Description:           item.Description,
			Icon:                  item.Icon,
			ModelPredictionResult: model,
		})
	}

	return set, nil
}
