// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"github.com/wneessen/cuaca/internal/condition"
)

// Stats summarizes a ForecastSet.
type Stats struct {
	TempAverage       float64
	HumidityAverage   float64
	WindAverage       float64
	MaxUV             float64
	RainyHourCount    int
	DominantCondition condition.Category
}

// ComputeStats aggregates the records of the set. Averages run over all records, an absent
// value counts as 0. The dominant condition is the most frequent category, ties go to the
// category listed first in condition.Categories.
func ComputeStats(set *ForecastSet) Stats {
	if set.Len() == 0 {
		return Stats{DominantCondition: condition.Default}
	}

	var temp, humidity, wind float64
	stats := Stats{}
	counts := make(map[condition.Category]int, len(condition.Categories))
	for _, rec := range set.Records {
		temp += rec.Temperature.Value()
		humidity += rec.Humidity.Value()
		wind += rec.WindSpeed.Value()
		if uv := rec.UVIndex.Value(); uv > stats.MaxUV {
			stats.MaxUV = uv
		}

		cat := rec.Category()
		counts[cat]++
		if cat == condition.Rain {
			stats.RainyHourCount++
		}
	}

	total := float64(set.Len())
	stats.TempAverage = temp / total
	stats.HumidityAverage = humidity / total
	stats.WindAverage = wind / total

	stats.DominantCondition = condition.Unknown
	best := 0
	for _, cat := range condition.Categories {
		if counts[cat] > best {
			best = counts[cat]
			stats.DominantCondition = cat
		}
	}

	return stats
}
