package weather

import (
	"encoding/json"
	"errors"
	"fmt"
)

// wttr.in "format=j1" document, reduced to the fields the UI shows. All
// numeric values arrive as strings.
type wttrDocument struct {
	CurrentCondition []wttrCurrent `json:"current_condition"`
	Weather          []wttrDay     `json:"weather"`
	NearestArea      []wttrArea    `json:"nearest_area"`
}

type wttrCurrent struct {
	TempF          string      `json:"temp_F"`
	Humidity       string      `json:"humidity"`
	WindspeedMiles string      `json:"windspeedMiles"`
	WeatherDesc    []wttrValue `json:"weatherDesc"`
}

type wttrDay struct {
	Date     string       `json:"date"`
	MaxTempF string       `json:"maxtempF"`
	MinTempF string       `json:"mintempF"`
	Hourly   []wttrHourly `json:"hourly"`
}

type wttrHourly struct {
	WeatherDesc []wttrValue `json:"weatherDesc"`
}

type wttrArea struct {
	AreaName []wttrValue `json:"areaName"`
	Region   []wttrValue `json:"region"`
}

type wttrValue struct {
	Value string `json:"value"`
}

var dayLabels = []string{"Today", "Tomorrow"}

func parse(body []byte) (*Report, error) {
	var doc wttrDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(doc.CurrentCondition) == 0 {
		return nil, errors.New("missing current conditions")
	}

	cur := doc.CurrentCondition[0]
	report := &Report{
		Location: areaName(doc.NearestArea),
		Current: Conditions{
			TempF:    cur.TempF,
			Desc:     first(cur.WeatherDesc),
			Humidity: cur.Humidity,
			WindMph:  cur.WindspeedMiles,
		},
	}

	for i, day := range doc.Weather {
		if i >= len(dayLabels) {
			break
		}
		report.Days = append(report.Days, Day{
			Label: dayLabels[i],
			HighF: day.MaxTempF,
			LowF:  day.MinTempF,
			Desc:  middayDesc(day.Hourly),
		})
	}
	return report, nil
}

func areaName(areas []wttrArea) string {
	if len(areas) == 0 {
		return ""
	}
	name := first(areas[0].AreaName)
	region := first(areas[0].Region)
	if name != "" && region != "" {
		return name + ", " + region
	}
	if name != "" {
		return name
	}
	return region
}

// middayDesc picks the description of the middle hourly slot as the day's
// summary; wttr.in has no per-day text.
func middayDesc(hours []wttrHourly) string {
	if len(hours) == 0 {
		return ""
	}
	return first(hours[len(hours)/2].WeatherDesc)
}

func first(vs []wttrValue) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0].Value
}
