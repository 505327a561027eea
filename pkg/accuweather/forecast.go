package accuweather

import (
	"context"
	"fmt"

	// Packages
	client "github.com/mutablelogic/go-client"
	types "github.com/mutablelogic/go-server/pkg/types"
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Forecast is a normalized daily forecast report
type Forecast struct {
	Headline       *string         `json:"headline"`
	DailyForecasts []DailyForecast `json:"daily_forecasts"`
}

// DailyForecast is the forecast for a single day
type DailyForecast struct {
	Date        *string   `json:"date"`
	Temperature TempRange `json:"temperature"`
	Day         DayPart   `json:"day"`
	Night       DayPart   `json:"night"`
}

// TempRange is the forecast temperature range for a day
type TempRange struct {
	Min Metric `json:"min"`
	Max Metric `json:"max"`
}

// DayPart is the day or night half of a daily forecast
type DayPart struct {
	IconPhrase             *string `json:"icon_phrase"`
	HasPrecipitation       *bool   `json:"has_precipitation,omitempty"`
	PrecipitationType      *string `json:"precipitation_type,omitempty"`
	PrecipitationIntensity *string `json:"precipitation_intensity,omitempty"`
}

// rawForecast is the provider response shape
type rawForecast struct {
	Headline struct {
		Text *string `json:"Text"`
	} `json:"Headline"`
	DailyForecasts []rawDailyForecast `json:"DailyForecasts"`
}

type rawDailyForecast struct {
	Date        *string `json:"Date"`
	Temperature struct {
		Minimum rawMetric `json:"Minimum"`
		Maximum rawMetric `json:"Maximum"`
	} `json:"Temperature"`
	Day   rawDayPart `json:"Day"`
	Night rawDayPart `json:"Night"`
}

type rawDayPart struct {
	IconPhrase             *string `json:"IconPhrase"`
	HasPrecipitation       *bool   `json:"HasPrecipitation"`
	PrecipitationType      *string `json:"PrecipitationType"`
	PrecipitationIntensity *string `json:"PrecipitationIntensity"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f Forecast) String() string {
	return types.Stringify(f)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the daily forecast for a location key. When the number of days is
// zero a default is applied, which depends on the detail setting of the
// client. An empty forecast is valid and not an error.
func (c *Client) DailyForecast(ctx context.Context, req *ForecastRequest) (*Forecast, error) {
	var response rawForecast

	// Check parameters
	if req.LocationKey == "" {
		return nil, weather.ErrBadParameter.With("missing location key")
	}
	days := req.Days
	if days == 0 {
		days = c.defaultDays()
	}
	if days < 1 || days > MaxForecastDays {
		return nil, weather.ErrBadParameter.Withf("days must be between 1 and %d", MaxForecastDays)
	}

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("forecasts", "v1", "daily", fmt.Sprintf("%dday", days), req.LocationKey), client.OptQuery(req.Values(c.keyFor(req.ApiKey)))); err != nil {
		return nil, err
	}

	// Return success
	return normalizeForecast(&response, req.Details), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func normalizeForecast(raw *rawForecast, detail bool) *Forecast {
	forecast := &Forecast{
		Headline:       raw.Headline.Text,
		DailyForecasts: make([]DailyForecast, 0, len(raw.DailyForecasts)),
	}
	for _, day := range raw.DailyForecasts {
		forecast.DailyForecasts = append(forecast.DailyForecasts, DailyForecast{
			Date: day.Date,
			Temperature: TempRange{
				Min: Metric{Value: day.Temperature.Minimum.Value, Unit: day.Temperature.Minimum.Unit},
				Max: Metric{Value: day.Temperature.Maximum.Value, Unit: day.Temperature.Maximum.Unit},
			},
			Day:   normalizeDayPart(&day.Day, detail),
			Night: normalizeDayPart(&day.Night, detail),
		})
	}
	return forecast
}

func normalizeDayPart(raw *rawDayPart, detail bool) DayPart {
	part := DayPart{
		IconPhrase: raw.IconPhrase,
	}
	if detail {
		part.HasPrecipitation = raw.HasPrecipitation
		part.PrecipitationType = raw.PrecipitationType
		part.PrecipitationIntensity = raw.PrecipitationIntensity
	}
	return part
}
