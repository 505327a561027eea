package accuweather

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	types "github.com/mutablelogic/go-server/pkg/types"
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Metric is a measurement with a unit
type Metric struct {
	Value *float64 `json:"value"`
	Unit  *string  `json:"unit"`
}

// Wind is the wind observation, only included in detailed responses
type Wind struct {
	Speed     Metric  `json:"speed"`
	Direction *string `json:"direction"`
}

// Conditions is a normalized current weather observation. Any field the
// provider omits is nil rather than an error.
type Conditions struct {
	Temperature       Metric   `json:"temperature"`
	WeatherText       *string  `json:"weather_text"`
	IsDayTime         *bool    `json:"is_day_time"`
	RelativeHumidity  *float64 `json:"relative_humidity,omitempty"`
	Wind              *Wind    `json:"wind,omitempty"`
	UVIndex           *float64 `json:"uv_index,omitempty"`
	UVIndexText       *string  `json:"uv_index_text,omitempty"`
	Precipitation     *bool    `json:"precipitation"`
	PrecipitationType *string  `json:"precipitation_type,omitempty"`
	ObservationTime   *string  `json:"observation_time"`
}

// rawConditions is the provider response shape
type rawConditions struct {
	LocalObservationDateTime *string  `json:"LocalObservationDateTime"`
	WeatherText              *string  `json:"WeatherText"`
	IsDayTime                *bool    `json:"IsDayTime"`
	HasPrecipitation         *bool    `json:"HasPrecipitation"`
	PrecipitationType        *string  `json:"PrecipitationType"`
	RelativeHumidity         *float64 `json:"RelativeHumidity"`
	UVIndex                  *float64 `json:"UVIndex"`
	UVIndexText              *string  `json:"UVIndexText"`
	Temperature              struct {
		Metric rawMetric `json:"Metric"`
	} `json:"Temperature"`
	Wind struct {
		Direction struct {
			Localized *string `json:"Localized"`
		} `json:"Direction"`
		Speed struct {
			Metric rawMetric `json:"Metric"`
		} `json:"Speed"`
	} `json:"Wind"`
}

// rawMetric is the provider measurement shape
type rawMetric struct {
	Value *float64 `json:"Value"`
	Unit  *string  `json:"Unit"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Conditions) String() string {
	return types.Stringify(c)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the current weather conditions for a location key. The provider
// returns a list of observations, of which only the first is current. An
// empty list is reported as a "no data" error.
func (c *Client) CurrentConditions(ctx context.Context, req *ConditionsRequest) (*Conditions, error) {
	var response []rawConditions

	// Check parameters
	if req.LocationKey == "" {
		return nil, weather.ErrBadParameter.With("missing location key")
	}

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("currentconditions", "v1", req.LocationKey), client.OptQuery(req.Values(c.keyFor(req.ApiKey)))); err != nil {
		return nil, err
	}

	// An empty response is not an observation
	if len(response) == 0 {
		return nil, weather.ErrNotFound.With("No weather data available")
	}

	// Return success
	return normalizeConditions(&response[0], req.Details), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func normalizeConditions(raw *rawConditions, detail bool) *Conditions {
	conditions := &Conditions{
		Temperature: Metric{
			Value: raw.Temperature.Metric.Value,
			Unit:  raw.Temperature.Metric.Unit,
		},
		WeatherText:     raw.WeatherText,
		IsDayTime:       raw.IsDayTime,
		Precipitation:   raw.HasPrecipitation,
		ObservationTime: raw.LocalObservationDateTime,
	}
	if detail {
		conditions.RelativeHumidity = raw.RelativeHumidity
		conditions.Wind = &Wind{
			Speed: Metric{
				Value: raw.Wind.Speed.Metric.Value,
				Unit:  raw.Wind.Speed.Metric.Unit,
			},
			Direction: raw.Wind.Direction.Localized,
		}
		conditions.UVIndex = raw.UVIndex
		conditions.UVIndexText = raw.UVIndexText
		conditions.PrecipitationType = raw.PrecipitationType
	}
	return conditions
}
