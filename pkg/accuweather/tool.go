package accuweather

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type searchLocation struct {
	client *Client
}

type currentWeather struct {
	client *Client
}

type forecastWeather struct {
	client *Client
}

type weatherSummary struct {
	client *Client
}

var _ tool.Tool = (*searchLocation)(nil)
var _ tool.Tool = (*currentWeather)(nil)
var _ tool.Tool = (*forecastWeather)(nil)
var _ tool.Tool = (*weatherSummary)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the set of weather tools, backed by a single shared client
func NewTools(apikey string, detail bool, opts ...client.ClientOpt) ([]tool.Tool, error) {
	// Create a client
	client, err := New(apikey, detail, opts...)
	if err != nil {
		return nil, err
	}

	return []tool.Tool{
		&searchLocation{client: client},
		&currentWeather{client: client},
		&forecastWeather{client: client},
		&weatherSummary{client: client},
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// SEARCH LOCATION

func (*searchLocation) Name() string {
	return "search_location"
}

func (*searchLocation) Description() string {
	return "Search for a location by name or postal code and return matching locations. Returns a list of locations with their keys, which can be used in other weather tools."
}

// Return the JSON schema for the tool input
func (*searchLocation) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[SearchRequest](nil)
}

// Run the tool with the given input. An empty query is passed through to the
// provider rather than rejected here.
func (t *searchLocation) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req SearchRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, weather.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	return t.client.LocationSearch(ctx, &req)
}

///////////////////////////////////////////////////////////////////////////////
// CURRENT WEATHER

func (*currentWeather) Name() string {
	return "get_current_weather"
}

func (*currentWeather) Description() string {
	return "Get current weather conditions for a location using its AccuWeather location key."
}

// Return the JSON schema for the tool input
func (*currentWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ConditionsRequest](nil)
}

// Run the tool with the given input
func (t *currentWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ConditionsRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, weather.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// The detail setting comes from the client, not the caller
	req.Details = t.client.detail

	return t.client.CurrentConditions(ctx, &req)
}

///////////////////////////////////////////////////////////////////////////////
// FORECAST WEATHER

func (*forecastWeather) Name() string {
	return "get_forecast"
}

func (*forecastWeather) Description() string {
	return "Get a daily weather forecast for a location using its AccuWeather location key."
}

// Return the JSON schema for the tool input. The bounds on days are part of
// the schema so that out-of-range input is rejected before the tool runs.
func (*forecastWeather) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ForecastRequest](nil)
	if err != nil {
		return nil, err
	}

	// Add validation constraints for days
	if daysField, ok := schema.Properties["days"]; ok && daysField != nil {
		min := float64(1)
		max := float64(MaxForecastDays)
		daysField.Minimum = &min
		daysField.Maximum = &max
	}

	return schema, nil
}

// Run the tool with the given input
func (t *forecastWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ForecastRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, weather.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// The unit and detail settings come from the client, not the caller
	req.Metric = true
	req.Details = t.client.detail

	return t.client.DailyForecast(ctx, &req)
}

///////////////////////////////////////////////////////////////////////////////
// WEATHER SUMMARY

func (*weatherSummary) Name() string {
	return "get_weather_summary"
}

func (*weatherSummary) Description() string {
	return "Get a complete weather summary for a location, including current conditions and forecast. This is a convenience tool that combines search_location, get_current_weather, and get_forecast."
}

// Return the JSON schema for the tool input
func (*weatherSummary) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[SummaryRequest](nil)
}

// Run the tool with the given input. The summary is always returned as text,
// with any failure reported in the text itself.
func (t *weatherSummary) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req SummaryRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, weather.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	return t.client.Summary(ctx, &req), nil
}
