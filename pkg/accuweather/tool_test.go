package accuweather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	// Packages
	opts "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestNewTools(t *testing.T) {
	assert := assert.New(t)

	// Missing API key
	tools, err := NewTools("", true)
	assert.Error(err)
	assert.Nil(tools)

	// Valid API key
	tools, err = NewTools("test-api-key", true)
	assert.NoError(err)
	assert.Len(tools, 4)

	// Check tool names
	names := make([]string, 0, len(tools))
	for _, v := range tools {
		names = append(names, v.Name())
	}
	assert.Contains(names, "search_location")
	assert.Contains(names, "get_current_weather")
	assert.Contains(names, "get_forecast")
	assert.Contains(names, "get_weather_summary")
}

func TestSearchLocationTool(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"Key":"623","LocalizedName":"Paris"}]`))
	}))
	defer server.Close()

	tools, err := NewTools("test-api-key", true, opts.OptEndpoint(server.URL))
	assert.NoError(err)

	v := tools[0]
	assert.Equal("search_location", v.Name())
	assert.NotEmpty(v.Description())

	// Test schema
	schema, err := v.Schema()
	assert.NoError(err)
	assert.NotNil(schema)
	assert.Contains(schema.Properties, "query")
	assert.Contains(schema.Required, "query")

	// Invalid JSON input
	result, err := v.Run(context.Background(), json.RawMessage(`{`))
	assert.ErrorIs(err, weather.ErrBadParameter)
	assert.Nil(result)

	// Valid input
	result, err = v.Run(context.Background(), json.RawMessage(`{"query":"Paris"}`))
	assert.NoError(err)
	locations, ok := result.([]Location)
	assert.True(ok)
	assert.Len(locations, 1)
	assert.Equal("623", locations[0].Key)
}

func TestCurrentWeatherTool(t *testing.T) {
	assert := assert.New(t)

	tools, err := NewTools("test-api-key", true)
	assert.NoError(err)

	v := tools[1]
	assert.Equal("get_current_weather", v.Name())
	assert.NotEmpty(v.Description())

	// Test schema
	schema, err := v.Schema()
	assert.NoError(err)
	assert.Contains(schema.Properties, "location_key")
	assert.Contains(schema.Required, "location_key")

	// A missing location key is rejected before any request is made
	result, err := v.Run(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(err, weather.ErrBadParameter)
	assert.Nil(result)
}

func TestForecastToolSchema(t *testing.T) {
	assert := assert.New(t)

	tools, err := NewTools("test-api-key", true)
	assert.NoError(err)

	v := tools[2]
	assert.Equal("get_forecast", v.Name())
	assert.NotEmpty(v.Description())

	schema, err := v.Schema()
	assert.NoError(err)
	assert.Contains(schema.Properties, "location_key")
	assert.Contains(schema.Required, "location_key")

	// The bounds on days are part of the schema
	days := schema.Properties["days"]
	assert.NotNil(days)
	assert.NotNil(days.Minimum)
	assert.NotNil(days.Maximum)
	assert.Equal(float64(1), *days.Minimum)
	assert.Equal(float64(MaxForecastDays), *days.Maximum)
}

func TestToolkitValidatesForecastDays(t *testing.T) {
	assert := assert.New(t)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"DailyForecasts":[]}`))
	}))
	defer server.Close()

	tools, err := NewTools("test-api-key", true, opts.OptEndpoint(server.URL))
	assert.NoError(err)
	toolkit, err := tool.NewToolkit(tools...)
	assert.NoError(err)

	// Out-of-range days are rejected by the schema, before any request
	result, err := toolkit.Run(context.Background(), "get_forecast", json.RawMessage(`{"location_key":"623","days":6}`))
	assert.ErrorIs(err, weather.ErrBadParameter)
	assert.Nil(result)
	assert.Equal(int32(0), calls.Load())

	// A missing location key is also rejected by the schema
	result, err = toolkit.Run(context.Background(), "get_forecast", json.RawMessage(`{"days":2}`))
	assert.ErrorIs(err, weather.ErrBadParameter)
	assert.Nil(result)
	assert.Equal(int32(0), calls.Load())

	// In-range days pass validation
	result, err = toolkit.Run(context.Background(), "get_forecast", json.RawMessage(`{"location_key":"623","days":2}`))
	assert.NoError(err)
	assert.NotNil(result)
	assert.Equal(int32(1), calls.Load())
}

func TestWeatherSummaryTool(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	tools, err := NewTools("test-api-key", false, opts.OptEndpoint(server.URL))
	assert.NoError(err)

	v := tools[3]
	assert.Equal("get_weather_summary", v.Name())
	assert.NotEmpty(v.Description())

	// Test schema
	schema, err := v.Schema()
	assert.NoError(err)
	assert.Contains(schema.Properties, "location")
	assert.Contains(schema.Required, "location")

	// Failures are reported in the text, not as an error
	toolkit, err := tool.NewToolkit(tools...)
	assert.NoError(err)
	result, err := toolkit.Run(context.Background(), "get_weather_summary", json.RawMessage(`{"location":"Nowhereville"}`))
	assert.NoError(err)
	assert.Equal("Could not find location: Nowhereville", result)
}
