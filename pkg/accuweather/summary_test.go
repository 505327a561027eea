package accuweather_test

import (
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	// Packages
	accuweather "github.com/mutablelogic/go-weather/pkg/accuweather"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// callCount records how often each provider endpoint was hit
type callCount struct {
	search     atomic.Int32
	conditions atomic.Int32
	forecast   atomic.Int32
}

// summaryServer returns a client backed by a stub which serves the three
// provider endpoints used by a summary
func summaryServer(t *testing.T, detail bool, counts *callCount, search, conditions, forecast http.HandlerFunc) *accuweather.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/locations/v1/cities/search", func(w http.ResponseWriter, r *http.Request) {
		counts.search.Add(1)
		search(w, r)
	})
	mux.HandleFunc("/currentconditions/v1/", func(w http.ResponseWriter, r *http.Request) {
		counts.conditions.Add(1)
		conditions(w, r)
	})
	mux.HandleFunc("/forecasts/v1/daily/", func(w http.ResponseWriter, r *http.Request) {
		counts.forecast.Add(1)
		forecast(w, r)
	})
	return newTestClient(t, detail, mux)
}

func jsonHandler(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, v)
	}
}

func errorHandler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(status), status)
	}
}

var (
	parisLocations = []map[string]any{{
		"Key":                "623",
		"LocalizedName":      "Paris",
		"Country":            map[string]any{"LocalizedName": "France"},
		"AdministrativeArea": map[string]any{"LocalizedName": "Ile-de-France"},
	}}

	parisConditions = []map[string]any{{
		"LocalObservationDateTime": "2026-08-21T14:00:00+02:00",
		"WeatherText":              "Sunny",
		"IsDayTime":                true,
		"HasPrecipitation":         false,
		"Temperature": map[string]any{
			"Metric": map[string]any{"Value": 18, "Unit": "C"},
		},
	}}

	berlinLocations = []map[string]any{{
		"Key":                "178087",
		"LocalizedName":      "Berlin",
		"Country":            map[string]any{"LocalizedName": "Germany"},
		"AdministrativeArea": map[string]any{"LocalizedName": "Berlin"},
	}}

	berlinConditions = []map[string]any{{
		"LocalObservationDateTime": "2026-08-21T14:00:00+02:00",
		"WeatherText":              "Partly cloudy",
		"IsDayTime":                true,
		"HasPrecipitation":         false,
		"RelativeHumidity":         60,
		"UVIndex":                  3,
		"UVIndexText":              "Moderate",
		"Temperature": map[string]any{
			"Metric": map[string]any{"Value": 21.5, "Unit": "C"},
		},
		"Wind": map[string]any{
			"Direction": map[string]any{"Localized": "WSW"},
			"Speed": map[string]any{
				"Metric": map[string]any{"Value": 14, "Unit": "km/h"},
			},
		},
	}}

	berlinForecast = map[string]any{
		"Headline": map[string]any{"Text": "Expect showers Thursday"},
		"DailyForecasts": []map[string]any{
			{
				"Date": "2026-08-21T07:00:00+02:00",
				"Temperature": map[string]any{
					"Minimum": map[string]any{"Value": 15, "Unit": "C"},
					"Maximum": map[string]any{"Value": 24, "Unit": "C"},
				},
				"Day":   map[string]any{"IconPhrase": "Sunny", "HasPrecipitation": false},
				"Night": map[string]any{"IconPhrase": "Clear", "HasPrecipitation": false},
			},
			{
				"Date": "2026-08-22T07:00:00+02:00",
				"Temperature": map[string]any{
					"Minimum": map[string]any{"Value": 14, "Unit": "C"},
					"Maximum": map[string]any{"Value": 22, "Unit": "C"},
				},
				"Day": map[string]any{
					"IconPhrase":             "Showers",
					"HasPrecipitation":       true,
					"PrecipitationType":      "Rain",
					"PrecipitationIntensity": "Light",
				},
				"Night": map[string]any{"IconPhrase": "Cloudy", "HasPrecipitation": false},
			},
		},
	}
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_summary_001(t *testing.T) {
	assert := assert.New(t)

	// Basic summary covers current conditions only
	counts := new(callCount)
	client := summaryServer(t, false, counts,
		jsonHandler(parisLocations),
		jsonHandler(parisConditions),
		jsonHandler(nil),
	)

	summary := client.Summary(t.Context(), &accuweather.SummaryRequest{Location: "Paris"})
	assert.Equal("Weather for Paris, France:\n"+
		"\n"+
		"CURRENT CONDITIONS:\n"+
		"• Temperature: 18°C\n"+
		"• Conditions: Sunny\n", summary)

	// The forecast endpoint is never called
	assert.Equal(int32(1), counts.search.Load())
	assert.Equal(int32(1), counts.conditions.Load())
	assert.Equal(int32(0), counts.forecast.Load())
}

func Test_summary_002(t *testing.T) {
	assert := assert.New(t)

	// A conditions failure is reported in the text, without a location name
	// for a basic client
	counts := new(callCount)
	client := summaryServer(t, false, counts,
		jsonHandler(parisLocations),
		errorHandler(http.StatusInternalServerError),
		jsonHandler(nil),
	)

	summary := client.Summary(t.Context(), &accuweather.SummaryRequest{Location: "Paris"})
	assert.True(strings.HasPrefix(summary, "Error getting current weather: "), summary)
	assert.Equal(int32(0), counts.forecast.Load())
}

func Test_summary_003(t *testing.T) {
	assert := assert.New(t)

	// No matches at all
	counts := new(callCount)
	client := summaryServer(t, false, counts,
		jsonHandler([]map[string]any{}),
		jsonHandler(nil),
		jsonHandler(nil),
	)

	summary := client.Summary(t.Context(), &accuweather.SummaryRequest{Location: "Nowhereville"})
	assert.Equal("Could not find location: Nowhereville", summary)
	assert.Equal(int32(0), counts.conditions.Load())
	assert.Equal(int32(0), counts.forecast.Load())
}

func Test_summary_004(t *testing.T) {
	assert := assert.New(t)

	// A detailed summary includes the administrative area, the detailed
	// observation fields and a five day forecast
	counts := new(callCount)
	client := summaryServer(t, true, counts,
		jsonHandler(berlinLocations),
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal("true", r.URL.Query().Get("details"))
			writeJSON(w, berlinConditions)
		},
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal("/forecasts/v1/daily/5day/178087", r.URL.Path)
			assert.Equal("true", r.URL.Query().Get("metric"))
			assert.Equal("true", r.URL.Query().Get("details"))
			writeJSON(w, berlinForecast)
		},
	)

	summary := client.Summary(t.Context(), &accuweather.SummaryRequest{Location: "Berlin"})
	assert.Equal("Weather for Berlin, Berlin, Germany:\n"+
		"\n"+
		"CURRENT CONDITIONS:\n"+
		"• Temperature: 21.5°C\n"+
		"• Conditions: Partly cloudy\n"+
		"• Humidity: 60%\n"+
		"• Wind: 14 km/h WSW\n"+
		"• UV Index: 3 (Moderate)\n"+
		"\n"+
		"FORECAST:\n"+
		"• Expect showers Thursday\n"+
		"\n"+
		"Day 1 (2026-08-21):\n"+
		"• Temperature: 15°C to 24°C\n"+
		"• Day: Sunny\n"+
		"• Night: Clear\n"+
		"\n"+
		"Day 2 (2026-08-22):\n"+
		"• Temperature: 14°C to 22°C\n"+
		"• Day: Showers\n"+
		"• Night: Cloudy\n"+
		"• Precipitation: Rain (Light)\n"+
		"\n", summary)

	assert.Equal(int32(1), counts.search.Load())
	assert.Equal(int32(1), counts.conditions.Load())
	assert.Equal(int32(1), counts.forecast.Load())
}

func Test_summary_005(t *testing.T) {
	assert := assert.New(t)

	// A conditions failure for a detailed client names the location
	counts := new(callCount)
	client := summaryServer(t, true, counts,
		jsonHandler(berlinLocations),
		errorHandler(http.StatusInternalServerError),
		jsonHandler(berlinForecast),
	)

	summary := client.Summary(t.Context(), &accuweather.SummaryRequest{Location: "Berlin"})
	assert.True(strings.HasPrefix(summary, "Error getting current weather for Berlin, Berlin, Germany: "), summary)
	assert.Equal(int32(0), counts.forecast.Load())
}

func Test_summary_006(t *testing.T) {
	assert := assert.New(t)

	// A forecast failure is reported in the text
	counts := new(callCount)
	client := summaryServer(t, true, counts,
		jsonHandler(berlinLocations),
		jsonHandler(berlinConditions),
		errorHandler(http.StatusInternalServerError),
	)

	summary := client.Summary(t.Context(), &accuweather.SummaryRequest{Location: "Berlin"})
	assert.True(strings.HasPrefix(summary, "Error getting forecast for Berlin, Berlin, Germany: "), summary)
}

func Test_summary_007(t *testing.T) {
	assert := assert.New(t)

	// A location match without a key cannot be used
	counts := new(callCount)
	client := summaryServer(t, true, counts,
		jsonHandler([]map[string]any{{"LocalizedName": "Ghost"}}),
		jsonHandler(nil),
		jsonHandler(nil),
	)

	summary := client.Summary(t.Context(), &accuweather.SummaryRequest{Location: "Ghost"})
	assert.Equal("Error getting weather summary: location is missing a key", summary)
	assert.Equal(int32(0), counts.conditions.Load())
}

func Test_summary_008(t *testing.T) {
	assert := assert.New(t)

	// Repeated summaries return the same report, with no cached state
	counts := new(callCount)
	client := summaryServer(t, true, counts,
		jsonHandler(berlinLocations),
		jsonHandler(berlinConditions),
		jsonHandler(berlinForecast),
	)

	first := client.Summary(t.Context(), &accuweather.SummaryRequest{Location: "Berlin"})
	second := client.Summary(t.Context(), &accuweather.SummaryRequest{Location: "Berlin"})
	assert.Equal(first, second)
	assert.Equal(int32(2), counts.search.Load())
	assert.Equal(int32(2), counts.conditions.Load())
	assert.Equal(int32(2), counts.forecast.Load())
}
