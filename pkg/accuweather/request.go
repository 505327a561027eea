package accuweather

import (
	"net/url"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// SearchRequest defines the input for a location search
type SearchRequest struct {
	Query string `json:"query" jsonschema:"City name or postal code to search for"`

	// Per-request API key override
	ApiKey string `json:"-"`
}

// ConditionsRequest defines the input for a current conditions query
type ConditionsRequest struct {
	LocationKey string `json:"location_key" jsonschema:"AccuWeather location key (use search_location to find)"`

	// Request the full set of observation fields
	Details bool `json:"-"`

	// Per-request API key override
	ApiKey string `json:"-"`
}

// ForecastRequest defines the input for a daily forecast query
type ForecastRequest struct {
	LocationKey string `json:"location_key" jsonschema:"AccuWeather location key (use search_location to find)"`
	Days        int    `json:"days,omitempty" jsonschema:"Number of days for forecast (1-5)"`

	// Return temperatures in metric units
	Metric bool `json:"-"`

	// Request the full set of forecast fields
	Details bool `json:"-"`

	// Per-request API key override
	ApiKey string `json:"-"`
}

// SummaryRequest defines the input for a weather summary
type SummaryRequest struct {
	Location string `json:"location" jsonschema:"City name or postal code"`

	// Per-request API key override
	ApiKey string `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts SearchRequest to URL query parameters
func (r *SearchRequest) Values(apiKey string) url.Values {
	result := url.Values{}
	result.Set("apikey", apiKey)
	result.Set("q", r.Query)
	result.Set("limit", strconv.Itoa(MaxLocationResults))
	return result
}

// Values converts ConditionsRequest to URL query parameters
func (r *ConditionsRequest) Values(apiKey string) url.Values {
	result := url.Values{}
	result.Set("apikey", apiKey)
	result.Set("details", strconv.FormatBool(r.Details))
	return result
}

// Values converts ForecastRequest to URL query parameters
func (r *ForecastRequest) Values(apiKey string) url.Values {
	result := url.Values{}
	result.Set("apikey", apiKey)
	result.Set("metric", strconv.FormatBool(r.Metric))
	result.Set("details", strconv.FormatBool(r.Details))
	return result
}
