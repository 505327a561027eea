/*
accuweather implements an API client for the AccuWeather REST API
https://developer.accuweather.com/apis
*/
package accuweather

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	key    string
	detail bool
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "http://dataservice.accuweather.com"
)

const (
	// Maximum number of location matches returned by a search
	MaxLocationResults = 5

	// Maximum number of days in a daily forecast
	MaxForecastDays = 5
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. When detail is set, responses include the full set of
// fields and summaries cover a five day forecast, otherwise responses are
// reduced to the basic fields and summaries cover a single day.
func New(ApiKey string, detail bool, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if ApiKey == "" {
		return nil, weather.ErrBadParameter.With("missing API key")
	}

	// Create client. The endpoint is set first so that it can be
	// overridden by the caller.
	client, err := client.New(append([]client.ClientOpt{client.OptEndpoint(endPoint)}, opts...)...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
		key:    ApiKey,
		detail: detail,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Return the API key, preferring any per-request override
func (c *Client) keyFor(override string) string {
	if override != "" {
		return override
	}
	return c.key
}

// Return the default number of forecast days
func (c *Client) defaultDays() int {
	if c.detail {
		return MaxForecastDays
	}
	return 1
}
