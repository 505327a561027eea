package accuweather

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Location is a normalized location match
type Location struct {
	Key                string  `json:"key"`
	Name               *string `json:"name"`
	Country            *string `json:"country"`
	AdministrativeArea *string `json:"administrative_area"`
}

// rawLocation is the provider response shape
type rawLocation struct {
	Key           string  `json:"Key"`
	LocalizedName *string `json:"LocalizedName"`
	Country       struct {
		LocalizedName *string `json:"LocalizedName"`
	} `json:"Country"`
	AdministrativeArea struct {
		LocalizedName *string `json:"LocalizedName"`
	} `json:"AdministrativeArea"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (l Location) String() string {
	return types.Stringify(l)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Search for locations matching a city name or postal code. At most
// MaxLocationResults matches are returned, in provider order.
func (c *Client) LocationSearch(ctx context.Context, req *SearchRequest) ([]Location, error) {
	var response []rawLocation

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("locations", "v1", "cities", "search"), client.OptQuery(req.Values(c.keyFor(req.ApiKey)))); err != nil {
		return nil, err
	}

	// The provider can return more matches than requested
	if len(response) > MaxLocationResults {
		response = response[:MaxLocationResults]
	}

	// Return success
	result := make([]Location, 0, len(response))
	for _, location := range response {
		result = append(result, normalizeLocation(&location))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func normalizeLocation(raw *rawLocation) Location {
	return Location{
		Key:                raw.Key,
		Name:               raw.LocalizedName,
		Country:            raw.Country.LocalizedName,
		AdministrativeArea: raw.AdministrativeArea.LocalizedName,
	}
}
