package accuweather

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Summary returns a plain-text weather report for a location, combining a
// location search, the current conditions and, when the client is detailed,
// the daily forecast. Failures are returned as text in the report rather
// than as an error, so the result is always printable.
func (c *Client) Summary(ctx context.Context, req *SummaryRequest) string {
	// Resolve the location, taking the first match
	locations, err := c.LocationSearch(ctx, &SearchRequest{Query: req.Location, ApiKey: req.ApiKey})
	if err != nil || len(locations) == 0 {
		return fmt.Sprintf("Could not find location: %s", req.Location)
	}
	location := locations[0]
	if location.Key == "" {
		return fmt.Sprintf("Error getting weather summary: %s", "location is missing a key")
	}
	name := c.displayName(location)

	// Current conditions
	conditions, err := c.CurrentConditions(ctx, &ConditionsRequest{LocationKey: location.Key, Details: c.detail, ApiKey: req.ApiKey})
	if err != nil {
		if c.detail {
			return fmt.Sprintf("Error getting current weather for %s: %v", name, err)
		}
		return fmt.Sprintf("Error getting current weather: %v", err)
	}

	// Forecast, for detailed reports only
	var forecast *Forecast
	if c.detail {
		forecast, err = c.DailyForecast(ctx, &ForecastRequest{LocationKey: location.Key, Metric: true, Details: c.detail, ApiKey: req.ApiKey})
		if err != nil {
			return fmt.Sprintf("Error getting forecast for %s: %v", name, err)
		}
	}

	// Render the report
	return c.render(name, conditions, forecast)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Return the display name for a location, from the parts which are present
func (c *Client) displayName(location Location) string {
	parts := make([]string, 0, 3)
	if location.Name != nil {
		parts = append(parts, *location.Name)
	}
	if c.detail && location.AdministrativeArea != nil {
		parts = append(parts, *location.AdministrativeArea)
	}
	if location.Country != nil {
		parts = append(parts, *location.Country)
	}
	return strings.Join(parts, ", ")
}

// Render the report. Lines whose leading value is absent are omitted.
func (c *Client) render(name string, conditions *Conditions, forecast *Forecast) string {
	var report strings.Builder

	fmt.Fprintf(&report, "Weather for %s:\n\n", name)
	report.WriteString("CURRENT CONDITIONS:\n")
	if conditions.Temperature.Value != nil {
		fmt.Fprintf(&report, "• Temperature: %s°%s\n", formatNumber(conditions.Temperature.Value), types.Value(conditions.Temperature.Unit))
	}
	if conditions.WeatherText != nil {
		fmt.Fprintf(&report, "• Conditions: %s\n", *conditions.WeatherText)
	}
	if c.detail {
		if conditions.RelativeHumidity != nil {
			fmt.Fprintf(&report, "• Humidity: %s%%\n", formatNumber(conditions.RelativeHumidity))
		}
		if conditions.Wind != nil && conditions.Wind.Speed.Value != nil {
			wind := formatNumber(conditions.Wind.Speed.Value)
			if unit := types.Value(conditions.Wind.Speed.Unit); unit != "" {
				wind += " " + unit
			}
			if direction := types.Value(conditions.Wind.Direction); direction != "" {
				wind += " " + direction
			}
			fmt.Fprintf(&report, "• Wind: %s\n", wind)
		}
		if conditions.UVIndex != nil {
			uv := formatNumber(conditions.UVIndex)
			if text := types.Value(conditions.UVIndexText); text != "" {
				uv += " (" + text + ")"
			}
			fmt.Fprintf(&report, "• UV Index: %s\n", uv)
		}
	}

	if forecast != nil {
		report.WriteString("\nFORECAST:\n")
		if forecast.Headline != nil {
			fmt.Fprintf(&report, "• %s\n\n", *forecast.Headline)
		}
		for i, day := range forecast.DailyForecasts {
			fmt.Fprintf(&report, "Day %d (%s):\n", i+1, formatDate(day.Date))
			if day.Temperature.Min.Value != nil && day.Temperature.Max.Value != nil {
				fmt.Fprintf(&report, "• Temperature: %s°%s to %s°%s\n",
					formatNumber(day.Temperature.Min.Value), types.Value(day.Temperature.Min.Unit),
					formatNumber(day.Temperature.Max.Value), types.Value(day.Temperature.Max.Unit))
			}
			if day.Day.IconPhrase != nil {
				fmt.Fprintf(&report, "• Day: %s\n", *day.Day.IconPhrase)
			}
			if day.Night.IconPhrase != nil {
				fmt.Fprintf(&report, "• Night: %s\n", *day.Night.IconPhrase)
			}
			if types.Value(day.Day.HasPrecipitation) {
				precipitation := types.Value(day.Day.PrecipitationType)
				if intensity := types.Value(day.Day.PrecipitationIntensity); intensity != "" {
					precipitation += " (" + intensity + ")"
				}
				fmt.Fprintf(&report, "• Precipitation: %s\n", strings.TrimSpace(precipitation))
			}
			report.WriteString("\n")
		}
	}

	return report.String()
}

// Format a number without a trailing zero fraction
func formatNumber(v *float64) string {
	return strconv.FormatFloat(types.Value(v), 'f', -1, 64)
}

// Return the date portion of an ISO-8601 timestamp
func formatDate(v *string) string {
	date, _, _ := strings.Cut(types.Value(v), "T")
	return date
}
