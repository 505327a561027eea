package accuweather_test

import (
	"os"
	"testing"

	// Packages
	accuweather "github.com/mutablelogic/go-weather/pkg/accuweather"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// liveClient returns a client against the live AccuWeather endpoint, or
// skips the test when no API key is set in the environment
func liveClient(t *testing.T, detail bool) *accuweather.Client {
	t.Helper()
	key := os.Getenv("ACCUWEATHER_API_KEY")
	if key == "" {
		t.Skip("Skipping live test, ACCUWEATHER_API_KEY not set")
	}

	client, err := accuweather.New(key, detail)
	if err != nil {
		t.Fatal(err)
	}
	return client
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_live_001(t *testing.T) {
	assert := assert.New(t)
	client := liveClient(t, true)

	locations, err := client.LocationSearch(t.Context(), &accuweather.SearchRequest{Query: "London"})
	assert.NoError(err)
	assert.NotEmpty(locations)
	assert.LessOrEqual(len(locations), accuweather.MaxLocationResults)
	for _, location := range locations {
		assert.NotEmpty(location.Key)
		t.Log(location)
	}
}

func Test_live_002(t *testing.T) {
	assert := assert.New(t)
	client := liveClient(t, true)

	locations, err := client.LocationSearch(t.Context(), &accuweather.SearchRequest{Query: "Berlin"})
	assert.NoError(err)
	if len(locations) == 0 {
		t.Skip("no matches")
	}

	conditions, err := client.CurrentConditions(t.Context(), &accuweather.ConditionsRequest{LocationKey: locations[0].Key, Details: true})
	assert.NoError(err)
	assert.NotNil(conditions)
	t.Log(conditions)
}

func Test_live_003(t *testing.T) {
	assert := assert.New(t)
	client := liveClient(t, true)

	summary := client.Summary(t.Context(), &accuweather.SummaryRequest{Location: "Paris"})
	assert.NotEmpty(summary)
	t.Log(summary)
}
