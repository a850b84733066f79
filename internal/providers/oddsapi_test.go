package providers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iby-sports/gridiron-analytics/internal/models"
)

const oddsAPIFixture = `[
  {
    "id": "evt-1",
    "commence_time": "2025-11-02T18:00:00Z",
    "home_team": "Buffalo Bills",
    "away_team": "Miami Dolphins",
    "bookmakers": [{
      "key": "draftkings",
      "title": "DraftKings",
      "markets": [
        {"key": "h2h", "outcomes": [
          {"name": "Buffalo Bills", "price": -240},
          {"name": "Miami Dolphins", "price": 198}
        ]},
        {"key": "spreads", "outcomes": [
          {"name": "Buffalo Bills", "price": -110, "point": -5.5},
          {"name": "Miami Dolphins", "price": -110, "point": 5.5}
        ]},
        {"key": "totals", "outcomes": [
          {"name": "Over", "price": -110, "point": 48.5},
          {"name": "Under", "price": -110, "point": 48.5}
        ]}
      ]
    }]
  },
  {
    "id": "evt-2",
    "commence_time": "2025-11-02T21:25:00Z",
    "home_team": "Green Bay Packers",
    "away_team": "Chicago Bears",
    "bookmakers": []
  }
]`

func TestOddsAPIParse(t *testing.T) {
	src := NewOddsAPISource("test-key")

	result, err := src.Parse(models.KindOdds, []byte(oddsAPIFixture))
	require.NoError(t, err)

	// Events without any bookmaker are dropped
	require.Len(t, result.Lines, 1)
	line := result.Lines[0]
	assert.Equal(t, "evt-1", line.GameID)
	assert.Equal(t, "Buffalo Bills", line.HomeTeam)
	assert.Equal(t, "DraftKings", line.Bookmaker)
	assert.Equal(t, -240, line.HomeMoneyline)
	assert.Equal(t, 198, line.AwayMoneyline)
	assert.Equal(t, -5.5, line.Spread)
	assert.Equal(t, 48.5, line.Total)
}

func TestOddsAPIParseMalformed(t *testing.T) {
	src := NewOddsAPISource("test-key")

	_, err := src.Parse(models.KindOdds, []byte(`{"not": "an array"}`))
	assert.ErrorIs(t, err, ErrMalformed)

	missingTeams := `[{"id": "evt-1", "home_team": "", "away_team": "Miami Dolphins"}]`
	_, err = src.Parse(models.KindOdds, []byte(missingTeams))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestOddsAPINewRequest(t *testing.T) {
	src := NewOddsAPISource("test-key")

	req, err := src.NewRequest(context.Background(), models.KindOdds, models.FetchParams{League: models.LeagueNFL})
	require.NoError(t, err)
	assert.Contains(t, req.URL.Path, "americanfootball_nfl")
	// The Odds API authenticates via query parameter, not a header
	assert.Equal(t, "test-key", req.URL.Query().Get("apiKey"))
	assert.Equal(t, "h2h,spreads,totals", req.URL.Query().Get("markets"))

	req, err = src.NewRequest(context.Background(), models.KindOdds, models.FetchParams{League: models.LeagueNCAA})
	require.NoError(t, err)
	assert.Contains(t, req.URL.Path, "americanfootball_ncaaf")
}

func TestOddsAPIQuotaDetection(t *testing.T) {
	src := NewOddsAPISource("test-key")

	quotaBody := []byte(`{"message": "Usage quota has been reached", "error_code": "OUT_OF_USAGE_CREDITS"}`)
	assert.True(t, src.IsQuotaError(http.StatusUnauthorized, quotaBody))
	assert.True(t, src.IsQuotaError(http.StatusTooManyRequests, []byte(`{"error_code": "EXCEEDED_FREQ_LIMIT"}`)))

	// Plain auth failures and server errors are not quota exhaustion
	assert.False(t, src.IsQuotaError(http.StatusUnauthorized, []byte(`{"message": "invalid key"}`)))
	assert.False(t, src.IsQuotaError(http.StatusInternalServerError, quotaBody))
}

func TestOddsAPISupportsOnlyOdds(t *testing.T) {
	src := NewOddsAPISource("test-key")

	assert.True(t, src.Supports(models.KindOdds, models.LeagueNFL))
	assert.True(t, src.Supports(models.KindOdds, models.LeagueNCAA))
	assert.False(t, src.Supports(models.KindGames, models.LeagueNFL))
}
