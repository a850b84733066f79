package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iby-sports/gridiron-analytics/internal/models"
)

var fixedNow = time.Date(2025, time.November, 2, 18, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestGenerator(seed int64) *Generator {
	gen := New(seed)
	gen.Clock = fixedClock
	return gen
}

func TestGenerateIsDeterministicUnderSeed(t *testing.T) {
	params := models.FetchParams{League: models.LeagueNCAA, Week: 8}

	first := newTestGenerator(7).Generate(models.KindRankings, params)
	second := newTestGenerator(7).Generate(models.KindRankings, params)

	assert.Equal(t, first, second)
}

func TestGenerateGamesAreSelfConsistent(t *testing.T) {
	gen := newTestGenerator(11)

	result := gen.Generate(models.KindGames, models.FetchParams{League: models.LeagueNFL, Week: 5})
	require.Len(t, result.Games, 14)

	for _, game := range result.Games {
		assert.Equal(t, models.SourceSynthetic, game.Source)
		assert.Equal(t, models.LeagueNFL, game.League)
		assert.Equal(t, 5, game.Week)
		assert.NotEqual(t, game.HomeTeam.Name, game.AwayTeam.Name)

		switch game.Status {
		case models.StatusScheduled:
			assert.Zero(t, game.HomeScore)
			assert.Zero(t, game.AwayScore)
			assert.Empty(t, game.Clock)
			assert.True(t, game.StartTime.After(fixedNow))
		case models.StatusLive:
			assert.True(t, game.StartTime.Before(fixedNow))
			assert.GreaterOrEqual(t, game.Period, 1)
			assert.LessOrEqual(t, game.Period, 4)
			assert.NotEmpty(t, game.Clock)
		case models.StatusFinal:
			assert.True(t, game.StartTime.Before(fixedNow))
			assert.NotEqual(t, game.HomeScore, game.AwayScore, "final games never end tied")
		default:
			t.Fatalf("unexpected status %q", game.Status)
		}
	}
}

func TestGenerateGameCountPerLeague(t *testing.T) {
	gen := newTestGenerator(11)

	nfl := gen.Generate(models.KindGames, models.FetchParams{League: models.LeagueNFL, Week: 5})
	ncaa := gen.Generate(models.KindGames, models.FetchParams{League: models.LeagueNCAA, Week: 5})

	assert.Len(t, nfl.Games, 14)
	assert.Len(t, ncaa.Games, 10)
}

func TestGenerateNeverReturnsEmpty(t *testing.T) {
	gen := newTestGenerator(3)
	kinds := []models.DataKind{models.KindGames, models.KindRankings, models.KindInjuries, models.KindOdds, models.KindNews}

	for _, kind := range kinds {
		for _, league := range []models.League{models.LeagueNFL, models.LeagueNCAA} {
			result := gen.Generate(kind, models.FetchParams{League: league, Week: 9})
			assert.Equal(t, kind, result.Kind)
			assert.Equal(t, models.SourceSynthetic, result.Source)
			assert.False(t, result.Empty(), "kind %s league %s", kind, league)
		}
	}
}

func TestGenerateRankings(t *testing.T) {
	gen := newTestGenerator(19)

	result := gen.Generate(models.KindRankings, models.FetchParams{League: models.LeagueNCAA, Week: 10})
	require.Len(t, result.Rankings, 25)

	for i, ranking := range result.Rankings {
		assert.Equal(t, i+1, ranking.Rank)
		assert.NotEmpty(t, ranking.Team)
		assert.Regexp(t, `^\d+-\d+$`, ranking.Record)
	}
	// Points decrease down the poll
	assert.Greater(t, result.Rankings[0].Points, result.Rankings[24].Points)
}

func TestGenerateLinesHaveBothSidesPriced(t *testing.T) {
	gen := newTestGenerator(23)

	result := gen.Generate(models.KindOdds, models.FetchParams{League: models.LeagueNFL, Week: 9})
	require.NotEmpty(t, result.Lines)

	for _, line := range result.Lines {
		assert.NotEmpty(t, line.HomeTeam)
		assert.NotEmpty(t, line.AwayTeam)
		assert.NotZero(t, line.HomeMoneyline)
		assert.NotZero(t, line.AwayMoneyline)
		assert.Greater(t, line.Total, 20.0)
		// exactly one side carries the negative odds of a favorite
		assert.True(t, (line.HomeMoneyline < 0) != (line.AwayMoneyline < 0))
	}
}

func TestPredictGameLooksUpStrengthTables(t *testing.T) {
	gen := newTestGenerator(5)

	game := models.Game{
		ID:       "game-1",
		League:   models.LeagueNFL,
		HomeTeam: models.Team{Name: "Kansas City Chiefs"},
		AwayTeam: models.Team{Name: "Carolina Panthers"},
		Source:   models.SourceLive,
	}
	pred := gen.PredictGame(game)

	assert.Equal(t, "game-1", pred.GameID)
	assert.Equal(t, models.SourceLive, pred.Source)
	assert.Greater(t, pred.HomeWinPct, pred.AwayWinPct, "stronger home side should be favored")
	assert.NotEmpty(t, pred.Spread)
	assert.NotEmpty(t, pred.Reasoning)
}

func TestTeamByName(t *testing.T) {
	team := TeamByName(models.LeagueNFL, "buffalo bills")
	assert.Equal(t, "Buffalo Bills", team.Name)
	assert.Greater(t, team.Strength, 0.0)

	unknown := TeamByName(models.LeagueNFL, "Canton Bulldogs")
	assert.Equal(t, "Canton Bulldogs", unknown.Name)
	assert.Equal(t, float64(defaultStrength), unknown.Strength)
}
