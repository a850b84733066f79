package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iby-sports/gridiron-analytics/internal/models"
)

func TestPredictFavorsStrongerSide(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	home := models.Team{Name: "Kansas City Chiefs", Abbreviation: "KC", Strength: 93}
	away := models.Team{Name: "Carolina Panthers", Abbreviation: "CAR", Strength: 64}

	pred := Predict("game-1", home, away, rng)

	assert.Greater(t, pred.HomeWinPct, pred.AwayWinPct)
	assert.Contains(t, pred.Spread, "KC -")
	assert.GreaterOrEqual(t, pred.HomeWinPct, 5.0)
	assert.LessOrEqual(t, pred.HomeWinPct, 95.0)
	assert.GreaterOrEqual(t, pred.Confidence, 50.0)
	assert.LessOrEqual(t, pred.Confidence, 95.0)
}

func TestPredictBoundsHoldForLopsidedMatchups(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	home := models.Team{Name: "Juggernauts", Strength: 100}
	away := models.Team{Name: "Minnows", Strength: 0}

	pred := Predict("game-2", home, away, rng)

	assert.Equal(t, 95.0, pred.HomeWinPct)
	assert.Equal(t, 5.0, pred.AwayWinPct)
}

func TestPredictPickEmWhenHomeEdgeCancelsOut(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	// The visitor's strength advantage exactly offsets home field
	home := models.Team{Name: "Hosts", Strength: 70}
	away := models.Team{Name: "Visitors", Strength: 72.5}

	pred := Predict("game-3", home, away, rng)

	assert.Equal(t, "PK", pred.Spread)
}

func TestMoneylineFromSpread(t *testing.T) {
	home, away := moneylineFromSpread(3.5)
	assert.Equal(t, -187, home)
	assert.Equal(t, 166, away)

	home, away = moneylineFromSpread(-3.5)
	assert.Equal(t, 166, home)
	assert.Equal(t, -187, away)

	home, away = moneylineFromSpread(0)
	assert.Equal(t, -110, home)
	assert.Equal(t, 100, away)
}

func TestLinesFromPredictionFavorsHome(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	home := models.Team{Name: "Kansas City Chiefs", Strength: 93}
	away := models.Team{Name: "Carolina Panthers", Strength: 64}
	pred := Predict("game-4", home, away, rng)

	line := LinesFromPrediction(pred, home, away, rng)

	assert.Equal(t, "game-4", line.GameID)
	assert.Negative(t, line.Spread, "favored home side lays points")
	assert.Negative(t, line.HomeMoneyline)
	assert.Positive(t, line.AwayMoneyline)
	assert.Greater(t, line.Total, 30.0)
}
