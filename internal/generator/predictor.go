package generator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/iby-sports/gridiron-analytics/internal/models"
)

// Closed-form "model": weighted arithmetic over team strengths plus bounded
// jitter. The two win percentages are computed independently and are not
// normalized to sum to 100.

const homeFieldEdge = 2.5

// Predict computes win probabilities, a spread string and confidence for a
// matchup from the strength differential.
func Predict(gameID string, home, away models.Team, rng *rand.Rand) models.Prediction {
	edge := home.Strength - away.Strength + homeFieldEdge

	homePct := clamp(50+edge*0.8+(rng.Float64()-0.5)*6, 5, 95)
	awayPct := clamp(50-edge*0.8+(rng.Float64()-0.5)*6, 5, 95)
	confidence := clamp(55+math.Abs(edge)*0.9+(rng.Float64()-0.5)*8, 50, 95)

	spread := roundHalf(edge / 2.2)
	var spreadStr string
	switch {
	case spread > 0:
		spreadStr = fmt.Sprintf("%s -%.1f", favoriteLabel(home), spread)
	case spread < 0:
		spreadStr = fmt.Sprintf("%s -%.1f", favoriteLabel(away), -spread)
	default:
		spreadStr = "PK"
	}

	return models.Prediction{
		GameID:     gameID,
		HomeTeam:   home.Name,
		AwayTeam:   away.Name,
		HomeWinPct: round1(homePct),
		AwayWinPct: round1(awayPct),
		Spread:     spreadStr,
		Confidence: round1(confidence),
		Reasoning:  reasoning(home, away, edge),
	}
}

// LinesFromPrediction derives market numbers from a prediction
func LinesFromPrediction(pred models.Prediction, home, away models.Team, rng *rand.Rand) models.BettingLine {
	edge := home.Strength - away.Strength + homeFieldEdge
	spread := roundHalf(edge / 2.2)
	homeML, awayML := moneylineFromSpread(spread)

	total := roundHalf((home.Strength+away.Strength)*0.28 + (rng.Float64()-0.5)*6)

	return models.BettingLine{
		GameID:        pred.GameID,
		HomeTeam:      home.Name,
		AwayTeam:      away.Name,
		Spread:        -spread,
		HomeMoneyline: homeML,
		AwayMoneyline: awayML,
		Total:         total,
	}
}

// moneylineFromSpread maps a point spread to American odds for both sides
func moneylineFromSpread(spread float64) (home, away int) {
	abs := math.Abs(spread)
	favorite := -(110 + int(abs*22))
	underdog := 100 + int(abs*19)
	if spread >= 0 {
		return favorite, underdog
	}
	return underdog, favorite
}

func favoriteLabel(team models.Team) string {
	if team.Abbreviation != "" {
		return team.Abbreviation
	}
	return team.Name
}

func reasoning(home, away models.Team, edge float64) string {
	switch {
	case edge > 10:
		return fmt.Sprintf("%s hold a clear edge on both sides of the ball; %s will need turnovers to stay in it.", home.Name, away.Name)
	case edge > 3:
		return fmt.Sprintf("%s are the stronger side at home, but %s have the talent to keep this close.", home.Name, away.Name)
	case edge > -3:
		return fmt.Sprintf("Even matchup; home field tilts the numbers slightly toward %s.", home.Name)
	case edge > -10:
		return fmt.Sprintf("%s travel well and rate ahead of %s despite playing on the road.", away.Name, home.Name)
	default:
		return fmt.Sprintf("%s are heavy favorites on the road against a struggling %s side.", away.Name, home.Name)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
