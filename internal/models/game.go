package models

import "time"

// League identifies which football league a record belongs to
type League string

const (
	LeagueNFL  League = "nfl"
	LeagueNCAA League = "ncaa"
)

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusFinal     GameStatus = "final"
)

// Team holds identity and the synthetic strength rating used by the
// fallback generators. Strength is a 0-100 scalar, not a real rating system.
type Team struct {
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	Conference   string  `json:"conference"`
	Division     string  `json:"division,omitempty"`
	Strength     float64 `json:"-"`
}

// Game is one scheduled, in-progress or completed matchup
type Game struct {
	ID        string     `json:"id"`
	League    League     `json:"league"`
	Week      int        `json:"week"`
	HomeTeam  Team       `json:"home_team"`
	AwayTeam  Team       `json:"away_team"`
	HomeScore int        `json:"home_score"`
	AwayScore int        `json:"away_score"`
	Status    GameStatus `json:"status"`
	Clock     string     `json:"clock,omitempty"`
	Period    int        `json:"period,omitempty"`
	Venue     string     `json:"venue,omitempty"`
	StartTime time.Time  `json:"start_time"`
	Source    SourceTag  `json:"source"`
}

// IsLive reports whether the game is in progress
func (g *Game) IsLive() bool {
	return g.Status == StatusLive
}
