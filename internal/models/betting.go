package models

// Prediction holds the win-probability bundle for one game. The two
// probabilities are computed independently and are not forced to sum to 100.
type Prediction struct {
	GameID     string    `json:"game_id"`
	HomeTeam   string    `json:"home_team"`
	AwayTeam   string    `json:"away_team"`
	HomeWinPct float64   `json:"home_win_pct"`
	AwayWinPct float64   `json:"away_win_pct"`
	Spread     string    `json:"spread"`
	Confidence float64   `json:"confidence"`
	Reasoning  string    `json:"reasoning"`
	Source     SourceTag `json:"source"`
}

// BettingLine carries the market numbers for one game
type BettingLine struct {
	GameID        string    `json:"game_id"`
	HomeTeam      string    `json:"home_team"`
	AwayTeam      string    `json:"away_team"`
	Spread        float64   `json:"spread"`
	HomeMoneyline int       `json:"home_moneyline"`
	AwayMoneyline int       `json:"away_moneyline"`
	Total         float64   `json:"total"`
	Bookmaker     string    `json:"bookmaker,omitempty"`
	Source        SourceTag `json:"source"`
}
