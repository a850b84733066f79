package models

import "time"

// Ranking is one poll slot (AP Top 25 style for NCAA, power ranking for NFL)
type Ranking struct {
	Rank   int       `json:"rank"`
	Team   string    `json:"team"`
	Record string    `json:"record,omitempty"`
	Points int       `json:"points,omitempty"`
	Trend  string    `json:"trend,omitempty"`
	Source SourceTag `json:"source"`
}

// InjuryReport is one player's injury status line
type InjuryReport struct {
	Team     string    `json:"team"`
	Player   string    `json:"player"`
	Position string    `json:"position"`
	Status   string    `json:"status"`
	Detail   string    `json:"detail,omitempty"`
	Updated  time.Time `json:"updated"`
	Source   SourceTag `json:"source"`
}

// NewsItem is one headline from a news feed
type NewsItem struct {
	Title     string    `json:"title"`
	Summary   string    `json:"summary,omitempty"`
	URL       string    `json:"url,omitempty"`
	Outlet    string    `json:"outlet,omitempty"`
	Published time.Time `json:"published"`
	Source    SourceTag `json:"source"`
}
