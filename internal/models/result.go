package models

import (
	"fmt"
	"time"
)

// DataKind selects one category of dashboard data
type DataKind string

const (
	KindGames    DataKind = "games"
	KindRankings DataKind = "rankings"
	KindInjuries DataKind = "injuries"
	KindOdds     DataKind = "odds"
	KindNews     DataKind = "news"
)

// SourceTag marks whether a record came from a live fetch or a generator
type SourceTag string

const (
	SourceLive      SourceTag = "live"
	SourceSynthetic SourceTag = "synthetic"
)

// FetchParams carries request context for a data fetch
type FetchParams struct {
	League League `json:"league"`
	Season int    `json:"season,omitempty"`
	Week   int    `json:"week,omitempty"`
	GameID string `json:"game_id,omitempty"`
}

// CacheKey builds the cache key for this (kind, params) pair
func (p FetchParams) CacheKey(kind DataKind) string {
	return fmt.Sprintf("%s:%s:%d:%d:%s", kind, p.League, p.Season, p.Week, p.GameID)
}

// Result is the canonical payload for one data kind. Exactly one of the
// per-kind slices is populated, selected by Kind.
type Result struct {
	Kind      DataKind       `json:"kind"`
	Source    SourceTag      `json:"source"`
	FetchedAt time.Time      `json:"fetched_at"`
	Games     []Game         `json:"games,omitempty"`
	Rankings  []Ranking      `json:"rankings,omitempty"`
	Injuries  []InjuryReport `json:"injuries,omitempty"`
	Lines     []BettingLine  `json:"lines,omitempty"`
	News      []NewsItem     `json:"news,omitempty"`
}

// Tag stamps every record in the result with the given source tag
func (r *Result) Tag(tag SourceTag) {
	r.Source = tag
	for i := range r.Games {
		r.Games[i].Source = tag
	}
	for i := range r.Rankings {
		r.Rankings[i].Source = tag
	}
	for i := range r.Injuries {
		r.Injuries[i].Source = tag
	}
	for i := range r.Lines {
		r.Lines[i].Source = tag
	}
	for i := range r.News {
		r.News[i].Source = tag
	}
}

// Empty reports whether the result carries no records for its kind
func (r *Result) Empty() bool {
	switch r.Kind {
	case KindGames:
		return len(r.Games) == 0
	case KindRankings:
		return len(r.Rankings) == 0
	case KindInjuries:
		return len(r.Injuries) == 0
	case KindOdds:
		return len(r.Lines) == 0
	case KindNews:
		return len(r.News) == 0
	}
	return true
}
