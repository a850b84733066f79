package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/iby-sports/gridiron-analytics/internal/models"
)

const oddsAPIBaseURL = "https://api.the-odds-api.com/v4"

// Error codes The Odds API returns when the paid usage quota is gone. A
// quota response must disable the source for the rest of the session rather
// than count as a per-call failure.
const (
	oddsAPIQuotaCode = "OUT_OF_USAGE_CREDITS"
	oddsAPIFreqCode  = "EXCEEDED_FREQ_LIMIT"
)

// OddsAPISource adapts The Odds API v4 for betting lines
type OddsAPISource struct {
	baseURL string
	apiKey  string
}

// NewOddsAPISource creates a new Odds API adapter
func NewOddsAPISource(apiKey string) *OddsAPISource {
	return &OddsAPISource{baseURL: oddsAPIBaseURL, apiKey: apiKey}
}

func (s *OddsAPISource) Name() string {
	return "oddsapi"
}

func (s *OddsAPISource) Supports(kind models.DataKind, league models.League) bool {
	return kind == models.KindOdds
}

func (s *OddsAPISource) sportKey(league models.League) string {
	if league == models.LeagueNCAA {
		return "americanfootball_ncaaf"
	}
	return "americanfootball_nfl"
}

func (s *OddsAPISource) NewRequest(ctx context.Context, kind models.DataKind, params models.FetchParams) (*http.Request, error) {
	if kind != models.KindOdds {
		return nil, fmt.Errorf("oddsapi: unsupported kind %s", kind)
	}
	query := url.Values{}
	// The Odds API takes its key as a query parameter, not a header
	query.Set("apiKey", s.apiKey)
	query.Set("regions", "us")
	query.Set("markets", "h2h,spreads,totals")
	query.Set("oddsFormat", "american")
	endpoint := fmt.Sprintf("%s/sports/%s/odds?%s", s.baseURL, s.sportKey(params.League), query.Encode())
	return http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
}

type oddsAPIEvent struct {
	ID           string    `json:"id"`
	CommenceTime time.Time `json:"commence_time"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	Bookmakers   []struct {
		Key     string `json:"key"`
		Title   string `json:"title"`
		Markets []struct {
			Key      string `json:"key"`
			Outcomes []struct {
				Name  string   `json:"name"`
				Price float64  `json:"price"`
				Point *float64 `json:"point"`
			} `json:"outcomes"`
		} `json:"markets"`
	} `json:"bookmakers"`
}

func (s *OddsAPISource) Parse(kind models.DataKind, body []byte) (*models.Result, error) {
	var events []oddsAPIEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	result := &models.Result{Kind: models.KindOdds}
	for _, event := range events {
		if event.HomeTeam == "" || event.AwayTeam == "" {
			return nil, fmt.Errorf("%w: event %s missing teams", ErrMalformed, event.ID)
		}
		if len(event.Bookmakers) == 0 {
			continue
		}

		book := event.Bookmakers[0]
		line := models.BettingLine{
			GameID:    event.ID,
			HomeTeam:  event.HomeTeam,
			AwayTeam:  event.AwayTeam,
			Bookmaker: book.Title,
		}
		for _, market := range book.Markets {
			switch market.Key {
			case "h2h":
				for _, outcome := range market.Outcomes {
					if outcome.Name == event.HomeTeam {
						line.HomeMoneyline = int(outcome.Price)
					} else if outcome.Name == event.AwayTeam {
						line.AwayMoneyline = int(outcome.Price)
					}
				}
			case "spreads":
				for _, outcome := range market.Outcomes {
					if outcome.Name == event.HomeTeam && outcome.Point != nil {
						line.Spread = *outcome.Point
					}
				}
			case "totals":
				for _, outcome := range market.Outcomes {
					if outcome.Name == "Over" && outcome.Point != nil {
						line.Total = *outcome.Point
					}
				}
			}
		}
		result.Lines = append(result.Lines, line)
	}
	return result, nil
}

// IsQuotaError recognizes The Odds API usage-credit exhaustion responses
func (s *OddsAPISource) IsQuotaError(statusCode int, body []byte) bool {
	if statusCode != http.StatusUnauthorized && statusCode != http.StatusTooManyRequests {
		return false
	}
	return bytes.Contains(body, []byte(oddsAPIQuotaCode)) || bytes.Contains(body, []byte(oddsAPIFreqCode))
}
