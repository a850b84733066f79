package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/iby-sports/gridiron-analytics/internal/models"
)

const espnBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football"

// ESPNSource adapts ESPN's undocumented site API. It serves scoreboards and
// news for both leagues, rankings for college football, and injury reports
// for the NFL.
type ESPNSource struct {
	baseURL string
}

// NewESPNSource creates an ESPN source adapter
func NewESPNSource() *ESPNSource {
	return &ESPNSource{baseURL: espnBaseURL}
}

func (s *ESPNSource) Name() string {
	return "espn"
}

func (s *ESPNSource) Supports(kind models.DataKind, league models.League) bool {
	switch kind {
	case models.KindGames, models.KindNews:
		return true
	case models.KindRankings:
		return league == models.LeagueNCAA
	case models.KindInjuries:
		return league == models.LeagueNFL
	default:
		return false
	}
}

func (s *ESPNSource) leaguePath(league models.League) string {
	if league == models.LeagueNCAA {
		return "college-football"
	}
	return "nfl"
}

func (s *ESPNSource) NewRequest(ctx context.Context, kind models.DataKind, params models.FetchParams) (*http.Request, error) {
	var url string
	switch kind {
	case models.KindGames:
		url = fmt.Sprintf("%s/%s/scoreboard", s.baseURL, s.leaguePath(params.League))
		if params.Week > 0 {
			url = fmt.Sprintf("%s?week=%d", url, params.Week)
		}
	case models.KindRankings:
		url = fmt.Sprintf("%s/college-football/rankings", s.baseURL)
	case models.KindInjuries:
		url = fmt.Sprintf("%s/nfl/injuries", s.baseURL)
	case models.KindNews:
		url = fmt.Sprintf("%s/%s/news", s.baseURL, s.leaguePath(params.League))
	default:
		return nil, fmt.Errorf("espn: unsupported kind %s", kind)
	}
	return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
}

// ESPN API response structures
type espnScoreboardResponse struct {
	Week struct {
		Number int `json:"number"`
	} `json:"week"`
	Events []espnEvent `json:"events"`
}

type espnEvent struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Name   string `json:"name"`
	Status struct {
		Type struct {
			State     string `json:"state"`
			Completed bool   `json:"completed"`
		} `json:"type"`
		DisplayClock string `json:"displayClock"`
		Period       int    `json:"period"`
	} `json:"status"`
	Competitions []struct {
		Venue struct {
			FullName string `json:"fullName"`
		} `json:"venue"`
		Competitors []struct {
			HomeAway string `json:"homeAway"`
			Score    string `json:"score"`
			Team     struct {
				DisplayName    string `json:"displayName"`
				Abbreviation   string `json:"abbreviation"`
				ConferenceName string `json:"conferenceName"`
			} `json:"team"`
		} `json:"competitors"`
	} `json:"competitions"`
}

type espnRankingsResponse struct {
	Rankings []struct {
		Name  string `json:"name"`
		Ranks []struct {
			Current       int    `json:"current"`
			Points        int    `json:"points"`
			RecordSummary string `json:"recordSummary"`
			Trend         string `json:"trend"`
			Team          struct {
				Nickname string `json:"nickname"`
				Location string `json:"location"`
			} `json:"team"`
		} `json:"ranks"`
	} `json:"rankings"`
}

type espnInjuriesResponse struct {
	Injuries []struct {
		DisplayName string `json:"displayName"`
		Injuries    []struct {
			Status  string `json:"status"`
			Date    string `json:"date"`
			Athlete struct {
				DisplayName string `json:"displayName"`
				Position    struct {
					Abbreviation string `json:"abbreviation"`
				} `json:"position"`
			} `json:"athlete"`
			Details struct {
				Type   string `json:"type"`
				Detail string `json:"detail"`
			} `json:"details"`
		} `json:"injuries"`
	} `json:"injuries"`
}

type espnNewsResponse struct {
	Articles []struct {
		Headline    string `json:"headline"`
		Description string `json:"description"`
		Published   string `json:"published"`
		Links       struct {
			Web struct {
				Href string `json:"href"`
			} `json:"web"`
		} `json:"links"`
	} `json:"articles"`
}

func (s *ESPNSource) Parse(kind models.DataKind, body []byte) (*models.Result, error) {
	switch kind {
	case models.KindGames:
		return s.parseScoreboard(body)
	case models.KindRankings:
		return s.parseRankings(body)
	case models.KindInjuries:
		return s.parseInjuries(body)
	case models.KindNews:
		return s.parseNews(body)
	default:
		return nil, fmt.Errorf("espn: unsupported kind %s", kind)
	}
}

func (s *ESPNSource) parseScoreboard(body []byte) (*models.Result, error) {
	var resp espnScoreboardResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if resp.Events == nil {
		return nil, fmt.Errorf("%w: scoreboard has no events field", ErrMalformed)
	}

	result := &models.Result{Kind: models.KindGames}
	for _, event := range resp.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		comp := event.Competitions[0]

		game := models.Game{
			ID:     event.ID,
			Week:   resp.Week.Number,
			Status: espnState(event.Status.Type.State),
			Clock:  event.Status.DisplayClock,
			Period: event.Status.Period,
			Venue:  comp.Venue.FullName,
		}
		if start, err := time.Parse("2006-01-02T15:04Z", event.Date); err == nil {
			game.StartTime = start
		}
		for _, competitor := range comp.Competitors {
			team := models.Team{
				Name:         competitor.Team.DisplayName,
				Abbreviation: competitor.Team.Abbreviation,
				Conference:   competitor.Team.ConferenceName,
			}
			score, _ := strconv.Atoi(competitor.Score)
			if competitor.HomeAway == "home" {
				game.HomeTeam = team
				game.HomeScore = score
			} else {
				game.AwayTeam = team
				game.AwayScore = score
			}
		}
		if game.HomeTeam.Name == "" || game.AwayTeam.Name == "" {
			return nil, fmt.Errorf("%w: event %s missing competitors", ErrMalformed, event.ID)
		}
		result.Games = append(result.Games, game)
	}
	return result, nil
}

func (s *ESPNSource) parseRankings(body []byte) (*models.Result, error) {
	var resp espnRankingsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(resp.Rankings) == 0 {
		return nil, fmt.Errorf("%w: no ranking polls present", ErrMalformed)
	}

	// First poll is the AP Top 25
	result := &models.Result{Kind: models.KindRankings}
	for _, rank := range resp.Rankings[0].Ranks {
		name := rank.Team.Location
		if rank.Team.Nickname != "" {
			name = rank.Team.Location + " " + rank.Team.Nickname
		}
		result.Rankings = append(result.Rankings, models.Ranking{
			Rank:   rank.Current,
			Team:   name,
			Record: rank.RecordSummary,
			Points: rank.Points,
			Trend:  rank.Trend,
		})
	}
	return result, nil
}

func (s *ESPNSource) parseInjuries(body []byte) (*models.Result, error) {
	var resp espnInjuriesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if resp.Injuries == nil {
		return nil, fmt.Errorf("%w: no injuries field present", ErrMalformed)
	}

	result := &models.Result{Kind: models.KindInjuries}
	for _, teamReport := range resp.Injuries {
		for _, injury := range teamReport.Injuries {
			report := models.InjuryReport{
				Team:     teamReport.DisplayName,
				Player:   injury.Athlete.DisplayName,
				Position: injury.Athlete.Position.Abbreviation,
				Status:   injury.Status,
				Detail:   injury.Details.Detail,
			}
			if report.Detail == "" {
				report.Detail = injury.Details.Type
			}
			if updated, err := time.Parse(time.RFC3339, injury.Date); err == nil {
				report.Updated = updated
			}
			result.Injuries = append(result.Injuries, report)
		}
	}
	return result, nil
}

func (s *ESPNSource) parseNews(body []byte) (*models.Result, error) {
	var resp espnNewsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if resp.Articles == nil {
		return nil, fmt.Errorf("%w: no articles field present", ErrMalformed)
	}

	result := &models.Result{Kind: models.KindNews}
	for _, article := range resp.Articles {
		item := models.NewsItem{
			Title:   article.Headline,
			Summary: article.Description,
			URL:     article.Links.Web.Href,
			Outlet:  "ESPN",
		}
		if published, err := time.Parse(time.RFC3339, article.Published); err == nil {
			item.Published = published
		}
		result.News = append(result.News, item)
	}
	return result, nil
}

func espnState(state string) models.GameStatus {
	switch state {
	case "in":
		return models.StatusLive
	case "post":
		return models.StatusFinal
	default:
		return models.StatusScheduled
	}
}
