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

const ncaaBaseURL = "https://ncaa-api.henrygd.me"

// NCAASource adapts the community-run NCAA data API. College football only;
// used as the second candidate behind ESPN for games and rankings.
type NCAASource struct {
	baseURL string
}

// NewNCAASource creates an NCAA community API adapter
func NewNCAASource() *NCAASource {
	return &NCAASource{baseURL: ncaaBaseURL}
}

func (s *NCAASource) Name() string {
	return "ncaa"
}

func (s *NCAASource) Supports(kind models.DataKind, league models.League) bool {
	if league != models.LeagueNCAA {
		return false
	}
	return kind == models.KindGames || kind == models.KindRankings
}

func (s *NCAASource) NewRequest(ctx context.Context, kind models.DataKind, params models.FetchParams) (*http.Request, error) {
	var url string
	switch kind {
	case models.KindGames:
		url = fmt.Sprintf("%s/scoreboard/football/fbs", s.baseURL)
		if params.Week > 0 {
			url = fmt.Sprintf("%s/%d", url, params.Week)
		}
	case models.KindRankings:
		url = fmt.Sprintf("%s/rankings/football/fbs/associated-press", s.baseURL)
	default:
		return nil, fmt.Errorf("ncaa: unsupported kind %s", kind)
	}
	return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
}

type ncaaScoreboardResponse struct {
	Games []struct {
		Game struct {
			GameID         string        `json:"gameID"`
			GameState      string        `json:"gameState"`
			ContestClock   string        `json:"contestClock"`
			CurrentPeriod  string        `json:"currentPeriod"`
			StartTimeEpoch string        `json:"startTimeEpoch"`
			Home           ncaaTeamScore `json:"home"`
			Away           ncaaTeamScore `json:"away"`
		} `json:"game"`
	} `json:"games"`
}

type ncaaTeamScore struct {
	Score string `json:"score"`
	Names struct {
		Short string `json:"short"`
		Char6 string `json:"char6"`
	} `json:"names"`
	Conferences []struct {
		ConferenceName string `json:"conferenceName"`
	} `json:"conferences"`
}

type ncaaRankingsResponse struct {
	Data []struct {
		Rank   string `json:"RANK"`
		School string `json:"SCHOOL"`
		Points string `json:"POINTS"`
		Record string `json:"RECORD"`
	} `json:"data"`
}

func (s *NCAASource) Parse(kind models.DataKind, body []byte) (*models.Result, error) {
	switch kind {
	case models.KindGames:
		return s.parseScoreboard(body)
	case models.KindRankings:
		return s.parseRankings(body)
	default:
		return nil, fmt.Errorf("ncaa: unsupported kind %s", kind)
	}
}

func (s *NCAASource) parseScoreboard(body []byte) (*models.Result, error) {
	var resp ncaaScoreboardResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if resp.Games == nil {
		return nil, fmt.Errorf("%w: scoreboard has no games field", ErrMalformed)
	}

	result := &models.Result{Kind: models.KindGames}
	for _, wrapper := range resp.Games {
		g := wrapper.Game
		if g.Home.Names.Short == "" || g.Away.Names.Short == "" {
			return nil, fmt.Errorf("%w: game %s missing team names", ErrMalformed, g.GameID)
		}

		game := models.Game{
			ID:     g.GameID,
			League: models.LeagueNCAA,
			Status: ncaaState(g.GameState),
			Clock:  g.ContestClock,
		}
		game.HomeTeam = ncaaTeam(g.Home)
		game.AwayTeam = ncaaTeam(g.Away)
		game.HomeScore, _ = strconv.Atoi(g.Home.Score)
		game.AwayScore, _ = strconv.Atoi(g.Away.Score)
		if period, err := strconv.Atoi(g.CurrentPeriod); err == nil {
			game.Period = period
		}
		if epoch, err := strconv.ParseInt(g.StartTimeEpoch, 10, 64); err == nil {
			game.StartTime = time.Unix(epoch, 0).UTC()
		}
		result.Games = append(result.Games, game)
	}
	return result, nil
}

func (s *NCAASource) parseRankings(body []byte) (*models.Result, error) {
	var resp ncaaRankingsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: rankings payload is empty", ErrMalformed)
	}

	result := &models.Result{Kind: models.KindRankings}
	for _, row := range resp.Data {
		rank, err := strconv.Atoi(row.Rank)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric rank %q", ErrMalformed, row.Rank)
		}
		points, _ := strconv.Atoi(row.Points)
		result.Rankings = append(result.Rankings, models.Ranking{
			Rank:   rank,
			Team:   row.School,
			Record: row.Record,
			Points: points,
		})
	}
	return result, nil
}

func ncaaTeam(t ncaaTeamScore) models.Team {
	team := models.Team{
		Name:         t.Names.Short,
		Abbreviation: t.Names.Char6,
	}
	if len(t.Conferences) > 0 {
		team.Conference = t.Conferences[0].ConferenceName
	}
	return team
}

func ncaaState(state string) models.GameStatus {
	switch state {
	case "live", "in_progress":
		return models.StatusLive
	case "final":
		return models.StatusFinal
	default:
		return models.StatusScheduled
	}
}
