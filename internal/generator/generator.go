package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iby-sports/gridiron-analytics/internal/models"
)

// Generator produces plausible fallback data without any network dependency.
// All randomness flows through one seedable source so output is reproducible
// in tests.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	Clock func() time.Time
}

// New creates a generator. A zero seed picks a time-based one.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		Clock: time.Now,
	}
}

// Generate synthesizes a structurally valid Result for the kind. It never
// fails; the UI must always have something to show.
func (g *Generator) Generate(kind models.DataKind, params models.FetchParams) models.Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	result := models.Result{Kind: kind, FetchedAt: g.Clock().UTC()}
	switch kind {
	case models.KindGames:
		result.Games = g.games(params)
	case models.KindRankings:
		result.Rankings = g.rankings(params)
	case models.KindInjuries:
		result.Injuries = g.injuries(params)
	case models.KindOdds:
		result.Lines = g.lines(params)
	case models.KindNews:
		result.News = g.news(params)
	}
	result.Tag(models.SourceSynthetic)
	return result
}

func (g *Generator) matchups(league models.League, count int) [][2]models.Team {
	teams := append([]models.Team(nil), Teams(league)...)
	g.rng.Shuffle(len(teams), func(i, j int) {
		teams[i], teams[j] = teams[j], teams[i]
	})
	if count > len(teams)/2 {
		count = len(teams) / 2
	}
	pairs := make([][2]models.Team, 0, count)
	for i := 0; i < count; i++ {
		pairs = append(pairs, [2]models.Team{teams[2*i], teams[2*i+1]})
	}
	return pairs
}

func (g *Generator) games(params models.FetchParams) []models.Game {
	count := 14
	if params.League == models.LeagueNCAA {
		count = 10
	}
	now := g.Clock().UTC()

	var games []models.Game
	for _, pair := range g.matchups(params.League, count) {
		home, away := pair[0], pair[1]
		game := models.Game{
			ID:       "syn-" + uuid.NewString(),
			League:   params.League,
			Week:     params.Week,
			HomeTeam: home,
			AwayTeam: away,
			Venue:    home.Name + " Stadium",
		}

		// Scores, clock and start time must agree with the status
		switch g.rng.Intn(3) {
		case 0:
			game.Status = models.StatusScheduled
			game.StartTime = now.Add(time.Duration(1+g.rng.Intn(72)) * time.Hour)
		case 1:
			game.Status = models.StatusLive
			game.StartTime = now.Add(-time.Duration(30+g.rng.Intn(120)) * time.Minute)
			game.Period = 1 + g.rng.Intn(4)
			game.Clock = fmt.Sprintf("%d:%02d", g.rng.Intn(15), g.rng.Intn(60))
			progress := float64(game.Period) / 4
			game.HomeScore = g.score(home, progress)
			game.AwayScore = g.score(away, progress)
		default:
			game.Status = models.StatusFinal
			game.StartTime = now.Add(-time.Duration(4+g.rng.Intn(68)) * time.Hour)
			game.HomeScore = g.score(home, 1)
			game.AwayScore = g.score(away, 1)
			if game.HomeScore == game.AwayScore {
				// regulation football rarely ends tied; settle it in "overtime"
				game.HomeScore += 3
			}
		}
		games = append(games, game)
	}
	return games
}

func (g *Generator) score(team models.Team, progress float64) int {
	mean := 13 + team.Strength/5
	points := (mean + (g.rng.Float64()-0.5)*14) * progress
	if points < 0 {
		points = 0
	}
	return int(points)
}

func (g *Generator) rankings(params models.FetchParams) []models.Ranking {
	teams := append([]models.Team(nil), Teams(params.League)...)
	// order by strength with a little jitter so rankings are not static
	jitter := make(map[string]float64, len(teams))
	for _, team := range teams {
		jitter[team.Abbreviation] = (g.rng.Float64() - 0.5) * 4
	}
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Strength+jitter[teams[i].Abbreviation] > teams[j].Strength+jitter[teams[j].Abbreviation]
	})
	if len(teams) > 25 {
		teams = teams[:25]
	}

	played := params.Week - 1
	if played < 1 {
		played = 9
	}
	var rankings []models.Ranking
	for i, team := range teams {
		wins := int(float64(played) * (team.Strength / 100))
		rankings = append(rankings, models.Ranking{
			Rank:   i + 1,
			Team:   team.Name,
			Record: fmt.Sprintf("%d-%d", wins, played-wins),
			Points: 1550 - i*60 + g.rng.Intn(20),
			Trend:  []string{"-", "+1", "+2", "-1", "-2"}[g.rng.Intn(5)],
		})
	}
	return rankings
}

var injuryPositions = []string{"QB", "RB", "WR", "TE", "OT", "LB", "CB", "S", "DE"}

var injuryStatuses = []string{"Questionable", "Doubtful", "Out", "Injured Reserve"}

var injuryDetails = []string{"Hamstring", "Ankle", "Knee", "Shoulder", "Concussion protocol", "Groin", "Illness"}

var playerFirstNames = []string{"Marcus", "Jalen", "Derrick", "Tyler", "Jordan", "Chris", "Malik", "Devin", "Xavier", "Trey"}

var playerLastNames = []string{"Johnson", "Williams", "Smith", "Brown", "Davis", "Harris", "Jackson", "Robinson", "Carter", "Mitchell"}

func (g *Generator) injuries(params models.FetchParams) []models.InjuryReport {
	teams := Teams(params.League)
	now := g.Clock().UTC()
	count := 8 + g.rng.Intn(5)

	var reports []models.InjuryReport
	for i := 0; i < count; i++ {
		team := teams[g.rng.Intn(len(teams))]
		reports = append(reports, models.InjuryReport{
			Team:     team.Name,
			Player:   playerFirstNames[g.rng.Intn(len(playerFirstNames))] + " " + playerLastNames[g.rng.Intn(len(playerLastNames))],
			Position: injuryPositions[g.rng.Intn(len(injuryPositions))],
			Status:   injuryStatuses[g.rng.Intn(len(injuryStatuses))],
			Detail:   injuryDetails[g.rng.Intn(len(injuryDetails))],
			Updated:  now.Add(-time.Duration(g.rng.Intn(48)) * time.Hour),
		})
	}
	return reports
}

func (g *Generator) lines(params models.FetchParams) []models.BettingLine {
	count := 12
	if params.League == models.LeagueNCAA {
		count = 10
	}
	var lines []models.BettingLine
	for _, pair := range g.matchups(params.League, count) {
		home, away := pair[0], pair[1]
		pred := Predict("syn-"+uuid.NewString(), home, away, g.rng)
		lines = append(lines, LinesFromPrediction(pred, home, away, g.rng))
	}
	return lines
}

var newsTemplates = []string{
	"%s surge up the standings after statement win over %s",
	"%s name starter for Sunday's matchup against %s",
	"Injury concerns mount for %s ahead of clash with %s",
	"%s coaching staff shakes up play calling before %s game",
	"Playoff picture tightens as %s edge %s in overtime thriller",
	"%s defense dominates in win over %s",
}

func (g *Generator) news(params models.FetchParams) []models.NewsItem {
	teams := Teams(params.League)
	now := g.Clock().UTC()

	var items []models.NewsItem
	for i := 0; i < 8; i++ {
		a := teams[g.rng.Intn(len(teams))]
		b := teams[g.rng.Intn(len(teams))]
		for b.Name == a.Name {
			b = teams[g.rng.Intn(len(teams))]
		}
		template := newsTemplates[g.rng.Intn(len(newsTemplates))]
		items = append(items, models.NewsItem{
			Title:     fmt.Sprintf(template, a.Name, b.Name),
			Outlet:    "Gridiron Wire",
			Published: now.Add(-time.Duration(5+g.rng.Intn(600)) * time.Minute),
		})
	}
	return items
}

// PredictGame builds a prediction for an arbitrary game, looking up team
// strengths from the static tables. Used for the predictions endpoint over
// live game data as well as by the synthetic generators.
func (g *Generator) PredictGame(game models.Game) models.Prediction {
	g.mu.Lock()
	defer g.mu.Unlock()

	home := game.HomeTeam
	if home.Strength == 0 {
		home = TeamByName(game.League, home.Name)
	}
	away := game.AwayTeam
	if away.Strength == 0 {
		away = TeamByName(game.League, away.Name)
	}
	pred := Predict(game.ID, home, away, g.rng)
	pred.Source = game.Source
	return pred
}
