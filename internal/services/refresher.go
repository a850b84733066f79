package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/iby-sports/gridiron-analytics/internal/models"
)

// Refresher re-fetches the fast-moving data kinds on a schedule and pushes
// the results to websocket subscribers so game cards update without polling.
type Refresher struct {
	provider *DataProvider
	hub      *Hub
	logger   *logrus.Logger
	cron     *cron.Cron
	interval time.Duration

	mu        sync.Mutex
	isRunning bool
}

// NewRefresher creates a refresher service
func NewRefresher(provider *DataProvider, hub *Hub, logger *logrus.Logger, interval time.Duration) *Refresher {
	return &Refresher{
		provider: provider,
		hub:      hub,
		logger:   logger,
		cron:     cron.New(),
		interval: interval,
	}
}

// Start begins the scheduled refresh loop
func (r *Refresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return fmt.Errorf("refresher is already running")
	}

	schedule := fmt.Sprintf("@every %s", r.interval.String())
	if _, err := r.cron.AddFunc(schedule, r.refresh); err != nil {
		return fmt.Errorf("failed to schedule refresher: %w", err)
	}

	// Rankings and injuries move slowly; refresh them hourly
	if _, err := r.cron.AddFunc("@hourly", r.refreshSlow); err != nil {
		return fmt.Errorf("failed to schedule slow refresher: %w", err)
	}

	r.cron.Start()
	r.isRunning = true

	// Warm the cache right away
	go r.refresh()

	r.logger.Info("Refresher service started")
	return nil
}

// Stop halts the scheduled refreshing
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return
	}

	ctx := r.cron.Stop()
	<-ctx.Done()

	r.isRunning = false
	r.logger.Info("Refresher service stopped")
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	week := CurrentWeek(time.Now())
	for _, league := range []models.League{models.LeagueNFL, models.LeagueNCAA} {
		params := models.FetchParams{League: league, Week: week}
		results := r.provider.FetchMany(ctx, []models.DataKind{models.KindGames, models.KindOdds}, params)
		for _, result := range results {
			r.hub.Broadcast(Event{Type: "refresh", League: league, Result: result})
		}
	}
}

func (r *Refresher) refreshSlow() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	week := CurrentWeek(time.Now())
	for _, league := range []models.League{models.LeagueNFL, models.LeagueNCAA} {
		params := models.FetchParams{League: league, Week: week}
		results := r.provider.FetchMany(ctx, []models.DataKind{models.KindRankings, models.KindInjuries, models.KindNews}, params)
		for _, result := range results {
			r.hub.Broadcast(Event{Type: "refresh", League: league, Result: result})
		}
	}
}

// CurrentWeek approximates the football week number for a date: weeks since
// the first Thursday of September, clamped to the regular season range.
func CurrentWeek(now time.Time) int {
	year := now.Year()
	if now.Month() < time.March {
		year--
	}
	kickoff := time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC)
	for kickoff.Weekday() != time.Thursday {
		kickoff = kickoff.AddDate(0, 0, 1)
	}

	week := int(now.Sub(kickoff).Hours()/(24*7)) + 1
	if week < 1 {
		week = 1
	}
	if week > 18 {
		week = 18
	}
	return week
}
