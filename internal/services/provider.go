package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iby-sports/gridiron-analytics/internal/generator"
	"github.com/iby-sports/gridiron-analytics/internal/models"
	"github.com/iby-sports/gridiron-analytics/internal/providers"
)

// errQuotaExhausted marks a source whose paid usage credits ran out; the
// source is disabled for the rest of the session instead of being retried.
var errQuotaExhausted = errors.New("usage quota exhausted")

// ProviderOptions configures the fetch behavior of the data provider
type ProviderOptions struct {
	Timeout       time.Duration
	RetryAttempts int
	RetryBackoff  time.Duration
	TTLs          map[models.DataKind]time.Duration
}

// DataProvider is the consolidated remote-or-fallback fetch layer. For each
// data kind it walks a priority-ordered source list; if every candidate is
// exhausted, skipped or disabled it degrades to the synthetic generator.
// Fetch never returns an error: failure is absorbed and the caller always
// receives a structurally valid Result.
type DataProvider struct {
	httpClient *http.Client
	sources    map[models.DataKind][]providers.Source
	cache      CacheStore
	limiter    *SourceRateLimiter
	breakers   *BreakerSet
	gen        *generator.Generator
	logger     *logrus.Logger
	opts       ProviderOptions

	mu       sync.Mutex
	disabled map[string]string
}

// NewDataProvider creates the provider service
func NewDataProvider(
	cache CacheStore,
	limiter *SourceRateLimiter,
	breakers *BreakerSet,
	gen *generator.Generator,
	logger *logrus.Logger,
	opts ProviderOptions,
) *DataProvider {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RetryAttempts == 0 {
		opts.RetryAttempts = 3
	}
	return &DataProvider{
		httpClient: &http.Client{Timeout: opts.Timeout},
		sources:    make(map[models.DataKind][]providers.Source),
		cache:      cache,
		limiter:    limiter,
		breakers:   breakers,
		gen:        gen,
		logger:     logger,
		opts:       opts,
		disabled:   make(map[string]string),
	}
}

// SetTransport overrides the HTTP transport. Used by tests.
func (p *DataProvider) SetTransport(rt http.RoundTripper) {
	p.httpClient.Transport = rt
}

// Register appends sources for a kind in priority order
func (p *DataProvider) Register(kind models.DataKind, sources ...providers.Source) {
	p.sources[kind] = append(p.sources[kind], sources...)
}

// DisableSource marks a source unusable for the remainder of the session
func (p *DataProvider) DisableSource(name, reason string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disabled[name] = reason
	p.logger.WithFields(logrus.Fields{
		"source": name,
		"reason": reason,
	}).Warn("Source disabled for session")
}

func (p *DataProvider) disabledReason(name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	reason, ok := p.disabled[name]
	return reason, ok
}

// Fetch returns data for the kind, live if any source delivers, synthetic
// otherwise. Results are cached per (kind, params) for the kind's TTL.
func (p *DataProvider) Fetch(ctx context.Context, kind models.DataKind, params models.FetchParams) models.Result {
	key := params.CacheKey(kind)

	var cached models.Result
	if p.cache.Get(key, &cached) {
		return cached
	}

	log := p.logger.WithFields(logrus.Fields{"kind": kind, "league": params.League})

	for _, src := range p.sources[kind] {
		if !src.Supports(kind, params.League) {
			continue
		}
		if reason, ok := p.disabledReason(src.Name()); ok {
			log.WithFields(logrus.Fields{"source": src.Name(), "reason": reason}).Debug("Skipping disabled source")
			continue
		}
		if !p.limiter.Allow(src.Name()) {
			// Saturated window: skip without counting as a failure
			log.WithField("source", src.Name()).Debug("Source rate limited, skipping this cycle")
			continue
		}

		result, err := p.attempt(ctx, src, kind, params)
		if err != nil {
			if errors.Is(err, errQuotaExhausted) {
				p.DisableSource(src.Name(), "quota exhausted")
			}
			log.WithError(err).WithField("source", src.Name()).Warn("Source failed, trying next")
			continue
		}

		result.Tag(models.SourceLive)
		result.FetchedAt = time.Now().UTC()
		fillLeagueAndWeek(result, params)
		p.cache.Set(key, *result, p.ttl(kind))
		return *result
	}

	log.Info("All sources exhausted, generating synthetic data")
	result := p.gen.Generate(kind, params)
	p.cache.Set(key, result, p.ttl(kind))
	return result
}

// FetchMany fans out independent kinds concurrently and joins the results.
// Each kind targets a distinct cache key, so there is no shared mutable
// state between the goroutines.
func (p *DataProvider) FetchMany(ctx context.Context, kinds []models.DataKind, params models.FetchParams) map[models.DataKind]models.Result {
	results := make(map[models.DataKind]models.Result, len(kinds))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, kind := range kinds {
		wg.Add(1)
		go func(kind models.DataKind) {
			defer wg.Done()
			result := p.Fetch(ctx, kind, params)
			mu.Lock()
			results[kind] = result
			mu.Unlock()
		}(kind)
	}
	wg.Wait()
	return results
}

func (p *DataProvider) attempt(ctx context.Context, src providers.Source, kind models.DataKind, params models.FetchParams) (*models.Result, error) {
	value, err := p.breakers.Execute(src.Name(), func() (interface{}, error) {
		return p.doFetch(ctx, src, kind, params)
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.Result), nil
}

func (p *DataProvider) doFetch(ctx context.Context, src providers.Source, kind models.DataKind, params models.FetchParams) (*models.Result, error) {
	var lastErr error
	for attempt := 0; attempt < p.opts.RetryAttempts; attempt++ {
		if attempt > 0 {
			// fixed backoff between attempts, no jitter
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(p.opts.RetryBackoff):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
		req, err := src.NewRequest(attemptCtx, kind, params)
		if err != nil {
			cancel()
			return nil, err
		}

		resp, err := p.httpClient.Do(req)
		if err != nil {
			cancel()
			if !isRetryable(err) {
				return nil, err
			}
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		cancel()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			if qd, ok := src.(providers.QuotaDetector); ok && qd.IsQuotaError(resp.StatusCode, body) {
				return nil, fmt.Errorf("%w: %s", errQuotaExhausted, src.Name())
			}
			statusErr := fmt.Errorf("unexpected status %d from %s", resp.StatusCode, src.Name())
			if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
				lastErr = statusErr
				continue
			}
			// other 4xx will not improve on retry
			return nil, statusErr
		}

		result, err := src.Parse(kind, body)
		if err != nil {
			// malformed payload: fail the source, retrying won't help
			return nil, err
		}
		if result.Empty() {
			return nil, fmt.Errorf("source %s returned no usable data", src.Name())
		}
		return result, nil
	}
	return nil, lastErr
}

// isRetryable classifies transport errors. Timeouts are worth retrying with
// backoff; hard network-level failures (connection refused, DNS) and
// cancellation fail the source immediately.
func isRetryable(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func (p *DataProvider) ttl(kind models.DataKind) time.Duration {
	if ttl, ok := p.opts.TTLs[kind]; ok {
		return ttl
	}
	return time.Minute
}

// fillLeagueAndWeek stamps request context onto parsed games that the raw
// payload did not carry explicitly.
func fillLeagueAndWeek(result *models.Result, params models.FetchParams) {
	for i := range result.Games {
		if result.Games[i].League == "" {
			result.Games[i].League = params.League
		}
		if result.Games[i].Week == 0 {
			result.Games[i].Week = params.Week
		}
	}
}

// SourceStatus describes one source's session state for the ops endpoint
type SourceStatus struct {
	Name             string            `json:"name"`
	Kinds            []models.DataKind `json:"kinds"`
	Disabled         bool              `json:"disabled"`
	DisabledReason   string            `json:"disabled_reason,omitempty"`
	BreakerState     string            `json:"breaker_state"`
	RequestsInWindow int               `json:"requests_in_window"`
}

// Status reports every registered source's state
func (p *DataProvider) Status() []SourceStatus {
	kindsBySource := make(map[string][]models.DataKind)
	var order []string
	for _, kind := range []models.DataKind{models.KindGames, models.KindRankings, models.KindInjuries, models.KindOdds, models.KindNews} {
		for _, src := range p.sources[kind] {
			if _, seen := kindsBySource[src.Name()]; !seen {
				order = append(order, src.Name())
			}
			kindsBySource[src.Name()] = append(kindsBySource[src.Name()], kind)
		}
	}

	statuses := make([]SourceStatus, 0, len(order))
	for _, name := range order {
		reason, disabled := p.disabledReason(name)
		statuses = append(statuses, SourceStatus{
			Name:             name,
			Kinds:            kindsBySource[name],
			Disabled:         disabled,
			DisabledReason:   reason,
			BreakerState:     p.breakers.State(name).String(),
			RequestsInWindow: p.limiter.InWindow(name),
		})
	}
	return statuses
}
