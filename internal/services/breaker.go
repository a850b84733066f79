package services

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// BreakerSet keeps one circuit breaker per remote source so a flapping
// endpoint stops being hammered while the others keep serving.
type BreakerSet struct {
	breakers map[string]*gobreaker.CircuitBreaker
	logger   *logrus.Logger
}

// NewBreakerSet creates breakers for the named sources
func NewBreakerSet(names []string, threshold int, timeout time.Duration, logger *logrus.Logger) *BreakerSet {
	breakers := make(map[string]*gobreaker.CircuitBreaker, len(names))
	for _, name := range names {
		settings := gobreaker.Settings{
			Name:        name,
			MaxRequests: uint32(threshold),
			Timeout:     timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 3 && failureRatio >= 0.6
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.WithFields(logrus.Fields{
					"component": "circuit_breaker",
					"source":    name,
					"from":      from.String(),
					"to":        to.String(),
				}).Info("Circuit breaker state changed")
			},
		}
		breakers[name] = gobreaker.NewCircuitBreaker(settings)
	}
	return &BreakerSet{breakers: breakers, logger: logger}
}

// Execute wraps a source call with circuit breaker protection
func (bs *BreakerSet) Execute(source string, fn func() (interface{}, error)) (interface{}, error) {
	breaker, exists := bs.breakers[source]
	if !exists {
		bs.logger.WithFields(logrus.Fields{
			"component": "circuit_breaker",
			"source":    source,
		}).Warn("No circuit breaker found for source, executing without protection")
		return fn()
	}
	return breaker.Execute(fn)
}

// State returns the current state of a source's breaker
func (bs *BreakerSet) State(source string) gobreaker.State {
	if breaker, exists := bs.breakers[source]; exists {
		return breaker.State()
	}
	return gobreaker.StateClosed
}
