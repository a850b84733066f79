package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iby-sports/gridiron-analytics/internal/models"
)

func TestHubBroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub(testLogger())
	a := hub.Subscribe()
	b := hub.Subscribe()
	assert.Equal(t, 2, hub.Count())

	hub.Broadcast(Event{Type: "refresh", League: models.LeagueNFL, Result: models.Result{Kind: models.KindGames}})

	for _, ch := range []chan []byte{a, b} {
		select {
		case data := <-ch:
			var event Event
			require.NoError(t, json.Unmarshal(data, &event))
			assert.Equal(t, "refresh", event.Type)
			assert.Equal(t, models.LeagueNFL, event.League)
		default:
			t.Fatal("subscriber did not receive the broadcast")
		}
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(testLogger())
	ch := hub.Subscribe()

	hub.Unsubscribe(ch)
	assert.Equal(t, 0, hub.Count())

	_, open := <-ch
	assert.False(t, open)

	// Unsubscribing twice must not panic on a closed channel
	hub.Unsubscribe(ch)
}

func TestHubDropsWhenSubscriberBufferFull(t *testing.T) {
	hub := NewHub(testLogger())
	ch := hub.Subscribe()

	// Overfill the buffered channel; Broadcast must never block
	for i := 0; i < 20; i++ {
		hub.Broadcast(Event{Type: "refresh"})
	}
	assert.Equal(t, 16, len(ch))
}
