package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iby-sports/gridiron-analytics/internal/generator"
	"github.com/iby-sports/gridiron-analytics/internal/models"
	"github.com/iby-sports/gridiron-analytics/internal/services"
	"github.com/iby-sports/gridiron-analytics/pkg/utils"
)

func dataTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	cache := services.NewMemoryCache(log)
	limiter := services.NewSourceRateLimiter(100, time.Minute)
	breakers := services.NewBreakerSet(nil, 5, time.Minute, log)
	gen := generator.New(42)

	// No sources registered: every fetch degrades to synthetic data, which is
	// exactly what these handler tests need.
	provider := services.NewDataProvider(cache, limiter, breakers, gen, log, services.ProviderOptions{})
	handler := NewDataHandler(provider, gen)

	router := gin.New()
	router.GET("/games", handler.GetGames)
	router.GET("/games/:id", handler.GetGame)
	router.GET("/rankings", handler.GetRankings)
	router.GET("/predictions", handler.GetPredictions)
	router.GET("/sources", handler.GetSources)
	return router
}

func doRequest(router *gin.Engine, path string) (*httptest.ResponseRecorder, utils.Response) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var resp utils.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestGetGamesReturnsScoreboard(t *testing.T) {
	router := dataTestRouter()

	w, resp := doRequest(router, "/games?league=nfl&week=9")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result models.Result
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, models.KindGames, result.Kind)
	assert.Equal(t, models.SourceSynthetic, result.Source)
	assert.NotEmpty(t, result.Games)
}

func TestGetGamesRejectsBadLeague(t *testing.T) {
	router := dataTestRouter()

	w, resp := doRequest(router, "/games?league=xfl")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestGetGamesRejectsBadWeek(t *testing.T) {
	router := dataTestRouter()

	for _, week := range []string{"0", "19", "abc"} {
		w, _ := doRequest(router, "/games?league=nfl&week="+week)
		assert.Equal(t, http.StatusBadRequest, w.Code, "week=%s", week)
	}
}

func TestGetGameNotFound(t *testing.T) {
	router := dataTestRouter()

	w, resp := doRequest(router, "/games/no-such-game?league=nfl&week=9")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
}

func TestGetPredictionsCoversEveryGame(t *testing.T) {
	router := dataTestRouter()

	w, resp := doRequest(router, "/predictions?league=nfl&week=9")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var payload struct {
		League      models.League       `json:"league"`
		Week        int                 `json:"week"`
		Predictions []models.Prediction `json:"predictions"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))

	assert.Equal(t, models.LeagueNFL, payload.League)
	assert.Equal(t, 9, payload.Week)
	require.Len(t, payload.Predictions, 14)
	for _, pred := range payload.Predictions {
		assert.GreaterOrEqual(t, pred.HomeWinPct, 5.0)
		assert.LessOrEqual(t, pred.HomeWinPct, 95.0)
		assert.NotEmpty(t, pred.Spread)
	}
}

func TestGetSources(t *testing.T) {
	router := dataTestRouter()

	w, resp := doRequest(router, "/sources")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}
