package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iby-sports/gridiron-analytics/internal/generator"
	"github.com/iby-sports/gridiron-analytics/internal/models"
	"github.com/iby-sports/gridiron-analytics/internal/services"
	"github.com/iby-sports/gridiron-analytics/pkg/utils"
)

// DataHandler serves the dashboard data endpoints off the provider layer.
// The provider absorbs all fetch failures, so these handlers only ever fail
// on bad input.
type DataHandler struct {
	provider *services.DataProvider
	gen      *generator.Generator
}

// NewDataHandler creates a data handler
func NewDataHandler(provider *services.DataProvider, gen *generator.Generator) *DataHandler {
	return &DataHandler{provider: provider, gen: gen}
}

func (h *DataHandler) fetchParams(c *gin.Context) (models.FetchParams, bool) {
	league := models.League(c.DefaultQuery("league", string(models.LeagueNFL)))
	if league != models.LeagueNFL && league != models.LeagueNCAA {
		utils.SendValidationError(c, "invalid league", "league must be nfl or ncaa")
		return models.FetchParams{}, false
	}

	params := models.FetchParams{
		League: league,
		Season: time.Now().Year(),
		Week:   services.CurrentWeek(time.Now()),
	}
	if weekStr := c.Query("week"); weekStr != "" {
		week, err := strconv.Atoi(weekStr)
		if err != nil || week < 1 || week > 18 {
			utils.SendValidationError(c, "invalid week", "week must be between 1 and 18")
			return models.FetchParams{}, false
		}
		params.Week = week
	}
	return params, true
}

// GetGames returns the scoreboard for a league and week
func (h *DataHandler) GetGames(c *gin.Context) {
	params, ok := h.fetchParams(c)
	if !ok {
		return
	}
	result := h.provider.Fetch(c.Request.Context(), models.KindGames, params)
	utils.SendSuccess(c, result)
}

// GetGame returns a single game by identifier
func (h *DataHandler) GetGame(c *gin.Context) {
	params, ok := h.fetchParams(c)
	if !ok {
		return
	}
	result := h.provider.Fetch(c.Request.Context(), models.KindGames, params)
	id := c.Param("id")
	for _, game := range result.Games {
		if game.ID == id {
			utils.SendSuccess(c, game)
			return
		}
	}
	utils.SendNotFound(c, "game not found")
}

// GetRankings returns the current poll for a league
func (h *DataHandler) GetRankings(c *gin.Context) {
	params, ok := h.fetchParams(c)
	if !ok {
		return
	}
	result := h.provider.Fetch(c.Request.Context(), models.KindRankings, params)
	utils.SendSuccess(c, result)
}

// GetInjuries returns the injury report feed for a league
func (h *DataHandler) GetInjuries(c *gin.Context) {
	params, ok := h.fetchParams(c)
	if !ok {
		return
	}
	result := h.provider.Fetch(c.Request.Context(), models.KindInjuries, params)
	utils.SendSuccess(c, result)
}

// GetOdds returns betting lines for a league
func (h *DataHandler) GetOdds(c *gin.Context) {
	params, ok := h.fetchParams(c)
	if !ok {
		return
	}
	result := h.provider.Fetch(c.Request.Context(), models.KindOdds, params)
	utils.SendSuccess(c, result)
}

// GetNews returns the headline feed
func (h *DataHandler) GetNews(c *gin.Context) {
	params, ok := h.fetchParams(c)
	if !ok {
		return
	}
	result := h.provider.Fetch(c.Request.Context(), models.KindNews, params)
	utils.SendSuccess(c, result)
}

// GetPredictions returns a prediction for every game on the board
func (h *DataHandler) GetPredictions(c *gin.Context) {
	params, ok := h.fetchParams(c)
	if !ok {
		return
	}
	result := h.provider.Fetch(c.Request.Context(), models.KindGames, params)

	predictions := make([]models.Prediction, 0, len(result.Games))
	for _, game := range result.Games {
		predictions = append(predictions, h.gen.PredictGame(game))
	}
	utils.SendSuccess(c, gin.H{
		"league":      params.League,
		"week":        params.Week,
		"predictions": predictions,
	})
}

// GetSources reports each remote source's session state
func (h *DataHandler) GetSources(c *gin.Context) {
	utils.SendSuccess(c, h.provider.Status())
}
