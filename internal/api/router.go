package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iby-sports/gridiron-analytics/internal/api/handlers"
	"github.com/iby-sports/gridiron-analytics/internal/generator"
	"github.com/iby-sports/gridiron-analytics/internal/services"
	"github.com/iby-sports/gridiron-analytics/pkg/config"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, provider *services.DataProvider, gen *generator.Generator, cfg *config.Config, logger *logrus.Logger) {
	dataHandler := handlers.NewDataHandler(provider, gen)

	// Scoreboard endpoints
	group.GET("/games", dataHandler.GetGames)
	group.GET("/games/:id", dataHandler.GetGame)

	// Feed endpoints
	group.GET("/rankings", dataHandler.GetRankings)
	group.GET("/injuries", dataHandler.GetInjuries)
	group.GET("/odds", dataHandler.GetOdds)
	group.GET("/news", dataHandler.GetNews)

	// Prediction endpoints
	group.GET("/predictions", dataHandler.GetPredictions)

	// Ops endpoints
	group.GET("/sources", dataHandler.GetSources)
}
