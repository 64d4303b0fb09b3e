package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"goose-quotes/internal/shared/middleware"
	"goose-quotes/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/", homeHandler)
	router.GET("/health", healthCheckHandler(c))
	router.GET("/ws", c.EventHandler.Serve)

	setupGooseRoutes(router.Group("/api"), c)

	return router
}

// ========================================
// GOOSE ROUTES
// ========================================
func setupGooseRoutes(api *gin.RouterGroup, c *container.Container) {
	geese := api.Group("/geese")
	{
		geese.GET("", c.GooseHandler.List)
		geese.POST("", c.GooseHandler.Create)
		// Static segments before /:id so they are never read as an id
		geese.GET("/flock-leaders", c.GooseHandler.ListFlockLeaders)
		geese.GET("/language/:language", c.GooseHandler.ListByLanguage)
		geese.GET("/:id", c.GooseHandler.GetByID)
		geese.PATCH("/:id", c.GooseHandler.UpdateName)
		geese.PATCH("/:id/motivations", c.GooseHandler.UpdateMotivations)
		geese.POST("/:id/honk", c.GooseHandler.Honk)
		geese.POST("/:id/generate", c.GooseHandler.GenerateQuotes)
		geese.POST("/:id/bio", c.GooseHandler.GenerateBio)
	}
}

// homeHandler greets; the shouldHonk query key adds a honk
func homeHandler(c *gin.Context) {
	honk := ""
	if _, ok := c.GetQuery("shouldHonk"); ok {
		honk = "Honk honk!"
	}
	c.String(http.StatusOK, strings.TrimSpace("Hello Goose Quotes! "+honk))
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		status := c.HealthCheck(checkCtx)

		code := http.StatusOK
		overall := "ok"
		if status["store"] != "ok" {
			code = http.StatusServiceUnavailable
			overall = "degraded"
		}

		ctx.JSON(code, gin.H{
			"status":  overall,
			"store":   status["store"],
			"cache":   status["cache"],
			"version": c.Config.App.Version,
		})
	}
}
