package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kallanseto/crypto-tracker/internal/api/handlers"
	"github.com/kallanseto/crypto-tracker/internal/chart"
	"github.com/kallanseto/crypto-tracker/internal/icons"
	"github.com/kallanseto/crypto-tracker/internal/market"
	"github.com/kallanseto/crypto-tracker/internal/notify"
	"github.com/kallanseto/crypto-tracker/internal/watchlist"
)

// RouterConfig carries the wired application components into the router.
type RouterConfig struct {
	MarketService *market.Service
	Watchlist     *watchlist.Store
	ChartSession  *chart.Session
	History       chart.HistoryFetcher
	Notifier      *notify.Center
	Icons         *icons.Service

	CORSOrigins      []string
	FrontendDistPath string
}

func SetupRouter(rc RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(metricsMiddleware())

	serveFrontend := rc.FrontendDistPath != "" && dirExists(rc.FrontendDistPath)

	config := cors.DefaultConfig()
	config.AllowOrigins = rc.CORSOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = false
	router.Use(cors.New(config))

	marketHandler := handlers.NewMarketHandler(rc.MarketService, rc.Notifier)
	watchlistHandler := handlers.NewWatchlistHandler(rc.Watchlist, rc.MarketService)
	chartHandler := handlers.NewChartHandler(rc.ChartSession, rc.History, rc.MarketService, rc.Notifier)
	notificationHandler := handlers.NewNotificationHandler(rc.Notifier)
	iconHandler := handlers.NewIconHandler(rc.Icons)

	api := router.Group("/api")
	{
		markets := api.Group("/markets")
		{
			markets.GET("", marketHandler.GetMarkets)
			markets.GET("/movers", marketHandler.GetMovers)
			markets.GET("/status", marketHandler.GetStatus)
			markets.POST("/refresh", marketHandler.RefreshNow)
		}

		coins := api.Group("/coins")
		{
			coins.GET("/:id/history", chartHandler.GetHistory)
		}

		chartGroup := api.Group("/chart")
		{
			chartGroup.GET("", chartHandler.GetChart)
			chartGroup.POST("/:id", chartHandler.OpenChart)
			chartGroup.DELETE("", chartHandler.CloseChart)
		}

		wl := api.Group("/watchlist")
		{
			wl.GET("", watchlistHandler.GetWatchlist)
			wl.GET("/options", watchlistHandler.GetOptions)
			wl.POST("", watchlistHandler.AddToWatchlist)
			wl.DELETE("/:id", watchlistHandler.RemoveFromWatchlist)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.DELETE("/:id", notificationHandler.DismissNotification)
		}

		api.GET("/icons/:id", iconHandler.GetIcon)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Serve frontend static files
	if serveFrontend {
		indexPath := filepath.Join(rc.FrontendDistPath, "index.html")

		router.Static("/assets", filepath.Join(rc.FrontendDistPath, "assets"))

		router.GET("/", func(c *gin.Context) {
			c.File(indexPath)
		})

		// SPA fallback - serve index.html for all non-API routes
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path

			if strings.HasPrefix(path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}

			c.File(indexPath)
		})
	}

	return router
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
