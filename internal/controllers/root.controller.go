package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Collections lists the collection paths advertised by the root index.
var Collections = []string{"teams", "users", "activities", "leaderboard", "workouts"}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RootController struct {
	store Pinger
	cache Pinger
}

func NewRootController(store Pinger) *RootController {
	return &RootController{store: store}
}

// WatchCache adds the name cache to the health report. The cache is
// optional, so an unreachable cache degrades health without failing it.
func (rc *RootController) WatchCache(cache Pinger) {
	rc.cache = cache
}

// baseURL rebuilds scheme and host as the client saw them.
func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}

// Index godoc
// @Summary API root
// @Description Absolute links to every collection.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (rc *RootController) Index(c *gin.Context) {
	base := baseURL(c)
	links := make(gin.H, len(Collections))
	for _, name := range Collections {
		links[name] = base + "/api/" + name + "/"
	}
	c.JSON(http.StatusOK, links)
}

// Health godoc
// @Summary Health check
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (rc *RootController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := rc.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"store":  "unreachable",
			"error":  err.Error(),
		})
		return
	}
	report := gin.H{
		"status": "healthy",
		"store":  "reachable",
	}
	if rc.cache != nil {
		report["cache"] = "reachable"
		if err := rc.cache.Ping(ctx); err != nil {
			report["status"] = "degraded"
			report["cache"] = "unreachable"
			report["error"] = err.Error()
		}
	}
	c.JSON(http.StatusOK, report)
}
