// Package api exposes the prediction engines over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/naaricare/riskapi/internal/menopause"
	"github.com/naaricare/riskapi/internal/pcos"
)

// Store is the optional prediction audit log. A nil Store disables auditing
// and the readiness DB check.
type Store interface {
	Ping(ctx context.Context) error
	Record(ctx context.Context, endpoint, verdict string, risk int) error
}

// NewRouter wires middleware and routes around the two engines.
func NewRouter(pcosEngine *pcos.Engine, menoEngine *menopause.Engine, store Store) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	h := &handlers{pcos: pcosEngine, menopause: menoEngine, store: store}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", h.readyz)
	router.POST("/predict/pcos", h.predictPCOS)
	router.POST("/predict/menopause", h.predictMenopause)

	return router
}

func (h *handlers) readyz(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"db":     fmt.Sprintf("unhealthy: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
