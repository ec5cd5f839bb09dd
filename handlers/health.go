package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Jugal-Chanda/demo-CICD-github/models"
	"github.com/Jugal-Chanda/demo-CICD-github/repository"
)

// Version is reported by the health endpoint and checked by the deploy
// pipeline after rollout.
const Version = "1.0.0"

type HealthHandler struct {
	pinger      repository.Pinger
	pingTimeout time.Duration
}

func NewHealthHandler(pinger repository.Pinger, pingTimeout time.Duration) *HealthHandler {
	return &HealthHandler{pinger: pinger, pingTimeout: pingTimeout}
}

// Check probes the datastore with a short timeout. A failed probe maps
// to 503 with an unhealthy payload instead of an error response.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("health probe failed")
		c.JSON(http.StatusServiceUnavailable, models.HealthStatus{
			Status:    "unhealthy",
			Timestamp: time.Now().UTC(),
			Version:   Version,
			Database:  "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, models.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Database:  "connected",
	})
}
