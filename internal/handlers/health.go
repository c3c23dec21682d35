package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"comerciotech/internal/database"
)

const healthTimeout = 2 * time.Second

// Health pings the store; never exposes connection details.
func Health(pinger database.Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		status := http.StatusOK
		dbStatus := "connected"
		if err := pinger.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("store ping failed")
			status = http.StatusServiceUnavailable
			dbStatus = "error"
		}

		c.JSON(status, gin.H{
			"ok": status == http.StatusOK,
			"db": dbStatus,
		})
	}
}
