package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"comerciotech/internal/service"
)

type debugResponse struct {
	Status         string              `json:"status"`
	Timestamp      string              `json:"timestamp"`
	Database       string              `json:"database"`
	Collections    service.Stats       `json:"collections"`
	TotalDocuments int64               `json:"total_documents"`
	Endpoints      map[string][]string `json:"endpoints"`
}

// Debug reports collection counts and samples together with the CRUD
// endpoint listing.
func Debug(svc *service.Service, database string, sections []Section) gin.HandlerFunc {
	endpoints := listing(sections)
	return func(c *gin.Context) {
		const route = "GET /debug"
		defer handlePanic(c, route)

		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			respondWithError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, debugResponse{
			Status:         "API funcionando correctamente",
			Timestamp:      time.Now().Format(time.RFC3339Nano),
			Database:       database,
			Collections:    stats,
			TotalDocuments: stats.TotalDocuments(),
			Endpoints:      endpoints,
		})
	}
}
