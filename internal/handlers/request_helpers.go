package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"comerciotech/internal/apierror"
	"comerciotech/internal/middleware"
	"comerciotech/internal/service"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Error().
			Str("route", route).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Interface("panic", r).
			Msg("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.Body{Error: "internal server error"})
	}
}

// respondWithError writes err with the status of its kind. Only internal
// errors are logged at error level; rule violations are expected traffic.
func respondWithError(c *gin.Context, route string, err error) {
	status := apierror.Status(err)
	event := log.Debug()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Str("route", route).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Int("status", status).
		Err(err).
		Msg("returning error")
	c.AbortWithStatusJSON(status, apierror.NewBody(err))
}

// decodeJSON reads the request body into dst. A missing body, a JSON null
// and an object without keys all count as no data.
func decodeJSON(c *gin.Context, dst any) error {
	data, err := c.GetRawData()
	if err != nil {
		return apierror.Internal(err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return service.NoData()
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return service.DecodeError("")
	}
	if len(keys) == 0 {
		return service.NoData()
	}

	if err := json.Unmarshal(data, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return service.DecodeError(typeErr.Field)
		}
		return service.DecodeError("")
	}
	return nil
}

type messageResponse struct {
	Message string `json:"message"`
}
