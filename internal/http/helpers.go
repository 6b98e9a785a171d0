package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cnlearn/cnlearn/internal/apperr"
)

// ErrorResponse is the error body for every API error.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Detail: detail})
}

// respondInternalError logs the error and sends a 500 response. The actual
// error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	logrus.WithError(err).Errorf("internal error (%s)", context)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
}

// respondAppError maps a service error onto its transport status code.
// Invalid credentials map to 400 here; the 403 variant belongs to the
// token middleware, which never reaches this helper.
func respondAppError(c *gin.Context, err error, context string) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
	case apperr.KindConflict, apperr.KindInvalidCredentials:
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	case apperr.KindInternal:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
	default:
		respondInternalError(c, err, context)
	}
}
