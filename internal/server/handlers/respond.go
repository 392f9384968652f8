package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/service/auth"
	"github.com/arsathrahman00-arsath/fpda/internal/service/masterdata"
	"github.com/arsathrahman00-arsath/fpda/internal/service/media"
	"github.com/arsathrahman00-arsath/fpda/pkg/clients/fpda"
)

// sessionKey is the gin context key the session middleware stores the user under.
const sessionKey = "fpda.session"

// respondError translates the service error taxonomy onto HTTP statuses:
// validation 400, auth 401, backend business rejection 422, transport 502.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var fieldErr *masterdata.FieldError
	var backendErr *fpda.BackendError

	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErr.Message, "field": fieldErr.Field})
	case errors.Is(err, masterdata.ErrDuplicate),
		errors.Is(err, media.ErrTooLarge),
		errors.Is(err, media.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	case errors.As(err, &backendErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": backendErr.Message})
	case errors.Is(err, fpda.ErrUnreachable):
		logger.Error("backend unreachable", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to reach backend"})
	default:
		logger.Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
