package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
)

// respondError maps domain errors onto HTTP statuses. Everything in the
// taxonomy except an unrecovered extraction failure is a soft failure: a
// message to the caller, no state corruption.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, delib.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, delib.ErrNotParticipant):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, delib.ErrNotHost):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, delib.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, delib.ErrDialogueNotOpen):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, delib.ErrDuplicateResponse), errors.Is(err, delib.ErrDuplicateRating):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// requireUserID parses and validates the user id carried by the request.
// With no authentication layer, the surrounding system supplies the caller's
// identity explicitly; it must at least be a well-formed uuid.
func requireUserID(c *gin.Context, raw string) (string, bool) {
	if _, err := uuid.Parse(raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a valid uuid"})
		return "", false
	}
	return raw, true
}
