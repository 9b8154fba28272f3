package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pasteleria-mil-sabores/internal/domain"
	userrepo "pasteleria-mil-sabores/internal/repository/user"
	usersvc "pasteleria-mil-sabores/internal/service/user"
)

// respondError maps domain errors onto HTTP statuses. Validation failures
// carry their kind and field so the client can render the specific message;
// anything unexpected collapses to a generic 500.
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": gin.H{"kind": string(verr.Kind), "field": verr.Field},
		})
	case errors.Is(err, domain.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	case errors.Is(err, usersvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, userrepo.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
