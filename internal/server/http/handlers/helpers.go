package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/usersystem/internal/domain/errors"
	"github.com/polkiloo/usersystem/internal/server/http/dto"
	"github.com/polkiloo/usersystem/internal/server/http/middleware"
	"github.com/polkiloo/usersystem/internal/server/http/validation"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

func abortWithBindingError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "invalid request",
		Details: validation.ToDetails(err),
	})
}

// abortWithValidation renders business rule violations with their exact message.
func abortWithValidation(c *gin.Context, err error) bool {
	var vErr *domainErrors.ValidationError
	if !errors.As(err, &vErr) {
		return false
	}
	status := http.StatusBadRequest
	if errors.Is(err, domainErrors.ErrEmailTaken) {
		status = http.StatusConflict
	}
	abortWithError(c, status, vErr.Message)
	return true
}
