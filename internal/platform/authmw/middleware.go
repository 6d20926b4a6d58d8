// Package authmw provides the gin middleware that guards authenticated routes.
package authmw

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"market_backend/internal/api"
	"market_backend/internal/feature/auth/domain/entity"
	"market_backend/internal/feature/auth/usecase"
)

// ContextUser is the gin context key holding the authenticated *entity.User.
const ContextUser = "user"

const bearerPrefix = "Bearer "

// TokenValidator resolves a bearer token to its account.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*entity.User, error)
}

// AuthRequired returns a middleware that lets the request through only when
// the Authorization header carries a token belonging to a known user.
// It performs at most one store lookup.
func AuthRequired(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
			return
		}

		user, err := v.ValidateToken(c.Request.Context(), strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "path": c.FullPath()}).Error("token lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by AuthRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}
