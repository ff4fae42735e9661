package jwtmw

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contact_backend/internal/api"
	"contact_backend/internal/feature/auth/domain"
	"contact_backend/internal/feature/auth/domain/entity"
)

// Context keys set by AuthRequired.
const (
	ContextUserID    = "userID"
	ContextPrincipal = "principal"
)

const bearerPrefix = "Bearer "

// Authenticator resolves a raw bearer token to the caller it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Principal, error)
}

// AuthRequired returns a Gin middleware function that runs the authentication
// gate and restricts access to authenticated users only.
func AuthRequired(auth Authenticator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			api.Fail(c, log, domain.ErrMissingToken)
			return
		}

		principal, err := auth.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			api.Fail(c, log, err)
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Set(ContextUserID, principal.UserID())
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", false
	}
	return token, true
}

// PrincipalFrom returns the principal attached by AuthRequired.
func PrincipalFrom(c *gin.Context) (*entity.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return nil, false
	}
	p, ok := v.(*entity.Principal)
	return p, ok && p != nil
}

// UserIDFrom returns the authenticated user id.
func UserIDFrom(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
