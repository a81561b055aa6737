package auth

import (
	"strings"

	"subscription-items/internal/apierrors"
	"subscription-items/internal/observability"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated subject.
const UserIDKey = "User-ID"

// Middleware rejects requests without a valid bearer token.
func (a *Authenticator) Middleware(c *gin.Context) {
	ctx := c.Request.Context()
	header := c.GetHeader("Authorization")

	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized(ErrMissingToken.Error()))
		return
	}

	claims, err := a.ValidateToken(ctx, strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized(err.Error()))
		return
	}

	c.Set(UserIDKey, claims.Subject)
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: claims.Subject})
	c.Request = c.Request.WithContext(ctx)

	c.Next()
}
