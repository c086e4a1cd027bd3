// middleware/identity.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"attendly/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdentityProvider turns a bearer token into a stable user id.
type IdentityProvider interface {
	Identify(ctx context.Context, token string) (string, error)
}

// FirebaseIdentity verifies Firebase ID tokens.
type FirebaseIdentity struct {
	Client *auth.Client
}

func (f *FirebaseIdentity) Identify(ctx context.Context, token string) (string, error) {
	verified, err := f.Client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}
	if verified.UID == "" {
		return "", errors.New("token has no uid")
	}
	return verified.UID, nil
}

// JWTIdentity verifies HS256 tokens signed with Secret; the subject is the user id.
type JWTIdentity struct {
	Secret []byte
}

func (j *JWTIdentity) Identify(_ context.Context, token string) (string, error) {
	if len(j.Secret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}
	return utils.ExtractIDFromToken(j.Secret, token)
}

// IdentityMiddleware requires a bearer token and sets "userID" on success.
func IdentityMiddleware(provider IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		userID, err := provider.Identify(c.Request.Context(), tokenString)
		if err != nil || userID == "" {
			utils.GetLogger().Debug("Identity rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
