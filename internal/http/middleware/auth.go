package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

const authContextKey = "auth_context"

// AuthMW resolves the bearer token into an explicit AuthContext once at the
// transport boundary. Handlers read it with AuthFrom; nothing downstream
// re-resolves the caller.
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// WithToken returns the bearer-token middleware function
func (mw *AuthMW) WithToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := mw.tokenSvc.Validate(c.Request.Context(), tokenParts[1])
		if err != nil {
			if errors.Is(err, domain.ErrTokenInvalid) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token validation failed"})
			}
			c.Abort()
			return
		}

		c.Set(authContextKey, domain.AuthContext{
			UserID:  claims.UserID,
			Role:    claims.Role,
			TokenID: claims.TokenID,
		})

		c.Next()
	}
}

// AuthFrom returns the AuthContext resolved by WithToken.
func AuthFrom(c *gin.Context) (domain.AuthContext, bool) {
	value, exists := c.Get(authContextKey)
	if !exists {
		return domain.AuthContext{}, false
	}
	auth, ok := value.(domain.AuthContext)
	return auth, ok
}

// SetAuth injects an AuthContext directly; test use only.
func SetAuth(c *gin.Context, auth domain.AuthContext) {
	c.Set(authContextKey, auth)
}
