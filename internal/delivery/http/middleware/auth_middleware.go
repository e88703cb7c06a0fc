package middleware

import (
	"net/http"
	"strings"

	"simply-jobs-backend/internal/delivery/http/response"
	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// Auth verifies the bearer token and resolves the caller's identity from the
// database on every request. The token's role claim is never trusted for
// authorization; only the freshly loaded user row is.
func Auth(tokens auth.TokenService, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := resolve(c, tokens, authUC)
		if !ok {
			return
		}
		if identity == nil {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth resolves an identity when a bearer token is present but lets
// anonymous requests through. A token that is present but invalid is still
// rejected rather than silently downgraded to anonymous.
func OptionalAuth(tokens auth.TokenService, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := resolve(c, tokens, authUC)
		if !ok {
			return
		}
		if identity != nil {
			setIdentity(c, identity)
		}
		c.Next()
	}
}

// resolve extracts and verifies the bearer token. It returns (nil, true) when
// no token was supplied, and (nil, false) after writing a 401 for a bad one.
func resolve(c *gin.Context, tokens auth.TokenService, authUC domain.AuthUsecase) (*domain.Identity, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, true
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header || tokenString == "" {
		response.Error(c, http.StatusUnauthorized, "Authorization header must be a bearer token", nil)
		c.Abort()
		return nil, false
	}

	claims, err := tokens.Verify(tokenString)
	if err != nil || claims.TokenType != auth.TokenTypeAccess {
		response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
		c.Abort()
		return nil, false
	}

	identity, err := authUC.ResolveIdentity(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Account not found", nil)
		c.Abort()
		return nil, false
	}
	return identity, true
}

func setIdentity(c *gin.Context, identity *domain.Identity) {
	c.Set(string(domain.KeyIdentity), identity)
	c.Set(string(domain.KeyUserID), identity.User.ID)
	c.Set(string(domain.KeyUsername), identity.User.Username)
	c.Set(string(domain.KeyUserRole), identity.User.Role)
}

// IdentityFrom reads the resolved identity set by Auth/OptionalAuth;
// nil means the request is anonymous.
func IdentityFrom(c *gin.Context) *domain.Identity {
	value, exists := c.Get(string(domain.KeyIdentity))
	if !exists {
		return nil
	}
	identity, _ := value.(*domain.Identity)
	return identity
}
