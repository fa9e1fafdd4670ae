package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
	"github.com/ettorepuccetti/terrarossa/pkg/auth"
)

const identityKey = "identity"

// JWTAuth validates the bearer token and stores the caller's identity
// in the request context; every handler reads it from there instead of
// any ambient session state.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, err := auth.ParseValidate(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(identityKey, domain.Identity{
			UserID: claims.Sub,
			Name:   claims.Name,
			Email:  claims.Email,
			Role:   claims.Role,
			ClubID: claims.ClubID,
		})
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := allowed[identityFrom(c).Role]; !ok {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func identityFrom(c *gin.Context) domain.Identity {
	v, _ := c.Get(identityKey)
	id, _ := v.(domain.Identity)
	return id
}
