package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-adp-views/internal/models"
	appErrors "github.com/noah-isme/sma-adp-views/pkg/errors"
)

// RequireRoles admits viewers holding one of roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return authorize("", roles)
}

// RequireRolesOrSelf admits viewers holding one of roles, and any viewer whose user id equals
// the route parameter param. Students reach their own faculty profile this way.
func RequireRolesOrSelf(param string, roles ...models.UserRole) gin.HandlerFunc {
	return authorize(param, roles)
}

func authorize(selfParam string, roles []models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claims, ok := Viewer(c)
		if !ok {
			abort(c, appErrors.ErrUnauthorized)
			return
		}
		if _, ok := allowed[claims.Role]; ok {
			c.Next()
			return
		}
		if selfParam != "" {
			if target := c.Param(selfParam); target != "" && target == claims.UserID {
				c.Next()
				return
			}
		}
		abort(c, appErrors.ErrForbidden)
	}
}
