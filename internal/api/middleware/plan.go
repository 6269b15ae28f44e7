package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequirePlan restricts a route to users on one of the given plans.
// Auth must run first so the "plan" claim is present in context.
func RequirePlan(plans ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(plans))
	for _, p := range plans {
		allowed[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			plan, _ := c.Get("plan").(string)
			if _, ok := allowed[plan]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "upgrade required"})
			}
			return next(c)
		}
	}
}
