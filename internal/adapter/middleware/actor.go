package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"avendro-backend/internal/domain/actor"
)

const actorContextKey = "actor"

// ActorMiddleware resolves the authenticated principal from the gateway
// headers. Requests without X-Actor-Role carry a zero Actor; the usecases
// reject unauthorized transitions, so reads stay open here.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := actor.Role(strings.TrimSpace(c.Request().Header.Get("X-Actor-Role")))
			if role != "" && !role.Valid() {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid X-Actor-Role"})
			}

			lenderID := strings.TrimSpace(c.Request().Header.Get("X-Actor-Lender-Id"))
			if lenderID != "" && !reHex32.MatchString(lenderID) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid X-Actor-Lender-Id"})
			}
			if role == actor.RoleLenderStaff && lenderID == "" {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "lender_staff requires X-Actor-Lender-Id"})
			}

			c.Set(actorContextKey, actor.Actor{Role: role, LenderID: lenderID})
			return next(c)
		}
	}
}

// ActorFrom returns the Actor resolved by ActorMiddleware, or a zero Actor
// when the middleware did not run.
func ActorFrom(c echo.Context) actor.Actor {
	if v, ok := c.Get(actorContextKey).(actor.Actor); ok {
		return v
	}
	return actor.Actor{}
}
