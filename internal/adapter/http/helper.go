package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"avendro-backend/internal/adapter/middleware"
	"avendro-backend/internal/domain/actor"
)

// ---- helpers ----

func actorFrom(c echo.Context) actor.Actor { return middleware.ActorFrom(c) }

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
