package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/skillswap/skillswap-api/internal/api/middleware"
	"github.com/skillswap/skillswap-api/internal/core/domain"
)

// ctxActor returns the actor the Authenticate middleware resolved for this
// request. Requests that never passed through it are anonymous.
func ctxActor(c echo.Context) domain.Actor {
	return middleware.ActorFrom(c)
}
