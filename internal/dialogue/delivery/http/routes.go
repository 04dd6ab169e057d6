package http

import (
	"github.com/gin-gonic/gin"

	"voxnav/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Turn endpoints are rate limited per caller.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw *middleware.Middleware) {
	d := rg.Group("/dialogue")
	{
		d.POST("", mw.RateLimit(), h.ProcessTurn)
		d.POST("/audio", mw.RateLimit(), h.ProcessAudio)
		d.DELETE("/sessions/:user_id", h.ClearSession)
	}
}
