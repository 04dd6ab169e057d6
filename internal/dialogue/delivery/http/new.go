package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"voxnav/internal/dialogue"
	"voxnav/pkg/log"
)

// UseCase is the slice of the dialogue engine this delivery needs.
type UseCase interface {
	ProcessText(ctx context.Context, in dialogue.TurnInput) dialogue.Response
	ProcessAudio(ctx context.Context, in dialogue.AudioInput) dialogue.Response
	ClearSession(userID string)
}

// Handler is the public interface for the dialogue HTTP delivery layer.
type Handler interface {
	ProcessTurn(c *gin.Context)
	ProcessAudio(c *gin.Context)
	ClearSession(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc UseCase
}

// New creates a new HTTP handler for the dialogue domain.
func New(l log.Logger, uc UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
