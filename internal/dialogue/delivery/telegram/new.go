package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"voxnav/internal/dialogue"
	pkgLog "voxnav/pkg/log"
)

// UseCase is the slice of the dialogue engine this delivery needs.
type UseCase interface {
	ProcessText(ctx context.Context, in dialogue.TurnInput) dialogue.Response
	ProcessAudio(ctx context.Context, in dialogue.AudioInput) dialogue.Response
	ClearSession(userID string)
}

// Sender is the slice of the bot client this delivery needs.
type Sender interface {
	SendMessage(chatID int64, text string) error
	DownloadFile(fileID string) ([]byte, error)
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc UseCase, bot Sender) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
