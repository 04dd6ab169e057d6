package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"voxnav/internal/dialogue"
	pkgLog "voxnav/pkg/log"
	pkgResponse "voxnav/pkg/response"
	pkgTelegram "voxnav/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  UseCase
	bot Sender
}

const welcomeMessage = `Namaste! I'm VoxNav, your voice assistant for Indian websites.

Tell me what you need in Hindi, English, or Hinglish:
- "Mujhe Delhi se Mumbai ki train book karni hai"
- "Book a flight to Bangalore tomorrow"
- "Aaj ka weather kaisa hai"

Send text or a voice message to get started.`

const usageMessage = `How to use VoxNav:

Send a message describing what you want, for example:
- Book a train, flight, hotel, or cab
- Search for products or check the weather
- Ask anything in Hindi, English, or Hinglish

Voice messages work too. Send /cancel to start over.`

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine, since the full pipeline (STT + classification +
// slot extraction) can exceed Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong. Please try again.")
		}
	}()

	// Telegram acknowledged immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	userID := h.userID(msg)

	switch msg.Text {
	case "/start":
		return h.bot.SendMessage(msg.Chat.ID, welcomeMessage)
	case "/help":
		return h.bot.SendMessage(msg.Chat.ID, usageMessage)
	case "/cancel":
		h.uc.ClearSession(userID)
		return h.bot.SendMessage(msg.Chat.ID, "Okay, starting fresh. What would you like to do?")
	}

	var resp dialogue.Response
	switch {
	case msg.Voice != nil:
		audio, err := h.bot.DownloadFile(msg.Voice.FileID)
		if err != nil {
			h.l.Errorf(ctx, "telegram handler: voice download failed: %v", err)
			return h.bot.SendMessage(msg.Chat.ID, "Could not fetch your voice message. Please try again or send text.")
		}
		resp = h.uc.ProcessAudio(ctx, dialogue.AudioInput{
			UserID: userID,
			Audio:  audio,
		})

	case msg.Text != "":
		resp = h.uc.ProcessText(ctx, dialogue.TurnInput{
			UserID: userID,
			Text:   msg.Text,
		})

	default:
		return nil
	}

	reply := resp.Message
	if resp.Transcription != "" {
		reply = fmt.Sprintf("You said: %s\n\n%s", resp.Transcription, resp.Message)
	}

	return h.bot.SendMessage(msg.Chat.ID, reply)
}

// userID derives a stable session key from the Telegram sender.
func (h *handler) userID(msg *pkgTelegram.Message) string {
	if msg.From != nil {
		return fmt.Sprintf("telegram_%d", msg.From.ID)
	}
	return fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)
}
