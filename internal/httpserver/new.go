package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	dialogueHTTP "voxnav/internal/dialogue/delivery/http"
	tgDelivery "voxnav/internal/dialogue/delivery/telegram"
	"voxnav/internal/middleware"
	"voxnav/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw *middleware.Middleware

	dialogueHandler dialogueHTTP.Handler
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware *middleware.Middleware

	DialogueHandler dialogueHTTP.Handler

	// Optional, registered only when the bot is configured
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		dialogueHandler: cfg.DialogueHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.mw == nil {
		return errors.New("middleware is required")
	}
	if srv.dialogueHandler == nil {
		return errors.New("dialogue handler is required")
	}
	return nil
}
