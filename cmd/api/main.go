package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"voxnav/config"
	"voxnav/internal/dialogue"
	dialogueHTTP "voxnav/internal/dialogue/delivery/http"
	tgDelivery "voxnav/internal/dialogue/delivery/telegram"
	"voxnav/internal/httpserver"
	"voxnav/internal/intent"
	"voxnav/internal/middleware"
	"voxnav/internal/session"
	"voxnav/internal/slots"
	"voxnav/pkg/datemath"
	"voxnav/pkg/llmprovider"
	"voxnav/pkg/log"
	"voxnav/pkg/stt"
	"voxnav/pkg/telegram"
)

// @title       VoxNav API
// @description Multilingual voice navigation assistant for Indian websites.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting VoxNav...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers with fallback
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	logger.Infof(ctx, "Initialized %d LLM provider(s)", len(providers))

	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelayDuration(),
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeoutDuration(),
	}, logger)

	// 4. Date parser for relative date slots
	dateParser, err := datemath.NewParser(cfg.Slots.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Slots.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 5. Dialogue engine
	store := session.NewLRUStore(cfg.Slots.MaxSessions, cfg.Slots.SessionTTLDuration())
	classifier := intent.NewClassifier(llm, logger)
	filler := slots.NewFiller(llm, store, dateParser, cfg.Slots.MaxAttempts, logger)

	// 6. Speech-to-text (optional)
	var sttProvider stt.Provider
	if cfg.STT.Enabled {
		gs, sttErr := stt.NewGoogleSpeech(ctx, cfg.STT.CredentialsPath)
		if sttErr != nil {
			logger.Warnf(ctx, "Speech-to-text not available (optional): %v", sttErr)
		} else {
			gs.DefaultLanguage = cfg.STT.LanguageCode
			sttProvider = gs
			defer gs.Close()
			logger.Info(ctx, "Speech-to-text initialized")
		}
	}

	orch := dialogue.NewOrchestrator(classifier, filler, store, llm, sttProvider, logger)

	// 7. Deliveries
	dialogueHandler := dialogueHTTP.New(logger, orch)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, orch, bot)

		// Register webhook: auto-detect ngrok or fall back to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := bot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram delivery skipped: TELEGRAM_BOT_TOKEN not set")
	}

	// 8. HTTP server
	mw := middleware.New(logger, cfg.RateLimit)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		DialogueHandler: dialogueHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
