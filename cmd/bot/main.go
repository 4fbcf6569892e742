package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/botan/pkg/config"
	"github.com/korjavin/botan/pkg/fetch"
	"github.com/korjavin/botan/pkg/handlers"
	"github.com/korjavin/botan/pkg/logger"
	"github.com/korjavin/botan/pkg/messages"
	"github.com/korjavin/botan/pkg/schedule"
	"github.com/korjavin/botan/pkg/telegram"
	"github.com/korjavin/botan/pkg/timetable"
)

func main() {
	// Initialize logger
	log := logger.Global
	log.Info("Starting Botan schedule bot...")

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	// Initialize services
	scheduleService := schedule.New(
		fetch.NewClient(cfg.FetchTimeout),
		cfg.ScheduleURL,
		timetable.NewScanner(timetable.DefaultLayout, cfg.Bells),
		timetable.NewFormatter(timetable.DefaultGreetings, cfg.Breaks, nil),
	)
	messageService := messages.New(cfg.Triggers, cfg.Stickers, nil)

	// Initialize Telegram bot
	bot, err := telegram.New(cfg.BotToken)
	if err != nil {
		log.Error("Failed to initialize Telegram bot: %v", err)
		os.Exit(1)
	}

	handler := handlers.New(bot, scheduleService, messageService, bot.Username())

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	routes := telegram.Handlers{
		Commands: map[string]telegram.CommandHandler{
			"start": func(message *tgbotapi.Message) {
				handler.Start(ctx, message.Chat.ID)
			},
			"today": func(message *tgbotapi.Message) {
				handler.Today(ctx, message.Chat.ID)
			},
		},
		Text: func(message *tgbotapi.Message) {
			handler.Text(ctx, message.Chat.ID, message.Text)
		},
		MembersJoined: func(message *tgbotapi.Message) {
			handler.MembersJoined(ctx, message.Chat.ID, telegram.MemberUsernames(message))
		},
	}

	// Start the bot
	log.Info("Bot is now running. Press CTRL-C to exit.")
	if err := bot.Start(ctx, routes); err != nil {
		log.Error("Error running bot: %v", err)
		os.Exit(1)
	}
	log.Info("Shutting down...")
}
