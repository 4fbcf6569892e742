// Package handlers reacts to chat events: commands, trigger words and the bot joining a group.
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/korjavin/botan/pkg/logger"
	"github.com/korjavin/botan/pkg/messages"
)

// Messenger delivers replies to a chat
type Messenger interface {
	SendMessage(chatID int64, text string) error
	SendSticker(chatID int64, fileID string) error
	SendTyping(chatID int64) error
}

// Scheduler produces the nearest-day schedule reply
type Scheduler interface {
	Nearest(ctx context.Context) string
}

// Handler handles chat events
type Handler struct {
	bot         Messenger
	schedule    Scheduler
	messages    *messages.Service
	botUsername string
	logger      *logger.Logger
}

// New creates a handler answering as botUsername
func New(bot Messenger, schedule Scheduler, msgs *messages.Service, botUsername string) *Handler {
	return &Handler{
		bot:         bot,
		schedule:    schedule,
		messages:    msgs,
		botUsername: botUsername,
		logger:      logger.New("handlers"),
	}
}

// Start answers /start with the welcome text and a sticker
func (h *Handler) Start(ctx context.Context, chatID int64) {
	h.send(chatID, h.messages.GenerateWelcomeMessage())
	h.sendSticker(chatID)
}

// Today answers /today with the nearest schedule and a sticker
func (h *Handler) Today(ctx context.Context, chatID int64) {
	h.send(chatID, h.schedule.Nearest(ctx))
	h.sendSticker(chatID)
}

// Text answers plain messages that mention the bot or contain a trigger word
func (h *Handler) Text(ctx context.Context, chatID int64, text string) {
	if strings.TrimSpace(text) == "" || !h.messages.ShouldRespond(text, h.botUsername) {
		return
	}

	if err := h.bot.SendTyping(chatID); err != nil {
		h.logger.With(fmt.Sprintf("%d", chatID)).Warn("Failed to send typing action: %v", err)
	}
	h.Today(ctx, chatID)
}

// MembersJoined greets the group when the bot itself is among the new members
func (h *Handler) MembersJoined(ctx context.Context, chatID int64, usernames []string) {
	for _, name := range usernames {
		if !strings.EqualFold(name, h.botUsername) {
			continue
		}
		h.send(chatID, h.messages.GenerateGroupWelcomeMessage(h.botUsername))
		h.sendSticker(chatID)
		return
	}
}

func (h *Handler) send(chatID int64, text string) {
	if err := h.bot.SendMessage(chatID, text); err != nil {
		h.logger.With(fmt.Sprintf("%d", chatID)).Error("Failed to send message: %v", err)
	}
}

// sendSticker sends a random sticker, or the fallback text when none are configured
func (h *Handler) sendSticker(chatID int64) {
	id, ok := h.messages.PickSticker()
	if !ok {
		h.send(chatID, messages.StickerFallback)
		return
	}
	if err := h.bot.SendSticker(chatID, id); err != nil {
		h.logger.With(fmt.Sprintf("%d", chatID)).Error("Failed to send sticker: %v", err)
	}
}
