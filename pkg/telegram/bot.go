package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/botan/pkg/logger"
)

// Bot represents a Telegram bot instance
type Bot struct {
	api    *tgbotapi.BotAPI
	logger *logger.Logger
}

// CommandHandler is a function that handles a Telegram command
type CommandHandler func(message *tgbotapi.Message)

// Handlers routes updates to the application
type Handlers struct {
	// Commands maps a command name without the slash to its handler
	Commands map[string]CommandHandler
	// Text handles non-command text messages
	Text func(message *tgbotapi.Message)
	// MembersJoined handles messages announcing new chat members
	MembersJoined func(message *tgbotapi.Message)
}

// New creates a new Telegram bot instance
func New(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	bot := &Bot{
		api:    api,
		logger: logger.New("telegram"),
	}

	bot.logger.Info("Telegram bot created: @%s", api.Self.UserName)
	return bot, nil
}

// Username returns the bot's username without the @
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// Start listens for updates until ctx is cancelled.
// Updates are handled one at a time.
func (b *Bot) Start(ctx context.Context, handlers Handlers) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.dispatch(update, handlers)
		}
	}
}

func (b *Bot) dispatch(update tgbotapi.Update, handlers Handlers) {
	msg := update.Message
	if msg == nil {
		return
	}
	log := b.logger.With(fmt.Sprintf("%d", msg.Chat.ID))

	switch {
	case msg.IsCommand():
		command := msg.Command()
		if handler, ok := handlers.Commands[command]; ok {
			log.Info("Handling command: %s from user %s", command, userName(msg.From))
			handler(msg)
		}
	case len(msg.NewChatMembers) > 0:
		if handlers.MembersJoined != nil {
			log.Info("New chat members: %d", len(msg.NewChatMembers))
			handlers.MembersJoined(msg)
		}
	case msg.Text != "":
		if handlers.Text != nil {
			handlers.Text(msg)
		}
	}
}

// SendMessage sends a text message to a chat
func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	return err
}

// SendSticker sends a sticker by its file ID
func (b *Bot) SendSticker(chatID int64, fileID string) error {
	sticker := tgbotapi.NewSticker(chatID, tgbotapi.FileID(fileID))
	_, err := b.api.Send(sticker)
	return err
}

// SendTyping shows the "typing" status in a chat
func (b *Bot) SendTyping(chatID int64) error {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	_, err := b.api.Request(action)
	return err
}

// MemberUsernames returns the usernames of the members a message announces
func MemberUsernames(msg *tgbotapi.Message) []string {
	names := make([]string, 0, len(msg.NewChatMembers))
	for _, m := range msg.NewChatMembers {
		names = append(names, m.UserName)
	}
	return names
}

func userName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	return u.UserName
}
