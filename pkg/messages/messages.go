package messages

import (
	"fmt"
	"strings"

	"github.com/korjavin/botan/pkg/timetable"
)

// StickerFallback is sent when no stickers are configured
const StickerFallback = "🐶 Мопсик одобряет твое расписание!"

// DefaultTriggers are the words the bot answers to in any chat
var DefaultTriggers = []string{"ботан", "бот"}

// Service provides the bot's canned texts and decides when to answer
type Service struct {
	triggers []string
	stickers []string
	choose   timetable.Chooser
}

// New creates a message service. A nil chooser picks stickers at random.
func New(triggers, stickers []string, choose timetable.Chooser) *Service {
	if choose == nil {
		choose = timetable.RandomChooser
	}

	lowered := make([]string, 0, len(triggers))
	for _, t := range triggers {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			lowered = append(lowered, t)
		}
	}

	return &Service{
		triggers: lowered,
		stickers: stickers,
		choose:   choose,
	}
}

// GenerateWelcomeMessage generates the /start reply
func (s *Service) GenerateWelcomeMessage() string {
	return "Привет! Я бот-расписание 🤓\n\n" +
		"Просто напиши мне в любом чате:\n" +
		"• 'Ботан' - и я пришлю расписание\n" +
		"• 'Привет, ботан!'\n" +
		"• 'Эй ботан, как дела?'\n" +
		"• 'Бот, помоги с расписанием'\n" +
		"• Или используй /today\n\n" +
		"Главное - скажи 'ботан' или 'бот' 😉\n" +
		"И получишь милого мопсика в подарок! 🐶"
}

// GenerateGroupWelcomeMessage generates the greeting sent when the bot joins a group
func (s *Service) GenerateGroupWelcomeMessage(botUsername string) string {
	return "Привет! Я бот-расписание 🤓\n\n" +
		"Просто напишите в чат:\n" +
		"• 'Ботан' - и я пришлю расписание\n" +
		"• 'Ботан, какие пары?'\n" +
		fmt.Sprintf("• Или упомяните меня @%s\n\n", botUsername) +
		"Рад помогать с расписанием! 📚\n" +
		"И да, у меня есть мопсики! 🐶"
}

// ShouldRespond reports whether text mentions the bot or contains a trigger word
func (s *Service) ShouldRespond(text, botUsername string) bool {
	lower := strings.ToLower(text)

	if botUsername != "" && strings.Contains(lower, "@"+strings.ToLower(botUsername)) {
		return true
	}

	for _, trigger := range s.triggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

// PickSticker returns a sticker file ID, or false when none are configured
func (s *Service) PickSticker() (string, bool) {
	if len(s.stickers) == 0 {
		return "", false
	}
	i := s.choose(len(s.stickers))
	if i < 0 || i >= len(s.stickers) {
		i = 0
	}
	return s.stickers[i], true
}
