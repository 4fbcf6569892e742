package timetable

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/korjavin/botan/pkg/models"
)

// Chooser returns an index in [0, n). n is always positive.
type Chooser func(n int) int

// RandomChooser picks uniformly at random
func RandomChooser(n int) int {
	return rand.Intn(n)
}

// DefaultGreetings open every non-empty schedule message
var DefaultGreetings = []string{
	"Я твой ботаник! 🤓 Вот расписание:",
	"Держи расписание, студент! 📚",
	"Бот-ботаник к вашим услугам! 🧪",
	"Расписание готово, профессор! 🔬",
}

// Formatter renders a day schedule as a chat message
type Formatter struct {
	greetings []string
	breaks    []BreakRule
	choose    Chooser
}

// NewFormatter creates a formatter. A nil chooser picks greetings at random.
func NewFormatter(greetings []string, breaks []BreakRule, choose Chooser) *Formatter {
	if choose == nil {
		choose = RandomChooser
	}
	return &Formatter{
		greetings: greetings,
		breaks:    breaks,
		choose:    choose,
	}
}

// Format renders day. The entries of day are not modified.
func (f *Formatter) Format(day models.DaySchedule) string {
	if day.Empty() {
		return fmt.Sprintf("📅 %s\n\nПар нет! 🎉", day.Date)
	}

	entries := slices.Clone(day.Entries)
	slices.SortStableFunc(entries, func(a, b models.ScheduleEntry) int {
		return cmp.Compare(a.Slot, b.Slot)
	})

	parts := make([]string, 0, len(entries)+len(f.breaks)+1)
	parts = append(parts, f.header(day.Date))

	for i, e := range entries {
		parts = append(parts, fmt.Sprintf(
			"🔹 %d пара (%s)\n📚 %s\n👨‍🏫 %s\n🚪 Кабинет %s\n",
			e.Slot, e.Time, e.Subject, e.Teacher, e.Room,
		))

		if i+1 < len(entries) {
			if text, ok := f.breakBetween(e.Slot, entries[i+1].Slot); ok {
				parts = append(parts, text+"\n")
			}
		}
	}

	return strings.Join(parts, "\n")
}

func (f *Formatter) header(date string) string {
	if len(f.greetings) == 0 {
		return fmt.Sprintf("📅 %s\n", date)
	}
	i := f.choose(len(f.greetings))
	if i < 0 || i >= len(f.greetings) {
		i = 0
	}
	return fmt.Sprintf("%s\n📅 %s\n", f.greetings[i], date)
}

// breakBetween returns the first break rule matching two adjacent slots
func (f *Formatter) breakBetween(slot, next int) (string, bool) {
	for _, rule := range f.breaks {
		if rule.After == slot && rule.Before == next {
			return rule.Text, true
		}
	}
	return "", false
}
