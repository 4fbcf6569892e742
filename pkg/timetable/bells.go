package timetable

import (
	"fmt"
	"sort"
)

// UnknownTime is shown for slots missing from the bell schedule
const UnknownTime = "Время не указано"

// BellSchedule maps a slot number to its wall-clock range, e.g. 1 -> "8:15-9:15"
type BellSchedule map[int]string

// DefaultBells is the institution's bell schedule
var DefaultBells = BellSchedule{
	1: "8:15-9:15",
	2: "9:25-10:25",
	3: "10:35-11:35",
	4: "12:15-13:15",
	5: "13:25-14:25",
	6: "14:35-15:35",
	7: "16:05-17:05",
	8: "17:15-18:15",
	9: "18:25-19:25",
}

// TimeFor returns the time range of slot or UnknownTime
func (b BellSchedule) TimeFor(slot int) string {
	if t, ok := b[slot]; ok {
		return t
	}
	return UnknownTime
}

// Validate checks that every slot is positive and has a time range
func (b BellSchedule) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("bell schedule is empty")
	}
	slots := make([]int, 0, len(b))
	for slot := range b {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	for _, slot := range slots {
		if slot < 1 {
			return fmt.Errorf("slot %d: slot numbers start at 1", slot)
		}
		if b[slot] == "" {
			return fmt.Errorf("slot %d: empty time range", slot)
		}
	}
	return nil
}

// BreakRule inserts Text after slot After when the next class is slot Before
type BreakRule struct {
	After  int    `yaml:"after"`
	Before int    `yaml:"before"`
	Text   string `yaml:"text"`
}

// DefaultBreaks are the lunch and evening breaks
var DefaultBreaks = []BreakRule{
	{After: 3, Before: 4, Text: "⏰ Обеденный перерыв: 11:35-12:15 🍔"},
	{After: 6, Before: 7, Text: "⏰ Вечерний перерыв: 15:35-16:05 ☕"},
}
