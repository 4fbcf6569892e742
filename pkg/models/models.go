package models

// ScheduleEntry represents one class period of a day
type ScheduleEntry struct {
	Slot    int    `json:"slot"`
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
}

// DaySchedule represents the classes of a single calendar day
type DaySchedule struct {
	Date    string          `json:"date"` // DD.MM.YYYY
	Entries []ScheduleEntry `json:"entries"`
}

// Empty reports whether the day has no classes
func (d DaySchedule) Empty() bool {
	return len(d.Entries) == 0
}
