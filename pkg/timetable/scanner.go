package timetable

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/korjavin/botan/pkg/models"
)

var (
	// ErrNoDates is returned when the page has no date anchor cells
	ErrNoDates = errors.New("no dates found in timetable")
	// ErrRowNotFound is returned when a date anchor has no enclosing row
	ErrRowNotFound = errors.New("date row not found")
)

// Placeholders used when the payload cell lacks a field
const (
	NoSubject = "Предмет не указан"
	NoRoom    = "Аудитория не указана"
	NoTeacher = "Преподаватель не указан"
)

var datePattern = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)

// Scanner extracts the nearest day from a timetable table
type Scanner struct {
	layout Layout
	bells  BellSchedule
}

// NewScanner creates a scanner for the given page layout and bell schedule
func NewScanner(layout Layout, bells BellSchedule) *Scanner {
	if bells == nil {
		bells = DefaultBells
	}
	return &Scanner{
		layout: layout,
		bells:  bells,
	}
}

// Scan returns the first day of the table with its classes in row order.
// A day without classes is returned with no entries and a nil error.
func (s *Scanner) Scan(t Table) (models.DaySchedule, error) {
	anchor, ok := s.firstAnchor(t)
	if !ok {
		return models.DaySchedule{}, ErrNoDates
	}

	day := models.DaySchedule{
		Date:    strings.Fields(anchor.Text())[0],
		Entries: []models.ScheduleEntry{},
	}

	row, ok := anchor.Row()
	if !ok {
		return models.DaySchedule{}, ErrRowNotFound
	}

	rows := t.Rows()
	start := row.Index()
	if start < 0 || start >= len(rows) {
		return models.DaySchedule{}, ErrRowNotFound
	}

	span, _ := anchor.RowSpan()
	end := start + span
	if end > len(rows) {
		end = len(rows)
	}

	for _, r := range rows[start:end] {
		cells := r.Cells()

		// a row holding nothing but the date itself
		if len(cells) == 1 {
			if _, spans := cells[0].RowSpan(); spans {
				continue
			}
		}

		for j, cell := range cells {
			slot, ok := s.slotNumber(cell)
			if !ok || j+1 >= len(cells) {
				continue
			}
			payload := cells[j+1]
			if !payload.HasClass(s.layout.Entry) {
				continue
			}
			day.Entries = append(day.Entries, s.entry(slot, payload))
		}
	}

	return day, nil
}

// firstAnchor finds the first header cell with a row-span and a date in its text
func (s *Scanner) firstAnchor(t Table) (Cell, bool) {
	for _, cell := range t.CellsWithClass(s.layout.Header) {
		if _, spans := cell.RowSpan(); !spans {
			continue
		}
		if datePattern.MatchString(cell.Text()) {
			return cell, true
		}
	}
	return nil, false
}

// slotNumber reports whether cell is a slot-number cell and returns the slot
func (s *Scanner) slotNumber(cell Cell) (int, bool) {
	if !cell.HasClass(s.layout.Header) {
		return 0, false
	}
	if _, spans := cell.RowSpan(); spans {
		return 0, false
	}
	text := strings.TrimSpace(cell.Text())
	if !isDigits(text) {
		return 0, false
	}
	slot, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return slot, true
}

func (s *Scanner) entry(slot int, payload Cell) models.ScheduleEntry {
	return models.ScheduleEntry{
		Slot:    slot,
		Time:    s.bells.TimeFor(slot),
		Subject: descendantText(payload, s.layout.Subject, NoSubject),
		Room:    descendantText(payload, s.layout.Room, NoRoom),
		Teacher: descendantText(payload, s.layout.Teacher, NoTeacher),
	}
}

func descendantText(cell Cell, class, fallback string) string {
	el, ok := cell.Descendant(class)
	if !ok {
		return fallback
	}
	return strings.TrimSpace(el.Text())
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
