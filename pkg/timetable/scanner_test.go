package timetable

import (
	"errors"
	"reflect"
	"testing"

	"github.com/korjavin/botan/pkg/models"
)

func newTestScanner() *Scanner {
	return NewScanner(DefaultLayout, DefaultBells)
}

func slots(day models.DaySchedule) []int {
	out := make([]int, 0, len(day.Entries))
	for _, e := range day.Entries {
		out = append(out, e.Slot)
	}
	return out
}

func TestScanNoDates(t *testing.T) {
	table := newTable(
		[]*fakeCell{slot("1"), class("Math", "A101", "Dr. X")},
		[]*fakeCell{{text: "01.09.2025", classes: []string{"hd"}}}, // no row-span
		[]*fakeCell{{text: "Monday", span: 2, hasSpan: true, classes: []string{"hd"}}},
	)

	_, err := newTestScanner().Scan(table)
	if !errors.Is(err, ErrNoDates) {
		t.Fatalf("expected ErrNoDates, got %v", err)
	}
}

func TestScanRowNotFound(t *testing.T) {
	orphan := anchor("01.09.2025", 2)
	table := &fakeTable{}
	table.rows = []*fakeRow{{index: 0, cells: []*fakeCell{orphan}}}
	orphan.row = nil

	_, err := newTestScanner().Scan(table)
	if !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
}

func TestScanRowSpanBoundsDay(t *testing.T) {
	table := newTable(
		[]*fakeCell{anchor("01.09.2025 Понедельник", 3), slot("1"), class("Math", "A101", "Dr. X")},
		[]*fakeCell{slot("2"), class("Physics", "B202", "Dr. Y")},
		[]*fakeCell{slot("3"), class("History", "C303", "Dr. Z")},
		[]*fakeCell{anchor("02.09.2025 Вторник", 2), slot("1"), class("Art", "D404", "Dr. W")},
		[]*fakeCell{slot("2"), class("Music", "E505", "Dr. V")},
	)

	day, err := newTestScanner().Scan(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Date != "01.09.2025" {
		t.Errorf("expected date 01.09.2025, got %q", day.Date)
	}
	if got := slots(day); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("expected slots [1 2 3], got %v", got)
	}
	for _, e := range day.Entries {
		if e.Subject == "Art" || e.Subject == "Music" {
			t.Errorf("entry from the next day leaked into the result: %+v", e)
		}
	}
}

func TestScanEntryFields(t *testing.T) {
	table := newTable(
		[]*fakeCell{anchor("01.09.2025 Monday", 2), slot("1"), class("Math", "A101", "Dr. X")},
		[]*fakeCell{slot("2"), class("Physics", "B202", "Dr. Y")},
	)

	day, err := newTestScanner().Scan(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.ScheduleEntry{
		{Slot: 1, Time: "8:15-9:15", Subject: "Math", Room: "A101", Teacher: "Dr. X"},
		{Slot: 2, Time: "9:25-10:25", Subject: "Physics", Room: "B202", Teacher: "Dr. Y"},
	}
	if !reflect.DeepEqual(day.Entries, want) {
		t.Errorf("entries mismatch.\nGot: %+v\nExpected: %+v", day.Entries, want)
	}
}

func TestScanPlaceholders(t *testing.T) {
	table := newTable(
		[]*fakeCell{anchor("01.09.2025", 1), slot("4"), class("", "", "")},
	)

	day, err := newTestScanner().Scan(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(day.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(day.Entries))
	}
	e := day.Entries[0]
	if e.Subject != NoSubject || e.Room != NoRoom || e.Teacher != NoTeacher {
		t.Errorf("expected placeholders, got %+v", e)
	}
}

func TestScanUnknownSlotTime(t *testing.T) {
	table := newTable(
		[]*fakeCell{anchor("01.09.2025", 1), slot("10"), class("Late", "X1", "Dr. N")},
	)

	day, err := newTestScanner().Scan(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(day.Entries) != 1 || day.Entries[0].Time != UnknownTime {
		t.Errorf("expected one entry with %q, got %+v", UnknownTime, day.Entries)
	}
}

func TestScanSkipsSlotsWithoutPayload(t *testing.T) {
	table := newTable(
		[]*fakeCell{anchor("01.09.2025", 4), slot("1"), plain("not a class")},
		[]*fakeCell{slot("2")},
		[]*fakeCell{slot("3"), class("Chemistry", "F1", "Dr. C")},
		[]*fakeCell{plain("x"), slot(" 5 "), class("Biology", "F2", "Dr. B"), slot("6"), class("Drawing", "F3", "Dr. D")},
	)

	day, err := newTestScanner().Scan(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := slots(day); !reflect.DeepEqual(got, []int{3, 5, 6}) {
		t.Errorf("expected slots [3 5 6], got %v", got)
	}
}

func TestScanIgnoresNonSlotHeaders(t *testing.T) {
	table := newTable(
		[]*fakeCell{anchor("01.09.2025", 3)},
		[]*fakeCell{slot("1a"), class("Bad", "", "")},
		[]*fakeCell{{text: "2", span: 1, hasSpan: true, classes: []string{"hd"}}, class("Spanning", "", "")},
		[]*fakeCell{slot("3"), class("Outside", "", "")},
	)

	day, err := newTestScanner().Scan(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(day.Entries) != 0 {
		t.Errorf("expected no entries, got %+v", day.Entries)
	}
}

func TestScanEmptyDay(t *testing.T) {
	table := newTable(
		[]*fakeCell{anchor("07.09.2025 Воскресенье", 2)},
		[]*fakeCell{plain("выходной")},
	)

	day, err := newTestScanner().Scan(table)
	if err != nil {
		t.Fatalf("expected empty day, got error %v", err)
	}
	if day.Date != "07.09.2025" {
		t.Errorf("expected date 07.09.2025, got %q", day.Date)
	}
	if !day.Empty() {
		t.Errorf("expected no entries, got %+v", day.Entries)
	}
}

func TestScanClipsRowSpan(t *testing.T) {
	table := newTable(
		[]*fakeCell{plain("header")},
		[]*fakeCell{anchor("01.09.2025", 10), slot("1"), class("Math", "A101", "Dr. X")},
		[]*fakeCell{slot("2"), class("Physics", "B202", "Dr. Y")},
	)

	day, err := newTestScanner().Scan(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := slots(day); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("expected slots [1 2], got %v", got)
	}
}

func TestScanFirstAnchorWins(t *testing.T) {
	table := newTable(
		[]*fakeCell{anchor("03.09.2025", 1), slot("2"), class("First", "", "")},
		[]*fakeCell{anchor("01.09.2025", 1), slot("1"), class("Second", "", "")},
	)

	day, err := newTestScanner().Scan(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Date != "03.09.2025" {
		t.Errorf("expected the first anchor in document order, got %q", day.Date)
	}
}

func TestScanCustomBells(t *testing.T) {
	scanner := NewScanner(DefaultLayout, BellSchedule{1: "9:00-10:30"})
	table := newTable(
		[]*fakeCell{anchor("01.09.2025", 2), slot("1"), class("Math", "", "")},
		[]*fakeCell{slot("2"), class("Physics", "", "")},
	)

	day, err := scanner.Scan(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Entries[0].Time != "9:00-10:30" || day.Entries[1].Time != UnknownTime {
		t.Errorf("unexpected times: %+v", day.Entries)
	}
}
