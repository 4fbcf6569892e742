// Package schedule answers "what classes are next" with a ready-to-send chat message.
// Every failure is turned into a reply text; nothing here returns an error to the caller.
package schedule

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/korjavin/botan/pkg/logger"
	"github.com/korjavin/botan/pkg/markup"
	"github.com/korjavin/botan/pkg/timetable"
)

// Replies for failures
const (
	NoDatesText     = "Не удалось найти даты в расписании"
	RowNotFoundText = "Ошибка: не удалось найти строку с датой"
	failurePrefix   = "Ошибка при получении расписания: "
)

// Fetcher downloads a page as UTF-8 HTML
type Fetcher interface {
	Page(ctx context.Context, url string) ([]byte, error)
}

// Service builds the nearest-day schedule message
type Service struct {
	fetcher   Fetcher
	url       string
	scanner   *timetable.Scanner
	formatter *timetable.Formatter
	logger    *logger.Logger
}

// New creates a schedule service for the page at url
func New(fetcher Fetcher, url string, scanner *timetable.Scanner, formatter *timetable.Formatter) *Service {
	return &Service{
		fetcher:   fetcher,
		url:       url,
		scanner:   scanner,
		formatter: formatter,
		logger:    logger.New("schedule"),
	}
}

// Nearest fetches the timetable page and renders its nearest day
func (s *Service) Nearest(ctx context.Context) (text string) {
	defer s.recoverInto(&text)

	page, err := s.fetcher.Page(ctx, s.url)
	if err != nil {
		s.logger.Error("Failed to fetch timetable: %v", err)
		return failureText(err)
	}

	return s.Render(bytes.NewReader(page))
}

// Render renders the nearest day of an already downloaded page
func (s *Service) Render(r io.Reader) (text string) {
	defer s.recoverInto(&text)

	doc, err := markup.Parse(r)
	if err != nil {
		s.logger.Error("Failed to parse timetable: %v", err)
		return failureText(err)
	}

	day, err := s.scanner.Scan(doc)
	switch {
	case errors.Is(err, timetable.ErrNoDates):
		s.logger.Warn("No date anchors found on the timetable page")
		return NoDatesText
	case errors.Is(err, timetable.ErrRowNotFound):
		s.logger.Warn("Date anchor without an enclosing row")
		return RowNotFoundText
	case err != nil:
		return failureText(err)
	}

	s.logger.Info("Nearest day %s: %d classes", day.Date, len(day.Entries))
	return s.formatter.Format(day)
}

// recoverInto replaces the reply with a failure text if the parser panics
func (s *Service) recoverInto(text *string) {
	if r := recover(); r != nil {
		s.logger.Error("Panic while building schedule: %v", r)
		*text = failureText(fmt.Errorf("%v", r))
	}
}

func failureText(err error) string {
	return failurePrefix + err.Error()
}
