// Package timetable extracts the nearest day from a timetable page and renders it as a chat message.
// It works on a read-only view of the page table (see Table) and performs no I/O.
// Rows of the source table are assumed to be in chronological order: the first date anchor
// found in document order is taken as the nearest day.
package timetable
