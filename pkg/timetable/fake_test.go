package timetable

import "slices"

type fakeElement string

func (e fakeElement) Text() string { return string(e) }

type fakeCell struct {
	text     string
	span     int
	hasSpan  bool
	classes  []string
	children map[string]string
	row      *fakeRow
}

func (c *fakeCell) Text() string { return c.text }

func (c *fakeCell) RowSpan() (int, bool) {
	if !c.hasSpan {
		return 1, false
	}
	return c.span, true
}

func (c *fakeCell) HasClass(class string) bool { return slices.Contains(c.classes, class) }

func (c *fakeCell) Row() (Row, bool) {
	if c.row == nil {
		return nil, false
	}
	return c.row, true
}

func (c *fakeCell) Descendant(class string) (Element, bool) {
	text, ok := c.children[class]
	if !ok {
		return nil, false
	}
	return fakeElement(text), true
}

type fakeRow struct {
	index int
	cells []*fakeCell
}

func (r *fakeRow) Index() int { return r.index }

func (r *fakeRow) Cells() []Cell {
	out := make([]Cell, len(r.cells))
	for i, c := range r.cells {
		out[i] = c
	}
	return out
}

type fakeTable struct {
	rows []*fakeRow
}

func newTable(rows ...[]*fakeCell) *fakeTable {
	t := &fakeTable{}
	for i, cells := range rows {
		row := &fakeRow{index: i, cells: cells}
		for _, c := range cells {
			c.row = row
		}
		t.rows = append(t.rows, row)
	}
	return t
}

func (t *fakeTable) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = r
	}
	return out
}

func (t *fakeTable) CellsWithClass(class string) []Cell {
	var out []Cell
	for _, r := range t.rows {
		for _, c := range r.cells {
			if c.HasClass(class) {
				out = append(out, c)
			}
		}
	}
	return out
}

func anchor(text string, span int) *fakeCell {
	return &fakeCell{text: text, span: span, hasSpan: true, classes: []string{"hd"}}
}

func slot(text string) *fakeCell {
	return &fakeCell{text: text, classes: []string{"hd"}}
}

func class(subject, room, teacher string) *fakeCell {
	c := &fakeCell{classes: []string{"ur"}, children: map[string]string{}}
	if subject != "" {
		c.children["z1"] = subject
	}
	if room != "" {
		c.children["z2"] = room
	}
	if teacher != "" {
		c.children["z3"] = teacher
	}
	return c
}

func plain(text string) *fakeCell {
	return &fakeCell{text: text}
}
