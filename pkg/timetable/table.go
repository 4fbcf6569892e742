package timetable

// Table is a read-only view of a parsed timetable page
type Table interface {
	// Rows returns every table row of the document in document order
	Rows() []Row
	// CellsWithClass returns every cell carrying class in document order
	CellsWithClass(class string) []Cell
}

// Row is a single table row
type Row interface {
	// Index is the position of the row in Table.Rows
	Index() int
	Cells() []Cell
}

// Element is any node of the page with text content
type Element interface {
	// Text returns the trimmed text of the node, text fragments joined by single spaces
	Text() string
}

// Cell is a table cell
type Cell interface {
	Element
	// RowSpan returns the row-span value and whether the attribute is set.
	// The value is at least 1.
	RowSpan() (int, bool)
	HasClass(class string) bool
	// Row returns the enclosing row, if any
	Row() (Row, bool)
	// Descendant returns the first descendant carrying class
	Descendant(class string) (Element, bool)
}

// Layout names the style classes the timetable page uses
type Layout struct {
	Header  string // date anchors and slot numbers
	Entry   string // payload cell next to a slot number
	Subject string
	Room    string
	Teacher string
}

// DefaultLayout is the markup of the college timetable site
var DefaultLayout = Layout{
	Header:  "hd",
	Entry:   "ur",
	Subject: "z1",
	Room:    "z2",
	Teacher: "z3",
}
