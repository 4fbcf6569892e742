// Package markup exposes an HTML page as a timetable.Table using goquery.
package markup

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/korjavin/botan/pkg/timetable"
	"golang.org/x/net/html"
)

// Document is a parsed timetable page
type Document struct {
	doc      *goquery.Document
	rows     []*row
	rowIndex map[*html.Node]int
}

// Parse reads UTF-8 HTML from r
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return New(doc), nil
}

// New wraps an already parsed goquery document
func New(doc *goquery.Document) *Document {
	d := &Document{
		doc:      doc,
		rowIndex: make(map[*html.Node]int),
	}

	doc.Find("tr").Each(func(i int, sel *goquery.Selection) {
		d.rowIndex[sel.Get(0)] = i
		d.rows = append(d.rows, &row{doc: d, sel: sel, index: i})
	})

	return d
}

// Rows returns every tr of the page, nested tables included
func (d *Document) Rows() []timetable.Row {
	out := make([]timetable.Row, len(d.rows))
	for i, r := range d.rows {
		out[i] = r
	}
	return out
}

// CellsWithClass returns every td carrying class
func (d *Document) CellsWithClass(class string) []timetable.Cell {
	var out []timetable.Cell
	d.doc.Find("td").Each(func(_ int, sel *goquery.Selection) {
		if sel.HasClass(class) {
			out = append(out, &cell{doc: d, sel: sel})
		}
	})
	return out
}

type row struct {
	doc   *Document
	sel   *goquery.Selection
	index int
}

func (r *row) Index() int { return r.index }

// Cells returns the td descendants of the row in document order
func (r *row) Cells() []timetable.Cell {
	var out []timetable.Cell
	r.sel.Find("td").Each(func(_ int, sel *goquery.Selection) {
		out = append(out, &cell{doc: r.doc, sel: sel})
	})
	return out
}

type cell struct {
	doc *Document
	sel *goquery.Selection
}

func (c *cell) Text() string {
	return nodeText(c.sel)
}

// RowSpan treats a set but malformed or non-positive rowspan as 1
func (c *cell) RowSpan() (int, bool) {
	raw, ok := c.sel.Attr("rowspan")
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return 1, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1, true
	}
	return n, true
}

func (c *cell) HasClass(class string) bool {
	return c.sel.HasClass(class)
}

func (c *cell) Row() (timetable.Row, bool) {
	tr := c.sel.Closest("tr")
	if tr.Length() == 0 {
		return nil, false
	}
	i, ok := c.doc.rowIndex[tr.Get(0)]
	if !ok {
		return nil, false
	}
	return c.doc.rows[i], true
}

func (c *cell) Descendant(class string) (timetable.Element, bool) {
	found := c.sel.Find("*").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return sel.HasClass(class)
	}).First()
	if found.Length() == 0 {
		return nil, false
	}
	return element{sel: found}, true
}

type element struct {
	sel *goquery.Selection
}

func (e element) Text() string {
	return nodeText(e.sel)
}

// nodeText joins the trimmed text nodes under sel with single spaces,
// so "01.09.2025<br>Понедельник" reads as "01.09.2025 Понедельник".
func nodeText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
