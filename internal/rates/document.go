package rates

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TabularDocument exposes the table rows of a page in document order.
type TabularDocument interface {
	Rows() []Row
}

// Row is a single table row.
type Row interface {
	// Text returns the concatenated text of the whole row.
	Text() string
	// Cells returns the trimmed text of each data cell, in order.
	Cells() []string
}

// ParseHTML parses an HTML page into a TabularDocument holding every <tr> that sits inside a <table>.
func ParseHTML(content string) (TabularDocument, error) {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &htmlDocument{}
	var walk func(n *html.Node, inTable bool)
	walk = func(n *html.Node, inTable bool) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Table:
				inTable = true
			case atom.Tr:
				if inTable {
					doc.rows = append(doc.rows, newHTMLRow(n))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inTable)
		}
	}
	walk(root, false)

	return doc, nil
}

type htmlDocument struct {
	rows []Row
}

func (d *htmlDocument) Rows() []Row { return d.rows }

type htmlRow struct {
	text  string
	cells []string
}

func newHTMLRow(tr *html.Node) *htmlRow {
	r := &htmlRow{text: textOf(tr)}

	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Td {
				r.cells = append(r.cells, strings.TrimSpace(textOf(c)))
			}
			collect(c)
		}
	}
	collect(tr)

	return r
}

func (r *htmlRow) Text() string    { return r.text }
func (r *htmlRow) Cells() []string { return r.cells }

// textOf concatenates the text nodes below n, skipping script and style content.
func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
