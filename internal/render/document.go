package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrPrecondition is returned when the page template lacks an element the
// renderer writes into.
var ErrPrecondition = errors.New("dashboard template precondition failed")

var (
	currentSlots = []string{"curr-temp", "curr-high", "curr-high-fl", "curr-wind", "curr-low", "curr-low-fl", "curr-prcp"}
	daySlots     = []string{"days-ic", "days-day", "days-temp"}
	hourSlots    = []string{"hours-ic", "hours-day", "hours-time", "hours-temp", "hours-fl", "hours-wind", "hours-prcp"}
)

// Document is a parsed dashboard page with its write targets resolved.
type Document struct {
	root *html.Node
	body *html.Node

	current     *html.Node
	currentIcon *html.Node
	slots       map[string]*html.Node

	days         *html.Node
	dayTemplate  *html.Node
	hours        *html.Node
	hourTemplate *html.Node
}

// Parse reads an HTML page and checks that every element the renderer needs
// is present.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}

	d := &Document{root: root, slots: make(map[string]*html.Node)}

	if d.body = findFirst(root, byAtom(atom.Body)); d.body == nil {
		return nil, missing("<body>")
	}

	if d.current = findFirst(root, byID("wrap-curr")); d.current == nil {
		return nil, missing("#wrap-curr")
	}
	if d.currentIcon = findFirst(d.current, byClass("ic")); d.currentIcon == nil {
		return nil, missing("#wrap-curr .ic")
	}
	for _, slot := range currentSlots {
		n := findFirst(d.current, byData(slot))
		if n == nil {
			return nil, missing("#wrap-curr [data-" + slot + "]")
		}
		d.slots[slot] = n
	}

	if d.days, d.dayTemplate, err = listContainer(root, "wrap-days", daySlots); err != nil {
		return nil, err
	}
	if d.hours, d.hourTemplate, err = listContainer(root, "wrap-hours", hourSlots); err != nil {
		return nil, err
	}

	return d, nil
}

// ParseBytes is Parse over an in-memory template.
func ParseBytes(b []byte) (*Document, error) {
	return Parse(bytes.NewReader(b))
}

func listContainer(root *html.Node, id string, slots []string) (*html.Node, *html.Node, error) {
	wrap := findFirst(root, byID(id))
	if wrap == nil {
		return nil, nil, missing("#" + id)
	}
	var tmpl *html.Node
	for c := wrap.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Template {
			tmpl = c
			break
		}
	}
	if tmpl == nil {
		return nil, nil, missing("#" + id + " > template")
	}
	for _, slot := range slots {
		if findFirst(tmpl, byData(slot)) == nil {
			return nil, nil, missing("#" + id + " template [data-" + slot + "]")
		}
	}
	return wrap, tmpl, nil
}

func missing(what string) error {
	return fmt.Errorf("%w: missing %s", ErrPrecondition, what)
}

// Render serializes the document.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String is Render into a string.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}
