package render

import (
	"fmt"
	"io"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en_US"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// DefaultIconBase is where the page expects icon assets.
const DefaultIconBase = "./img"

// Renderer writes view-models into a Document. It holds no per-page state and
// is safe for concurrent use across documents.
type Renderer struct {
	iconBase string
	locale   locales.Translator
}

// NewRenderer creates a Renderer. An empty iconBase selects DefaultIconBase.
func NewRenderer(iconBase string) *Renderer {
	if iconBase == "" {
		iconBase = DefaultIconBase
	}
	return &Renderer{
		iconBase: iconBase,
		locale:   en_US.New(),
	}
}

// Init renders current, daily and hourly views, then reveals the page.
func (r *Renderer) Init(doc *Document, b weather.ForecastBundle) error {
	loc := weather.LoadLocation(b.TimeZone)

	if err := r.RenderCurrent(doc, b.Current); err != nil {
		return err
	}
	if err := r.RenderDaily(doc, b.Daily, loc); err != nil {
		return err
	}
	if err := r.RenderHourly(doc, b.Hourly, loc); err != nil {
		return err
	}

	removeClass(doc.body, "blur")
	return nil
}

// Page parses tmpl, renders b into it and writes the result to w.
func (r *Renderer) Page(w io.Writer, tmpl []byte, b weather.ForecastBundle) error {
	doc, err := ParseBytes(tmpl)
	if err != nil {
		return err
	}
	if err := r.Init(doc, b); err != nil {
		return err
	}
	return doc.Render(w)
}

// RenderCurrent fills the current-conditions panel.
func (r *Renderer) RenderCurrent(doc *Document, v weather.CurrentView) error {
	src, err := r.IconURL(v.IconCode)
	if err != nil {
		return err
	}

	for _, f := range v.Fields() {
		n, ok := doc.slots[f.Slot]
		if !ok {
			return missing("#wrap-curr [data-" + f.Slot + "]")
		}
		setText(n, f.Text)
		AppendUnit(n, f.Kind)
	}
	setAttr(doc.currentIcon, "src", src)
	return nil
}

// RenderDaily replaces the day list with one template clone per entry.
func (r *Renderer) RenderDaily(doc *Document, days []weather.DailyView, loc *time.Location) error {
	var rows []*html.Node
	for _, d := range days {
		src, err := r.IconURL(d.IconCode)
		if err != nil {
			return err
		}

		row := cloneContent(doc.dayTemplate)
		setAttr(findIn(row, byData("days-ic")), "src", src)
		setText(findIn(row, byData("days-day")), r.DayName(d.Timestamp, loc))

		temp := findIn(row, byData("days-temp"))
		setText(temp, fmt.Sprint(d.MaxTemp))
		AppendUnit(temp, weather.KindTemperature)

		rows = append(rows, row...)
	}

	replaceRows(doc.days, doc.dayTemplate, rows)
	return nil
}

// RenderHourly replaces the hour list with one template clone per entry.
func (r *Renderer) RenderHourly(doc *Document, hours []weather.HourlyView, loc *time.Location) error {
	var rows []*html.Node
	for _, h := range hours {
		src, err := r.IconURL(h.IconCode)
		if err != nil {
			return err
		}

		row := cloneContent(doc.hourTemplate)
		setAttr(findIn(row, byData("hours-ic")), "src", src)
		setText(findIn(row, byData("hours-day")), r.DayName(h.Timestamp, loc))
		setText(findIn(row, byData("hours-time")), r.HourLabel(h.Timestamp, loc))

		for _, f := range []struct {
			slot string
			text string
			kind weather.Kind
		}{
			{"hours-temp", fmt.Sprint(h.Temp), weather.KindTemperature},
			{"hours-fl", fmt.Sprint(h.FeelsLike), weather.KindTemperature},
			{"hours-wind", fmt.Sprint(h.WindSpeed), weather.KindWindSpeed},
			{"hours-prcp", common.FormatFloat(h.Precip), weather.KindPrecipitation},
		} {
			n := findIn(row, byData(f.slot))
			setText(n, f.text)
			AppendUnit(n, f.kind)
		}

		rows = append(rows, row...)
	}

	replaceRows(doc.hours, doc.hourTemplate, rows)
	return nil
}

// replaceRows clears a list container, keeping its template, and appends rows.
func replaceRows(wrap, tmpl *html.Node, rows []*html.Node) {
	removeChildren(wrap, tmpl)
	for _, n := range rows {
		wrap.AppendChild(n)
	}
}

// ShowError reveals the page's error banner with msg. It is the fallback
// when no forecast could be fetched.
func (r *Renderer) ShowError(doc *Document, msg string) error {
	n := findFirst(doc.root, byID("error"))
	if n == nil {
		return missing("#error")
	}
	setText(n, msg)
	removeAttr(n, "hidden")
	removeClass(doc.body, "blur")
	return nil
}

// ErrorPage parses tmpl and writes it with the error banner shown.
func (r *Renderer) ErrorPage(w io.Writer, tmpl []byte, msg string) error {
	doc, err := ParseBytes(tmpl)
	if err != nil {
		return err
	}
	if err := r.ShowError(doc, msg); err != nil {
		return err
	}
	return doc.Render(w)
}

// IconURL resolves a weather code to its asset path.
func (r *Renderer) IconURL(code int) (string, error) {
	return weather.IconURL(r.iconBase, code)
}

// DayName returns the long en-US weekday for a millisecond timestamp.
func (r *Renderer) DayName(timestampMs int64, loc *time.Location) string {
	return r.locale.WeekdayWide(time.UnixMilli(timestampMs).In(loc).Weekday())
}

// HourLabel returns the 24-hour clock time for a millisecond timestamp.
func (r *Renderer) HourLabel(timestampMs int64, loc *time.Location) string {
	return time.UnixMilli(timestampMs).In(loc).Format("15:04")
}

// AppendUnit appends a <span class="val-unit"> carrying the unit for kind.
// Kinds without a unit leave n untouched.
func AppendUnit(n *html.Node, kind weather.Kind) {
	unit := kind.Unit()
	if unit == "" {
		return
	}
	span := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Span,
		Data:     "span",
		Attr:     []html.Attribute{{Key: "class", Val: "val-unit"}},
	}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: unit})
	n.AppendChild(span)
}
