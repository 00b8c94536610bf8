// Package page models the card's document: a flat, ordered list of
// elements with stable IDs, class markers and text content. Effects look
// elements up by ID or class and only ever touch classes and text; the
// platform lays the elements out and draws them.
package page

import (
	"sort"
	"strings"

	"github.com/vovakirdan/tui-greeting/internal/core"
)

// Well-known element IDs and classes.
const (
	IDTitle           = "title"
	IDTypedMessage    = "typed-message"
	IDSurpriseButton  = "surprise-button"
	IDSurpriseMessage = "surprise-message"
	IDConfettiCanvas  = "confetti-canvas"
	IDFooter          = "footer"

	ClassRevealOnScroll = "reveal-on-scroll"
	ClassVisible        = "visible"
	ClassClicked        = "clicked"
)

// Kind tells the renderer how to draw an element.
type Kind uint8

const (
	KindHeading Kind = iota
	KindText
	KindSection
	KindButton
	KindPanel
	KindCanvas
)

// Element is one node of the document.
type Element struct {
	ID    string
	Kind  Kind
	Title string // Section heading, if any
	Box   core.Rect

	text    strings.Builder
	classes map[string]struct{}
}

// NewElement creates an element with the given classes.
func NewElement(id string, kind Kind, text string, classes ...string) *Element {
	el := &Element{
		ID:      id,
		Kind:    kind,
		classes: make(map[string]struct{}, len(classes)),
	}
	el.text.WriteString(text)
	for _, c := range classes {
		el.classes[c] = struct{}{}
	}
	return el
}

// Text returns the element's text content.
func (e *Element) Text() string {
	return e.text.String()
}

// SetText replaces the element's text content.
func (e *Element) SetText(s string) {
	e.text.Reset()
	e.text.WriteString(s)
}

// AppendText adds s to the end of the text content.
func (e *Element) AppendText(s string) {
	e.text.WriteString(s)
}

// AddClass sets a class marker. Adding an existing class is a no-op.
func (e *Element) AddClass(c string) {
	e.classes[c] = struct{}{}
}

// RemoveClass clears a class marker.
func (e *Element) RemoveClass(c string) {
	delete(e.classes, c)
}

// HasClass reports whether the class marker is set.
func (e *Element) HasClass(c string) bool {
	_, ok := e.classes[c]
	return ok
}

// Classes returns the element's class markers in sorted order.
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Document is the ordered set of elements making up the card.
type Document struct {
	elements []*Element
	byID     map[string]*Element
	height   int
}

// NewDocument creates a document from elements in display order.
// Later elements with a duplicate ID shadow nothing; the first one wins.
func NewDocument(elements ...*Element) *Document {
	d := &Document{byID: make(map[string]*Element, len(elements))}
	for _, el := range elements {
		d.Append(el)
	}
	return d
}

// Append adds an element at the end of the document.
func (d *Document) Append(el *Element) {
	d.elements = append(d.elements, el)
	if _, dup := d.byID[el.ID]; !dup && el.ID != "" {
		d.byID[el.ID] = el
	}
}

// GetElementByID returns the element with the given ID, or nil.
func (d *Document) GetElementByID(id string) *Element {
	return d.byID[id]
}

// QueryByClass returns every element carrying the class, in document order.
func (d *Document) QueryByClass(class string) []*Element {
	var out []*Element
	for _, el := range d.elements {
		if el.HasClass(class) {
			out = append(out, el)
		}
	}
	return out
}

// Elements returns the elements in document order.
func (d *Document) Elements() []*Element {
	return d.elements
}

// Height returns the total laid-out height in rows.
func (d *Document) Height() int {
	return d.height
}

// MeasureFunc returns the size in cells an element occupies when given
// at most width columns.
type MeasureFunc func(el *Element, width int) (w, h int)

// Layout stacks the elements top to bottom, separated by gap blank rows,
// centres each horizontally and records its box. Canvas elements are
// overlays and take the full width with zero height.
func (d *Document) Layout(width, gap int, measure MeasureFunc) {
	y := 0
	first := true
	for _, el := range d.elements {
		if el.Kind == KindCanvas {
			el.Box = core.NewRect(0, 0, width, 0)
			continue
		}
		if !first {
			y += gap
		}
		first = false
		w, h := measure(el, width)
		w = core.Clamp(w, 0, core.Max(width, 0))
		h = core.Max(h, 0)
		el.Box = core.NewRect((width-w)/2, y, w, h)
		y += h
	}
	d.height = y
}
