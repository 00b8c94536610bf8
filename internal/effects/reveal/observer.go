// Package reveal marks page elements visible the first time they scroll
// into view.
package reveal

import (
	"github.com/vovakirdan/tui-greeting/internal/core"
	"github.com/vovakirdan/tui-greeting/internal/page"
)

// Entry describes one observed element whose intersection state changed.
type Entry struct {
	Target         *page.Element
	Ratio          float64 // Visible fraction of the element, 0..1
	IsIntersecting bool    // Ratio reached the threshold
}

// Observer tracks how much of each observed element lies inside the
// viewport and reports threshold crossings.
type Observer struct {
	threshold float64
	callback  func([]Entry)
	targets   []*page.Element
	last      map[*page.Element]bool
}

// NewObserver creates an observer that calls callback with the entries
// whose state changed on each Check.
func NewObserver(threshold float64, callback func([]Entry)) *Observer {
	return &Observer{
		threshold: threshold,
		callback:  callback,
		last:      make(map[*page.Element]bool),
	}
}

// Observe starts watching an element. Observing twice is a no-op.
func (o *Observer) Observe(el *page.Element) {
	if _, ok := o.last[el]; ok {
		return
	}
	o.targets = append(o.targets, el)
	o.last[el] = false
}

// Unobserve stops watching an element.
func (o *Observer) Unobserve(el *page.Element) {
	if _, ok := o.last[el]; !ok {
		return
	}
	delete(o.last, el)
	for i, t := range o.targets {
		if t == el {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			break
		}
	}
}

// Len returns the number of observed elements.
func (o *Observer) Len() int {
	return len(o.targets)
}

// Check measures every observed element against the viewport (in
// document coordinates) and delivers the changed entries in one call.
func (o *Observer) Check(viewport core.Rect) {
	var entries []Entry
	for _, el := range o.targets {
		ratio := Ratio(el.Box, viewport)
		hit := ratio > 0 && ratio >= o.threshold
		if hit != o.last[el] {
			o.last[el] = hit
			entries = append(entries, Entry{Target: el, Ratio: ratio, IsIntersecting: hit})
		}
	}
	if len(entries) > 0 {
		o.callback(entries)
	}
}

// Ratio returns the fraction of box rows inside viewport. Only the
// vertical extent counts; the page does not scroll sideways. A zero-height
// box counts as fully visible when its row is inside the viewport.
func Ratio(box, viewport core.Rect) float64 {
	if box.H <= 0 {
		if box.Y >= viewport.Y && box.Y < viewport.Bottom() {
			return 1
		}
		return 0
	}
	// Compare rows only: project both boxes onto a one-cell column
	rows := core.NewRect(0, box.Y, 1, box.H).Intersection(core.NewRect(0, viewport.Y, 1, viewport.H))
	if rows.Empty() {
		return 0
	}
	return float64(rows.H) / float64(box.H)
}
