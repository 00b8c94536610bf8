package reveal

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-greeting/internal/config"
	"github.com/vovakirdan/tui-greeting/internal/core"
	"github.com/vovakirdan/tui-greeting/internal/page"
)

// Controller adds the visible class to reveal-on-scroll elements, once each.
type Controller struct {
	observer *Observer
	logger   *log.Logger
}

// Setup observes every reveal-on-scroll element in the document. It
// returns nil when there are none.
func Setup(doc *page.Document, cfg config.RevealConfig, logger *log.Logger) *Controller {
	items := doc.QueryByClass(page.ClassRevealOnScroll)
	if len(items) == 0 {
		return nil
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{logger: logger}
	c.observer = NewObserver(cfg.Threshold, c.handle)
	for _, el := range items {
		c.observer.Observe(el)
	}
	return c
}

func (c *Controller) handle(entries []Entry) {
	for _, e := range entries {
		if !e.IsIntersecting {
			continue
		}
		e.Target.AddClass(page.ClassVisible)
		c.observer.Unobserve(e.Target)
		c.logger.Debug("revealed", "id", e.Target.ID, "ratio", e.Ratio)
	}
}

// Check re-evaluates the observed elements against the viewport, given in
// document rows. Call it after scrolling, resizing or re-layout.
func (c *Controller) Check(viewport core.Rect) {
	c.observer.Check(viewport)
}

// Pending returns how many elements have not been revealed yet.
func (c *Controller) Pending() int {
	return c.observer.Len()
}
