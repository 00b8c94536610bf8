// Package typing reveals a fixed message into a text element one
// character at a time.
package typing

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/rivo/uniseg"

	"github.com/vovakirdan/tui-greeting/internal/config"
	"github.com/vovakirdan/tui-greeting/internal/page"
	"github.com/vovakirdan/tui-greeting/internal/sched"
)

// Typer appends the message to its container on a fixed interval.
// A Typer never restarts once every character has been written.
type Typer struct {
	target *page.Element
	chars  []string // Grapheme clusters, so combining marks stay attached
	index  int
	start  sched.Handle
	tick   sched.Handle
	done   bool
	logger *log.Logger
}

// Setup starts typing message into the typed-message element after the
// configured initial delay. It returns nil, and schedules nothing, when
// the document has no such element.
func Setup(doc *page.Document, s sched.Scheduler, message string, cfg config.TypingConfig, logger *log.Logger) *Typer {
	target := doc.GetElementByID(page.IDTypedMessage)
	if target == nil {
		return nil
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	t := &Typer{
		target: target,
		chars:  Split(message),
		logger: logger,
	}
	t.start = s.AfterFunc(cfg.InitialDelay.D(), func() {
		t.tick = s.Every(cfg.Delay.D(), t.step)
	})
	return t
}

// Split breaks s into user-perceived characters.
func Split(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func (t *Typer) step() {
	if t.index < len(t.chars) {
		t.target.AppendText(t.chars[t.index])
	}
	t.index++
	if t.index >= len(t.chars) {
		t.finish()
	}
}

func (t *Typer) finish() {
	t.start.Cancel()
	t.tick.Cancel()
	if !t.done {
		t.done = true
		t.logger.Debug("typing complete", "chars", len(t.chars))
	}
}

// Skip writes the rest of the message at once and stops the timers.
func (t *Typer) Skip() {
	if t.done {
		return
	}
	for ; t.index < len(t.chars); t.index++ {
		t.target.AppendText(t.chars[t.index])
	}
	t.finish()
}

// Done reports whether the whole message has been written.
func (t *Typer) Done() bool {
	return t.done
}

// Progress returns how many characters have been written out of the total.
func (t *Typer) Progress() (typed, total int) {
	return min(t.index, len(t.chars)), len(t.chars)
}
