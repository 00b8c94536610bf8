// Package tui provides the Bubble Tea integration for the greeting card.
// It drives the effect scheduler from a frame tick, maps input to scrolling
// and clicks, and draws the page with the confetti layer on top.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an animation frame.
type TickMsg time.Time

// maxFrameStep caps how much scheduler time one tick may cover, so a
// stalled terminal does not replay a burst of timers at once.
const maxFrameStep = 250 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameStep returns the scheduler time covered by a tick at now.
func frameStep(last, now time.Time, tickRate int) time.Duration {
	if last.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return time.Second / time.Duration(tickRate)
	}
	d := now.Sub(last)
	if d < 0 {
		return 0
	}
	return min(d, maxFrameStep)
}
