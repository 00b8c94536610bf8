package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-greeting/internal/core"
	"github.com/vovakirdan/tui-greeting/internal/page"
)

// Page layout constants
const (
	maxContentWidth = 72 // Widest the card column gets
	minContentWidth = 20
	blockGap        = 1 // Blank rows between elements
	typingCursor    = "▌"
)

var (
	pink     = lipgloss.Color(core.ColorPink.Hex())
	lavender = lipgloss.Color(core.ColorLavender.Hex())
	gold     = lipgloss.Color(core.ColorGold.Hex())
	gray     = lipgloss.Color(core.ColorGray.Hex())

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(pink).
			Padding(1, 0, 0, 0)

	messageStyle = lipgloss.NewStyle()

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lavender)

	sectionBodyStyle = lipgloss.NewStyle()

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(pink).
			Padding(0, 2)

	buttonClickedStyle = buttonStyle.
				Reverse(true).
				BorderForeground(gold)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(gold).
			Foreground(gold).
			Padding(0, 2).
			Align(lipgloss.Center)

	footerStyle = lipgloss.NewStyle().
			Foreground(gray).
			Italic(true)
)

// contentWidth returns the card column width for a terminal width.
func contentWidth(termWidth int) int {
	w := termWidth - 4
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < minContentWidth {
		w = core.Max(termWidth, 1)
	}
	return w
}

// renderElement draws one element at most width columns wide. Elements
// waiting for a reveal, and a closed surprise panel, keep their size but
// draw as blank space.
func renderElement(el *page.Element, width int, typing bool) string {
	var block string
	switch el.Kind {
	case page.KindHeading:
		block = titleStyle.Width(width).Align(lipgloss.Center).Render(el.Text())

	case page.KindText:
		if el.ID == page.IDTypedMessage {
			text := el.Text()
			if typing {
				text += typingCursor
			}
			block = messageStyle.Width(width).Render(text)
		} else {
			block = footerStyle.Width(width).Align(lipgloss.Center).Render(el.Text())
		}

	case page.KindSection:
		var parts []string
		if el.Title != "" {
			parts = append(parts, sectionTitleStyle.Render(el.Title))
		}
		parts = append(parts, sectionBodyStyle.Width(width).Render(el.Text()))
		block = lipgloss.JoinVertical(lipgloss.Left, parts...)

	case page.KindButton:
		style := buttonStyle
		if el.HasClass(page.ClassClicked) {
			style = buttonClickedStyle
		}
		block = style.Render(el.Text())

	case page.KindPanel:
		inner := core.Max(width-panelStyle.GetHorizontalFrameSize(), 1)
		block = panelStyle.Width(inner + panelStyle.GetHorizontalPadding()).Render(el.Text())
		if !el.HasClass(page.ClassVisible) {
			block = blank(block)
		}
		return block

	default:
		return ""
	}

	if el.HasClass(page.ClassRevealOnScroll) && !el.HasClass(page.ClassVisible) {
		return blank(block)
	}
	return block
}

// blank returns whitespace with the same size as block.
func blank(block string) string {
	w, h := lipgloss.Size(block)
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// renderDocument lays out the document at width columns and returns one
// string per document row, each indented by offset.
func renderDocument(doc *page.Document, width, offset int, typing bool) []string {
	blocks := make(map[*page.Element]string, len(doc.Elements()))
	doc.Layout(width, blockGap, func(el *page.Element, w int) (int, int) {
		block := renderElement(el, w, typing)
		blocks[el] = block
		if block == "" {
			return 0, 0
		}
		return lipgloss.Size(block)
	})

	rows := make([]string, doc.Height())
	for _, el := range doc.Elements() {
		block := blocks[el]
		if block == "" {
			continue
		}
		pad := strings.Repeat(" ", offset+el.Box.X)
		for i, line := range strings.Split(block, "\n") {
			if y := el.Box.Y + i; y >= 0 && y < len(rows) {
				rows[y] = pad + line
			}
		}
	}
	return rows
}
