package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-greeting/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorPink:     lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorPink.Hex())),
	core.ColorLavender: lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorLavender.Hex())),
	core.ColorGold:     lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGold.Hex())),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorWhite.Hex())),
	core.ColorGray:     lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.Hex())),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// Composite draws the painted cells of layer over base, a multi-line
// styled string. Blank layer cells let base show through; base lines are
// padded or cut to the layer width so columns line up.
func Composite(base string, layer *core.Screen) string {
	if layer.IsBlank() {
		return base
	}
	lines := strings.Split(base, "\n")
	for y := 0; y < layer.Height() && y < len(lines); y++ {
		lines[y] = compositeLine(lines[y], layer, y)
	}
	return strings.Join(lines, "\n")
}

func compositeLine(line string, layer *core.Screen, y int) string {
	w := layer.Width()

	var sb strings.Builder
	cursor := 0
	painted := false
	x := 0
	for x < w {
		cell := layer.GetCell(x, y)
		if cell.Rune == ' ' {
			x++
			continue
		}

		// Group consecutive cells with the same colour
		start := x
		var run strings.Builder
		for x < w {
			next := layer.GetCell(x, y)
			if next.Rune == ' ' || next.Color != cell.Color {
				break
			}
			run.WriteRune(next.Rune)
			x++
		}

		sb.WriteString(cut(line, cursor, start))
		sb.WriteString(styleFor(cell.Color).Render(run.String()))
		cursor = x
		painted = true
	}

	if !painted {
		return line
	}
	sb.WriteString(cut(line, cursor, w))
	return sb.String()
}

// cut returns the cells [left, right) of a styled line, padded with
// spaces wherever a wide character straddles an edge or the line is short.
func cut(line string, left, right int) string {
	if right <= left {
		return ""
	}
	total := ansi.StringWidth(line)
	if left >= total {
		return strings.Repeat(" ", right-left)
	}

	tail := ansi.TruncateLeft(line, left, "")
	if extra := ansi.StringWidth(tail) - (total - left); extra > 0 {
		// A wide character straddles the left edge; drop it
		tail = ansi.TruncateLeft(line, left+extra, "")
	}
	if lost := (total - left) - ansi.StringWidth(tail); lost > 0 {
		tail = strings.Repeat(" ", lost) + tail
	}

	seg := ansi.Truncate(tail, right-left, "")
	if short := (right - left) - ansi.StringWidth(seg); short > 0 {
		seg += strings.Repeat(" ", short)
	}
	return seg
}
