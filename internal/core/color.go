package core

import "strings"

// Color identifies a foreground colour for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Predefined colours for the card.
const (
	ColorDefault Color = iota
	ColorPink
	ColorLavender
	ColorGold
	ColorWhite
	ColorGray
)

// colorHex holds the true-colour value of each palette entry.
var colorHex = map[Color]string{
	ColorPink:     "#f29fb4",
	ColorLavender: "#c3b3ff",
	ColorGold:     "#f5d59c",
	ColorWhite:    "#ffffff",
	ColorGray:     "#8a8a8a",
}

// Hex returns the "#rrggbb" form of the colour, or "" for ColorDefault.
func (c Color) Hex() string {
	return colorHex[c]
}

// colorNames lets configuration refer to palette entries by name.
var colorNames = map[string]Color{
	"pink":     ColorPink,
	"lavender": ColorLavender,
	"gold":     ColorGold,
	"white":    ColorWhite,
	"gray":     ColorGray,
}

// ParseColor maps a palette name or its "#rrggbb" value to a Color.
// Unknown values return ColorDefault and false.
func ParseColor(s string) (Color, bool) {
	if c, ok := colorNames[strings.ToLower(s)]; ok {
		return c, true
	}
	for c, h := range colorHex {
		if strings.EqualFold(h, s) {
			return c, true
		}
	}
	return ColorDefault, false
}
