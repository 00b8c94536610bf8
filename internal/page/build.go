package page

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-greeting/internal/config"
)

// Build assembles the greeting card document from its content.
//
// The typed message container starts empty; the typing effect fills it.
// The surprise button and message are only added when their text is set,
// and the confetti canvas only when the button exists.
func Build(c config.Content) *Document {
	d := NewDocument()

	if c.Title != "" {
		d.Append(NewElement(IDTitle, KindHeading, c.Title))
	}
	if len(c.Message) > 0 {
		d.Append(NewElement(IDTypedMessage, KindText, ""))
	}

	for i, s := range c.Sections {
		el := NewElement(fmt.Sprintf("section-%d", i+1), KindSection, strings.TrimSpace(s.Body), ClassRevealOnScroll)
		el.Title = s.Heading
		d.Append(el)
	}

	if c.Button != "" {
		d.Append(NewElement(IDSurpriseButton, KindButton, c.Button, ClassRevealOnScroll))
		if c.Surprise != "" {
			d.Append(NewElement(IDSurpriseMessage, KindPanel, c.Surprise))
		}
		d.Append(NewElement(IDConfettiCanvas, KindCanvas, ""))
	}

	if c.Footer != "" {
		d.Append(NewElement(IDFooter, KindText, c.Footer, ClassRevealOnScroll))
	}
	return d
}

// FullMessage joins the message lines the way the typing effect reveals them.
func FullMessage(c config.Content) string {
	return strings.Join(c.Message, "\n")
}
