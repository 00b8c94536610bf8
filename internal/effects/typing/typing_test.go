package typing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-greeting/internal/config"
	"github.com/vovakirdan/tui-greeting/internal/page"
	"github.com/vovakirdan/tui-greeting/internal/sched"
)

var testTiming = config.TypingConfig{
	InitialDelay: config.Duration(400 * time.Millisecond),
	Delay:        config.Duration(32 * time.Millisecond),
}

func newDoc() (*page.Document, *page.Element) {
	el := page.NewElement(page.IDTypedMessage, page.KindText, "")
	return page.NewDocument(el), el
}

func TestTypesOneCharacterPerTickAfterDelay(t *testing.T) {
	doc, el := newDoc()
	loop := sched.NewLoop()
	typer := Setup(doc, loop, "Hi\nyo", testTiming, nil)
	require.NotNil(t, typer)

	loop.Advance(399 * time.Millisecond)
	assert.Equal(t, "", el.Text())

	loop.Advance(time.Millisecond + 32*time.Millisecond)
	assert.Equal(t, "H", el.Text())

	loop.Advance(2 * 32 * time.Millisecond)
	assert.Equal(t, "Hi\n", el.Text())

	typed, total := typer.Progress()
	assert.Equal(t, 3, typed)
	assert.Equal(t, 5, total)
	assert.False(t, typer.Done())
}

func TestStopsAfterLastCharacter(t *testing.T) {
	doc, el := newDoc()
	loop := sched.NewLoop()
	typer := Setup(doc, loop, "abc", testTiming, nil)

	loop.Advance(400*time.Millisecond + 3*32*time.Millisecond)
	assert.Equal(t, "abc", el.Text())
	assert.True(t, typer.Done())
	assert.Equal(t, 0, loop.Pending(), "interval must be cancelled")

	// Nothing touches the held container once typing is complete.
	el.SetText("changed elsewhere")
	loop.Advance(10 * time.Second)
	assert.Equal(t, "changed elsewhere", el.Text())
}

func TestKeepsGraphemeClustersWhole(t *testing.T) {
	doc, el := newDoc()
	loop := sched.NewLoop()
	msg := "ပါ🎉"
	typer := Setup(doc, loop, msg, testTiming, nil)

	_, total := typer.Progress()
	require.Equal(t, len(Split(msg)), total)
	assert.Less(t, total, len([]rune(msg)), "combining marks join their base character")

	loop.Advance(400*time.Millisecond + 32*time.Millisecond)
	assert.Equal(t, Split(msg)[0], el.Text())

	loop.Advance(time.Second)
	assert.Equal(t, msg, el.Text())
}

func TestEmptyMessageFinishesOnFirstTick(t *testing.T) {
	doc, el := newDoc()
	loop := sched.NewLoop()
	typer := Setup(doc, loop, "", testTiming, nil)

	loop.Advance(time.Second)
	assert.Equal(t, "", el.Text())
	assert.True(t, typer.Done())
	assert.Equal(t, 0, loop.Pending())
}

func TestSkipRevealsRest(t *testing.T) {
	doc, el := newDoc()
	loop := sched.NewLoop()
	typer := Setup(doc, loop, "hello", testTiming, nil)

	loop.Advance(400*time.Millisecond + 2*32*time.Millisecond)
	typer.Skip()
	assert.Equal(t, "hello", el.Text())
	assert.True(t, typer.Done())
	assert.Equal(t, 0, loop.Pending())

	typer.Skip()
	assert.Equal(t, "hello", el.Text())
}

func TestSkipBeforeStart(t *testing.T) {
	doc, el := newDoc()
	loop := sched.NewLoop()
	typer := Setup(doc, loop, "hey", testTiming, nil)

	typer.Skip()
	assert.Equal(t, "hey", el.Text())
	assert.Equal(t, 0, loop.Pending())

	loop.Advance(time.Second)
	assert.Equal(t, "hey", el.Text())
}

func TestMissingContainerIsNoop(t *testing.T) {
	loop := sched.NewLoop()
	typer := Setup(page.NewDocument(), loop, "hello", testTiming, nil)

	assert.Nil(t, typer)
	assert.Equal(t, 0, loop.Pending())
}
