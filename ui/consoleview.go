// Package ui specifies custom controls for tview to follow chess server chat
// in the terminal.
package ui

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"icsterm/chat"
)

// span styles buffer positions [start, end).
type span struct {
	start, end int
	style      tcell.Style
}

// ConsoleView draws chat text with wrapping, link underlining and scrolling.
type ConsoleView struct {
	*tview.Box
	buf   *chat.RuneBuffer
	spans []span
	links []chat.LinkRange // buffer positions, sorted

	autoScroll bool
	pinned     bool // showing the newest rows
	offset     int  // first row drawn

	rows      []row
	rowsWidth int
	dirty     bool
	height    int

	onClick func(pos int)
}

func NewConsoleView() *ConsoleView {
	return &ConsoleView{
		Box:        tview.NewBox(),
		buf:        chat.NewRuneBuffer(""),
		autoScroll: true,
		pinned:     true,
		dirty:      true,
	}
}

// Buffer returns the displayed text for scanning.
func (c *ConsoleView) Buffer() chat.TextBuffer {
	return c.buf
}

// Text returns the displayed text.
func (c *ConsoleView) Text() string {
	return c.buf.String()
}

// AppendText adds text drawn in style. links are rune positions within text.
func (c *ConsoleView) AppendText(text string, style tcell.Style, links []chat.LinkRange) {
	base := c.buf.CharCount()
	c.buf.Append(text)
	c.spans = append(c.spans, span{start: base, end: c.buf.CharCount(), style: style})
	for _, l := range links {
		c.links = append(c.links, chat.LinkRange{Start: base + l.Start, End: base + l.End})
	}
	c.dirty = true
	if c.autoScroll {
		c.pinned = true
	}
}

// TrimLines drops the oldest lines so at most limit remain.
func (c *ConsoleView) TrimLines(limit int) {
	text := c.buf.Runes()
	lines := 0
	for _, r := range text {
		if r == '\n' {
			lines++
		}
	}
	if lines <= limit {
		return
	}
	drop, cut := lines-limit, 0
	for i, r := range text {
		if r == '\n' {
			drop--
			if drop == 0 {
				cut = i + 1
				break
			}
		}
	}
	n := c.buf.TrimFront(cut)
	c.shift(n)
}

func (c *ConsoleView) shift(n int) {
	spans := c.spans[:0]
	for _, s := range c.spans {
		if s.end <= n {
			continue
		}
		s.start, s.end = max(s.start-n, 0), s.end-n
		spans = append(spans, s)
	}
	c.spans = spans

	links := c.links[:0]
	for _, l := range c.links {
		if l.End < n {
			continue
		}
		links = append(links, chat.LinkRange{Start: max(l.Start-n, 0), End: l.End - n})
	}
	c.links = links
	c.dirty = true
}

// Clear removes all text.
func (c *ConsoleView) Clear() {
	c.buf.Reset()
	c.spans = nil
	c.links = nil
	c.offset = 0
	c.pinned = true
	c.dirty = true
}

func (c *ConsoleView) SetAutoScroll(on bool) {
	c.autoScroll = on
	if on {
		c.pinned = true
	}
}

func (c *ConsoleView) AutoScroll() bool {
	return c.autoScroll
}

// SetClickedFunc sets the handler called with the buffer position of a
// left click.
func (c *ConsoleView) SetClickedFunc(fn func(pos int)) {
	c.onClick = fn
}

func (c *ConsoleView) layout(width int) {
	if !c.dirty && width == c.rowsWidth {
		return
	}
	c.rows = wrapRows(c.buf.Runes(), width)
	c.rowsWidth = width
	c.dirty = false
}

func (c *ConsoleView) bottom() int {
	return max(len(c.rows)-c.height, 0)
}

// ScrollUp moves the view n rows towards older text.
func (c *ConsoleView) ScrollUp(n int) {
	if c.pinned {
		c.offset = c.bottom()
	}
	c.pinned = false
	c.offset = max(c.offset-n, 0)
}

// ScrollDown moves the view n rows towards newer text.
func (c *ConsoleView) ScrollDown(n int) {
	if c.pinned {
		return
	}
	c.offset += n
	if c.offset >= c.bottom() {
		c.ScrollToEnd()
	}
}

func (c *ConsoleView) ScrollToBeginning() {
	c.pinned = false
	c.offset = 0
}

func (c *ConsoleView) ScrollToEnd() {
	c.pinned = true
	c.offset = c.bottom()
}

// PositionAt returns the buffer position drawn at screen cell x, y as of the
// last Draw.
func (c *ConsoleView) PositionAt(x, y int) (int, bool) {
	ix, iy, width, height := c.GetInnerRect()
	if x < ix || y < iy || x >= ix+width || y >= iy+height {
		return 0, false
	}
	i := c.offset + y - iy
	if i >= len(c.rows) {
		return 0, false
	}
	return positionInRow(c.buf.Runes(), c.rows[i], x-ix)
}

func (c *ConsoleView) styleAt(pos int) tcell.Style {
	style := tcell.StyleDefault.Foreground(Palette.Text)
	if i := sort.Search(len(c.spans), func(i int) bool { return c.spans[i].end > pos }); i < len(c.spans) && c.spans[i].start <= pos {
		style = c.spans[i].style
	}
	if i := sort.Search(len(c.links), func(i int) bool { return c.links[i].End >= pos }); i < len(c.links) && c.links[i].Start <= pos {
		style = style.Foreground(Palette.Link).Underline(true)
	}
	return style
}

// Draw renders the visible rows.
func (c *ConsoleView) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	c.layout(width)
	c.height = height
	if c.pinned {
		c.offset = c.bottom()
	}
	c.offset = min(c.offset, c.bottom())

	text := c.buf.Runes()
	for line := 0; line < height && c.offset+line < len(c.rows); line++ {
		rw := c.rows[c.offset+line]
		col := 0
		for pos := rw.start; pos < rw.end; pos++ {
			r := text[pos]
			w := cellWidth(r)
			if w == 0 {
				continue
			}
			if r == '\t' {
				r = ' '
			}
			screen.SetContent(x+col, y+line, r, nil, c.styleAt(pos))
			col += w
		}
	}
}

// InputHandler scrolls with the arrow and page keys.
func (c *ConsoleView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return c.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		page := max(c.height-1, 1)
		switch event.Key() {
		case tcell.KeyUp:
			c.ScrollUp(1)
		case tcell.KeyDown:
			c.ScrollDown(1)
		case tcell.KeyPgUp:
			c.ScrollUp(page)
		case tcell.KeyPgDn:
			c.ScrollDown(page)
		case tcell.KeyHome:
			c.ScrollToBeginning()
		case tcell.KeyEnd:
			c.ScrollToEnd()
		}
	})
}

// MouseHandler reports left clicks and scrolls with the wheel.
func (c *ConsoleView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return c.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !c.InRect(x, y) {
			return false, nil
		}
		switch action {
		case tview.MouseLeftClick:
			setFocus(c)
			if pos, ok := c.PositionAt(x, y); ok && c.onClick != nil {
				c.onClick(pos)
			}
			consumed = true
		case tview.MouseScrollUp:
			c.ScrollUp(3)
			consumed = true
		case tview.MouseScrollDown:
			c.ScrollDown(3)
			consumed = true
		}
		return
	})
}
