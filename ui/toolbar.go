package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"icsterm/action"
)

// Toolbar is a row of action buttons.
type Toolbar struct {
	*tview.Box
	items   []action.Item
	src     action.Source
	focused int
	starts  []int // x offset of each item as of the last Draw
}

// NewToolbar creates a toolbar running items against src.
func NewToolbar(items []action.Item, src action.Source) *Toolbar {
	t := &Toolbar{
		Box:     tview.NewBox(),
		items:   items,
		src:     src,
		focused: -1,
	}
	t.moveFocus(1)
	return t
}

// Label returns the text drawn for item i.
func (t *Toolbar) Label(i int) string {
	it := t.items[i]
	if it.Widget.Kind == action.Separator {
		return "│"
	}
	label := it.Action.Name
	if it.Action.Icon != "" {
		label = it.Action.Icon + " " + label
	}
	if it.Widget.Kind == action.Check {
		if t.src.IsToolItemSelected(it.Widget.Key) {
			label = "[x] " + label
		} else {
			label = "[ ] " + label
		}
	}
	return label
}

func (t *Toolbar) layout() {
	t.starts = t.starts[:0]
	x := 0
	for i := range t.items {
		t.starts = append(t.starts, x)
		x += runewidth.StringWidth(t.Label(i)) + 2
	}
}

// ItemAt returns the item drawn at column col of the toolbar, or -1.
func (t *Toolbar) ItemAt(col int) int {
	t.layout()
	for i, start := range t.starts {
		width := runewidth.StringWidth(t.Label(i)) + 2
		if col >= start && col < start+width {
			return i
		}
	}
	return -1
}

func (t *Toolbar) selectable(i int) bool {
	it := t.items[i]
	return it.Widget.Kind != action.Separator && it.Widget.Enabled
}

func (t *Toolbar) moveFocus(dir int) {
	n := len(t.items)
	for step := 1; step <= n; step++ {
		i := ((t.focused+dir*step)%n + n) % n
		if t.selectable(i) {
			t.focused = i
			return
		}
	}
}

// Activate runs item i if it is enabled.
func (t *Toolbar) Activate(i int) {
	if i < 0 || i >= len(t.items) || !t.selectable(i) {
		return
	}
	t.focused = i
	if run := t.items[i].Action.Run; run != nil {
		log.Debugf("Executing toolbar action: %s", t.items[i].Action.Name)
		run(t.src)
	}
}

// Draw renders the buttons.
func (t *Toolbar) Draw(screen tcell.Screen) {
	t.Box.DrawForSubclass(screen, t)

	x, y, width, height := t.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	t.layout()
	hasFocus := t.HasFocus()
	for i := range t.items {
		style := tcell.StyleDefault.Foreground(Palette.ButtonText).Background(Palette.ToolbarBG)
		switch {
		case t.items[i].Widget.Kind == action.Separator:
			style = style.Foreground(Palette.Border)
		case !t.items[i].Widget.Enabled:
			style = style.Foreground(Palette.Hint)
		case hasFocus && i == t.focused:
			style = style.Background(Palette.ButtonFocus)
		}
		col := x + t.starts[i]
		label := " " + t.Label(i) + " "
		for _, ch := range label {
			if col >= x+width {
				return
			}
			screen.SetContent(col, y, ch, nil, style)
			col += runewidth.RuneWidth(ch)
		}
	}
}

// InputHandler moves between buttons with the arrow keys and runs the
// focused one on Enter or space.
func (t *Toolbar) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return t.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyBacktab:
			t.moveFocus(-1)
		case tcell.KeyRight, tcell.KeyTab:
			t.moveFocus(1)
		case tcell.KeyEnter:
			t.Activate(t.focused)
		case tcell.KeyRune:
			if event.Rune() == ' ' {
				t.Activate(t.focused)
			}
		}
	})
}

// MouseHandler runs the clicked button.
func (t *Toolbar) MouseHandler() func(act tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return t.WrapMouseHandler(func(act tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !t.InRect(x, y) {
			return false, nil
		}
		if act == tview.MouseLeftClick {
			ix, _, _, _ := t.GetInnerRect()
			t.Activate(t.ItemAt(x - ix))
			consumed = true
		}
		return
	})
}
