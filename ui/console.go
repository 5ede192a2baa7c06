package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/tliron/commonlog"

	"icsterm/action"
	"icsterm/browser"
	"icsterm/chat"
	"icsterm/chatlog"
	"icsterm/config"
	"icsterm/sound"
	"icsterm/types"
)

var log = commonlog.GetLogger("icsterm.ui")

var now = time.Now

type clickKind int

const (
	clickNone clickKind = iota
	clickURL
	clickQuote
	clickWord
)

// ChatConsoleController owns a console view, its toolbar and input line.
type ChatConsoleController struct {
	cfg      *config.Config
	registry *action.Registry
	player   sound.Player

	view    *ConsoleView
	toolbar *Toolbar
	input   *tview.InputField
	flex    *tview.Flex

	selected  map[action.ToolBarKey]bool
	replaying bool // no sounds or recording while replaying a log
	filter    func(types.ChatEvent) bool
	record    func(types.ChatEvent)

	queue    func(func())
	focus    func(tview.Primitive)
	send     func(string)
	showPage func(string)
	openURL  func(string) error
}

// NewChatConsoleController builds the console. app may be nil, in which case
// updates run immediately on the calling goroutine.
func NewChatConsoleController(app *tview.Application, cfg *config.Config, registry *action.Registry, player sound.Player) *ChatConsoleController {
	c := &ChatConsoleController{
		cfg:      cfg,
		registry: registry,
		player:   player,
		view:     NewConsoleView(),
		input:    tview.NewInputField(),
		selected: make(map[action.ToolBarKey]bool),
		queue:    func(f func()) { f() },
		focus:    func(tview.Primitive) {},
		send:     func(string) {},
		showPage: func(string) {},
		openURL: func(url string) error {
			return browser.Open(cfg.Browser.Command, url)
		},
	}
	if player == nil {
		c.player = sound.Silent{}
	}
	if app != nil {
		c.queue = func(f func()) {
			// Spawn goroutine to avoid deadlock when called from the event loop
			go app.QueueUpdateDraw(f)
		}
		c.focus = func(p tview.Primitive) { app.SetFocus(p) }
	}

	items := action.Toolbar(registry.Actions(), cfg.IsFics())
	for _, it := range items {
		if it.Widget.Kind == action.Check {
			c.selected[it.Widget.Key] = it.Widget.Selected
		}
	}
	c.view.SetAutoScroll(c.IsToolItemSelected(action.AutoScrollButton))
	c.view.SetClickedFunc(c.handleClick)
	c.toolbar = NewToolbar(items, c)

	c.input.SetLabel("> ")
	c.input.SetFieldBackgroundColor(tcell.ColorDefault)
	c.input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		text := c.input.GetText()
		c.input.SetText("")
		c.Submit(text)
	})

	c.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(c.toolbar, 1, 0, false).
		AddItem(c.view, 0, 1, false).
		AddItem(c.input, 1, 0, true)
	c.flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if c.registry.Dispatch(event, c) {
			return nil
		}
		switch event.Key() {
		case tcell.KeyPgUp:
			c.view.ScrollUp(max(c.view.height-1, 1))
			return nil
		case tcell.KeyPgDn:
			c.view.ScrollDown(max(c.view.height-1, 1))
			return nil
		}
		return event
	})
	return c
}

// Primitive returns the root widget of the console.
func (c *ChatConsoleController) Primitive() tview.Primitive {
	return c.flex
}

func (c *ChatConsoleController) View() *ConsoleView {
	return c.view
}

func (c *ChatConsoleController) Input() *tview.InputField {
	return c.input
}

// SetSendFunc sets where outgoing commands go.
func (c *ChatConsoleController) SetSendFunc(fn func(string)) {
	c.send = fn
}

func (c *ChatConsoleController) SetShowPageFunc(fn func(string)) {
	c.showPage = fn
}

// SetFilter sets the predicate events must satisfy to be shown. nil accepts
// everything.
func (c *ChatConsoleController) SetFilter(fn func(types.ChatEvent) bool) {
	c.filter = fn
}

// SetRecordFunc sets the func called with every event shown outside of a
// replay.
func (c *ChatConsoleController) SetRecordFunc(fn func(types.ChatEvent)) {
	c.record = fn
}

func (c *ChatConsoleController) IsToolItemSelected(key action.ToolBarKey) bool {
	return c.selected[key]
}

func (c *ChatConsoleController) SetToolItemSelected(key action.ToolBarKey, selected bool) {
	c.selected[key] = selected
	if key == action.AutoScrollButton {
		c.view.SetAutoScroll(selected)
	}
}

func (c *ChatConsoleController) Clear() {
	c.view.Clear()
}

// Send echoes command to the console and hands it to the send func.
func (c *ChatConsoleController) Send(command string) {
	c.OnChatEvent(types.ChatEvent{Time: now(), Type: types.Outbound, Message: command})
	c.send(command)
}

func (c *ChatConsoleController) ShowPage(name string) {
	c.showPage(name)
}

// Submit sends text typed into the input line, prefixed with the prompt when
// prepend is on.
func (c *ChatConsoleController) Submit(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if prompt := c.cfg.Console.Prompt; prompt != "" && c.IsToolItemSelected(action.PrependTextButton) && !strings.HasPrefix(text, prompt) {
		text = prompt + text
	}
	c.Send(text)
}

// FormatEvent returns the console line for ev without its line break.
func (c *ChatConsoleController) FormatEvent(ev types.ChatEvent) string {
	var sb strings.Builder
	if c.cfg.Console.TimestampFormat != "" && !ev.Time.IsZero() {
		sb.WriteString(ev.Time.Format(c.cfg.Console.TimestampFormat))
	}
	switch {
	case ev.Source == "":
	case ev.Channel != "":
		fmt.Fprintf(&sb, "%s(%s): ", ev.Source, ev.Channel)
	case ev.GameID != "":
		fmt.Fprintf(&sb, "%s[%s]: ", ev.Source, ev.GameID)
	default:
		fmt.Fprintf(&sb, "%s: ", ev.Source)
	}
	sb.WriteString(ev.Message)
	return sb.String()
}

func styleFor(t types.ChatType) tcell.Style {
	style := tcell.StyleDefault
	switch t {
	case types.Tell, types.PartnerTell:
		return style.Foreground(Palette.Tell)
	case types.Internal:
		return style.Foreground(Palette.Internal)
	case types.Outbound:
		return style.Foreground(Palette.Outbound)
	default:
		return style.Foreground(Palette.Text)
	}
}

// OnChatEvent shows ev when it passes the filter, records it and plays the
// tell sound for direct tells.
func (c *ChatConsoleController) OnChatEvent(ev types.ChatEvent) {
	if c.filter != nil && !c.filter(ev) {
		return
	}
	text := c.FormatEvent(ev) + "\n"
	c.view.AppendText(text, styleFor(ev.Type), runeRanges(text, chat.FindLinks(text)))
	c.view.TrimLines(c.cfg.Console.MaxLines)

	if c.replaying {
		return
	}
	if c.record != nil {
		c.record(ev)
	}
	if ev.Type.IsDirect() && c.IsToolItemSelected(action.TellSounds) {
		if err := c.player.Play(c.cfg.Sound.TellSound); err != nil {
			log.Warningf("Could not play tell sound: %v", err)
		}
	}
}

// ReplayLog shows the events stored in the chat log at path without sound.
// The log is read in the background; the returned channel yields the result
// once the events are on screen.
func (c *ChatConsoleController) ReplayLog(path string) <-chan error {
	done := make(chan error, 1)
	go func() {
		var events []types.ChatEvent
		err := chatlog.ParseFile(path, func(ev types.ChatEvent) bool {
			events = append(events, ev)
			return true
		})
		c.queue(func() {
			c.replaying = true
			for _, ev := range events {
				c.OnChatEvent(ev)
			}
			c.replaying = false
			if err != nil {
				log.Warningf("Could not replay %s: %v", path, err)
				c.OnChatEvent(types.NewInternalEvent(fmt.Sprintf("Could not replay %s: %v", path, err)))
			}
			done <- err
		})
	}()
	return done
}

func (c *ChatConsoleController) resolveClick(pos int) (clickKind, string) {
	buf := c.view.Buffer()
	if url, ok := chat.URLAt(buf, pos); ok {
		return clickURL, chat.StripDoubleURLs(url)
	}
	if quoted, ok := chat.QuotedText(buf, pos); ok {
		return clickQuote, quoted
	}
	if word, ok := chat.Word(buf, pos); ok {
		return clickWord, "tell " + word + " "
	}
	return clickNone, ""
}

func (c *ChatConsoleController) handleClick(pos int) {
	kind, text := c.resolveClick(pos)
	switch kind {
	case clickURL:
		if err := c.openURL(text); err != nil {
			log.Warningf("Could not open %s: %v", text, err)
			c.OnChatEvent(types.NewInternalEvent(fmt.Sprintf("Could not open %s: %v", text, err)))
		}
	case clickQuote, clickWord:
		c.input.SetText(text)
		c.focus(c.input)
	}
}

// runeRanges converts byte ranges of s to rune ranges.
func runeRanges(s string, ranges []chat.LinkRange) []chat.LinkRange {
	if len(ranges) == 0 {
		return nil
	}
	out := make([]chat.LinkRange, len(ranges))
	for i, r := range ranges {
		out[i] = chat.LinkRange{
			Start: utf8.RuneCountInString(s[:r.Start]),
			End:   utf8.RuneCountInString(s[:r.End+1]) - 1,
		}
	}
	return out
}
