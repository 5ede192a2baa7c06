package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"icsterm/bughouse"
	"icsterm/config"
	"icsterm/poll"
)

var bugGameHeaders = [bughouse.Columns]string{"Game", "Time", "White", "Black"}

// bugGameWidths are the column widths in cells.
var bugGameWidths = [bughouse.Columns]int{10, 14, 30, 30}

// BugGamesView lists bughouse games in progress and observes the selected
// one.
type BugGamesView struct {
	flex    *tview.Flex
	table   *tview.Table
	hint    *tview.TextView
	observe func(gameID string)

	service *bughouse.Service
	poller  *poll.Poller
	queue   func(func())
	unsub   func()
	rows    [][]string
}

// NewBugGamesView creates the view. observe is called with the id of the
// game to watch. app may be nil, in which case updates run immediately.
func NewBugGamesView(app *tview.Application, cfg *config.Config, service *bughouse.Service, observe func(gameID string)) *BugGamesView {
	v := &BugGamesView{
		table:   tview.NewTable(),
		hint:    tview.NewTextView(),
		observe: observe,
		service: service,
		queue:   func(f func()) { f() },
	}
	if app != nil {
		v.queue = func(f func()) {
			go app.QueueUpdateDraw(f)
		}
	}

	v.table.SetSelectable(true, false)
	v.table.SetFixed(1, 0)
	v.table.SetBorder(true)
	v.table.SetTitle(" Bughouse Games ")
	v.table.SetTitleAlign(tview.AlignLeft)
	v.table.SetSelectedFunc(func(row, column int) {
		v.ObserveRow(row)
	})
	v.table.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action == tview.MouseLeftDoubleClick {
			row, _ := v.table.GetSelection()
			v.ObserveRow(row)
			return action, nil
		}
		return action, event
	})

	v.hint.SetTextColor(Palette.Hint)
	observeButton := tview.NewButton("Observe").SetSelectedFunc(func() {
		row, _ := v.table.GetSelection()
		v.ObserveRow(row)
	})

	buttons := tview.NewFlex().
		AddItem(observeButton, 11, 0, false).
		AddItem(v.hint, 0, 1, false)
	v.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.table, 0, 1, true).
		AddItem(buttons, 1, 0, false)

	v.SetGames(service.GamesInProgress())
	v.unsub = service.OnGamesInProgress(func(games []bughouse.Game) {
		v.queue(func() { v.SetGames(games) })
	})
	v.poller = poll.NewPoller("bughouse games", cfg.PollInterval, func() {
		if err := service.RefreshGamesInProgress(); err != nil {
			v.queue(func() { v.Alert(err.Error()) })
		}
	})
	return v
}

func (v *BugGamesView) Primitive() tview.Primitive {
	return v.flex
}

func (v *BugGamesView) Table() *tview.Table {
	return v.table
}

// SetGames replaces the listed games.
func (v *BugGamesView) SetGames(games []bughouse.Game) {
	v.rows = bughouse.Rows(games)
	selected, _ := v.table.GetSelection()

	v.table.Clear()
	for col, title := range bugGameHeaders {
		v.table.SetCell(0, col, tview.NewTableCell(title).
			SetTextColor(Palette.ButtonFocus).
			SetSelectable(false))
	}
	for i, r := range v.rows {
		for col, text := range r {
			v.table.SetCell(i+1, col, tview.NewTableCell(runewidth.Truncate(text, bugGameWidths[col], "…")).
				SetMaxWidth(bugGameWidths[col]).
				SetTextColor(Palette.Text))
		}
	}
	if selected > 0 && selected <= len(v.rows) {
		v.table.Select(selected, 0)
	}
	v.hint.SetText("")
}

// CellText returns the text shown in a data cell, row 0 being the first game
// row.
func (v *BugGamesView) CellText(row, col int) string {
	cell := v.table.GetCell(row+1, col)
	if cell == nil {
		return ""
	}
	return cell.Text
}

// ObserveRow observes the game on table row, or alerts when the row holds no
// game.
func (v *BugGamesView) ObserveRow(row int) {
	id, ok := bughouse.ObserveTarget(v.rows, row-1)
	if !ok {
		v.Alert("Select a game to observe first.")
		return
	}
	v.observe(id)
}

// Alert shows msg below the table.
func (v *BugGamesView) Alert(msg string) {
	log.Infof("Bughouse games: %s", msg)
	v.hint.SetText(" " + msg)
}

// HintText returns the text of the hint line.
func (v *BugGamesView) HintText() string {
	return v.hint.GetText(true)
}

// OnActivate starts refreshing while the view is shown.
func (v *BugGamesView) OnActivate() {
	v.poller.Activate()
}

// OnPassivate stops refreshing.
func (v *BugGamesView) OnPassivate() {
	v.poller.Passivate()
}

func (v *BugGamesView) Close() {
	v.poller.Close()
	v.unsub()
}
