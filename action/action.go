// Package action describes console actions, the toolbar widgets that show
// them and the hotkeys that run them.
package action

// Kind is the widget variant an action is shown as.
type Kind int

const (
	Push Kind = iota
	Check
	Separator
)

func (k Kind) String() string {
	switch k {
	case Check:
		return "check"
	case Separator:
		return "separator"
	default:
		return "push"
	}
}

// ToolBarKey names toolbar items whose state the console tracks.
type ToolBarKey int

const (
	NoKey ToolBarKey = iota
	AutoScrollButton
	PrependTextButton
	AwayButton
	TellSounds
	PendingChallenges
)

// ID identifies an action independently of its display name.
type ID string

const (
	IDSeparator     ID = "separator"
	IDAutoScroll    ID = "auto-scroll"
	IDPrepend       ID = "prepend"
	IDTellSounds    ID = "tell-sounds"
	IDTellsMissed   ID = "tells-missed"
	IDPendingOffers ID = "pending-offers"
	IDSeek          ID = "seek"
	IDClear         ID = "clear"
	IDBughouseGames ID = "bughouse-games"
)

// Widget is the toolbar configuration for an action.
type Widget struct {
	Kind     Kind
	Key      ToolBarKey
	Selected bool // initial state of check items
	Enabled  bool
	FicsOnly bool
	Tooltip  string
}

var widgets = map[ID]Widget{
	IDSeparator:     {Kind: Separator, Enabled: true},
	IDAutoScroll:    {Kind: Check, Key: AutoScrollButton, Selected: true, Enabled: true, Tooltip: "Scroll to new text as it arrives"},
	IDPrepend:       {Kind: Check, Key: PrependTextButton, Selected: true, Enabled: true, Tooltip: "Prefix outgoing text with the console prompt"},
	IDTellSounds:    {Kind: Check, Key: TellSounds, Selected: true, Enabled: true, Tooltip: "Play a sound on tells"},
	IDTellsMissed:   {Kind: Push, Key: AwayButton, Enabled: false},
	IDPendingOffers: {Kind: Push, Key: PendingChallenges, Enabled: true},
	IDSeek:          {Kind: Push, Enabled: true, FicsOnly: true},
}

// WidgetFor returns the widget for id. Unknown ids are enabled push buttons.
func WidgetFor(id ID) Widget {
	if w, ok := widgets[id]; ok {
		return w
	}
	return Widget{Kind: Push, Enabled: true}
}

// Source is the console an action runs against.
type Source interface {
	IsToolItemSelected(key ToolBarKey) bool
	SetToolItemSelected(key ToolBarKey, selected bool)
	Clear()
	Send(command string)
	ShowPage(name string)
}

// Action is a named operation on a console.
type Action struct {
	ID          ID
	Name        string
	Description string
	Icon        string // shown before Name on the toolbar when set
	Run         func(src Source)
}

// Widget returns the toolbar configuration for a.
func (a *Action) Widget() Widget {
	return WidgetFor(a.ID)
}

// Toggle returns a Run func flipping the check item key.
func Toggle(key ToolBarKey) func(Source) {
	return func(src Source) {
		src.SetToolItemSelected(key, !src.IsToolItemSelected(key))
	}
}

// SendCommand returns a Run func sending command to the server.
func SendCommand(command string) func(Source) {
	return func(src Source) {
		src.Send(command)
	}
}

// Defaults returns the standard console actions in toolbar order.
func Defaults() []*Action {
	return []*Action{
		{ID: IDAutoScroll, Name: "Auto Scroll", Description: "Toggle auto scroll", Run: Toggle(AutoScrollButton)},
		{ID: IDPrepend, Name: "Prepend", Description: "Toggle prompt prefix", Run: Toggle(PrependTextButton)},
		{ID: IDTellSounds, Name: "Tell Sounds", Description: "Toggle tell sounds", Run: Toggle(TellSounds)},
		{ID: IDSeparator, Name: "-"},
		{ID: IDClear, Name: "Clear", Description: "Clear the console", Run: func(src Source) { src.Clear() }},
		{ID: IDPendingOffers, Name: "Pending Offers", Description: "List pending offers", Run: SendCommand("pending")},
		{ID: IDSeek, Name: "Seek", Description: "Seek a 5 0 game", Run: SendCommand("seek 5 0")},
		{ID: IDSeparator, Name: "--"},
		{ID: IDBughouseGames, Name: "Bughouse Games", Description: "Show bughouse games in progress", Run: func(src Source) { src.ShowPage("bughouse") }},
	}
}

// Item is one entry of a toolbar.
type Item struct {
	Action *Action
	Widget Widget
}

// Toolbar lays out actions as toolbar items, dropping FICS-only actions
// when the server is not FICS.
func Toolbar(actions []*Action, fics bool) []Item {
	items := make([]Item, 0, len(actions))
	for _, a := range actions {
		w := a.Widget()
		if w.FicsOnly && !fics {
			continue
		}
		items = append(items, Item{Action: a, Widget: w})
	}
	return items
}
