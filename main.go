// icsterm is a terminal console for chess server chat and bughouse games.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"icsterm/action"
	"icsterm/bughouse"
	"icsterm/chatlog"
	"icsterm/config"
	"icsterm/sound"
	"icsterm/types"
	"icsterm/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagLog     = flag.String("log", "", "Chat log to replay into the console")
	flagGames   = flag.String("games", "", "Bughouse snapshot (TOML) listing games in progress")
	flagFics    = flag.Bool("fics", false, "Treat the server as FICS regardless of the config")
	flagVerbose = flag.Int("verbose", -1, "Log verbosity, overrides the config")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

var log = commonlog.GetLogger("icsterm")

var app *tview.Application
var rootPage *tview.Pages
var cfg *config.Config
var console *ui.ChatConsoleController
var bugGames *ui.BugGamesView

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("icsterm %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *flagFics {
		cfg.Server.Kind = "fics"
	}
	if *flagVerbose >= 0 {
		cfg.Log.Verbosity = *flagVerbose
	}

	logPath, err := cfg.LogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not locate log file: %s\n", err)
		os.Exit(1)
	}
	commonlog.Configure(cfg.Log.Verbosity, &logPath)
	log.Infof("icsterm %s starting", Version)

	ui.SetPalette(cfg)
	history := openHistory()

	registry := action.NewRegistry(action.Defaults()...)
	for _, kb := range cfg.Keys {
		if err := registry.Bind(kb.Key, kb.Action); err != nil {
			log.Warningf("Ignoring key binding: %s", err)
		}
	}

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ♞ icsterm ")

	console = ui.NewChatConsoleController(app, cfg, registry, sound.Select(cfg.Sound.ProcessName, runtime.GOOS))
	console.SetShowPageFunc(showPage)
	console.SetSendFunc(func(command string) {
		log.Debugf("Sending: %s", command)
	})
	if history != nil {
		console.SetRecordFunc(func(ev types.ChatEvent) {
			if ev.Type != types.Outbound && ev.Type != types.Internal {
				return
			}
			if err := history.Append(ev); err != nil {
				log.Warningf("Could not record chat: %s", err)
			}
		})
		defer history.Close()
	}

	service := newBughouseService()
	bugGames = ui.NewBugGamesView(app, cfg, service, func(gameID string) {
		console.Send("observe " + gameID)
		showPage("console")
	})
	defer bugGames.Close()
	bugGames.Table().SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			showPage("console")
		}
	})

	rootPage.AddPage("console", console.Primitive(), true, true)
	rootPage.AddPage("bughouse", bugGames.Primitive(), true, false)

	console.OnChatEvent(types.NewInternalEvent("Click a word to tell, a quote to copy it or a link to open it."))
	if *flagLog != "" {
		console.ReplayLog(*flagLog)
	}

	if err := app.SetRoot(rootPage, true).SetFocus(console.Input()).Run(); err != nil {
		panic(err)
	}
}

// showPage switches pages, polling bughouse games only while they are shown.
func showPage(name string) {
	switch name {
	case "bughouse":
		rootPage.SwitchToPage("bughouse")
		bugGames.OnActivate()
		app.SetFocus(bugGames.Table())
	default:
		bugGames.OnPassivate()
		rootPage.SwitchToPage("console")
		app.SetFocus(console.Input())
	}
}

// openHistory opens the chat history file, or returns nil when it cannot.
func openHistory() *chatlog.Writer {
	path, err := config.ChatLogFile()
	if err != nil {
		log.Warningf("Could not locate chat log: %s", err)
		return nil
	}
	w, err := chatlog.OpenWriter(path)
	if err != nil {
		log.Warningf("Could not open chat log: %s", err)
		return nil
	}
	return w
}

// newBughouseService serves games from the -games snapshot when given.
func newBughouseService() *bughouse.Service {
	if *flagGames == "" {
		return bughouse.NewService(nil)
	}
	service := bughouse.NewService(bughouse.SnapshotFetcher(*flagGames))
	snap, err := bughouse.ReadSnapshotFile(*flagGames)
	if err != nil {
		log.Warningf("Could not read bughouse snapshot: %s", err)
		return service
	}
	service.Apply(snap)
	return service
}
