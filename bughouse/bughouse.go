// Package bughouse tracks bughouse games in progress, partnerships and
// unpartnered players.
package bughouse

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"

	"icsterm/poll"
)

var log = commonlog.GetLogger("icsterm.bughouse")

type Player struct {
	Name   string `toml:"name"`
	Rating string `toml:"rating"`
}

// Label is the "<rating> <name>" form used in game listings.
func (p Player) Label() string {
	return p.Rating + " " + p.Name
}

// Game is a pair of linked boards.
type Game struct {
	Game1ID     string `toml:"game1_id"`
	Game2ID     string `toml:"game2_id"`
	TimeControl string `toml:"time_control"`
	Rated       bool   `toml:"rated"`
	Game1White  Player `toml:"game1_white"`
	Game1Black  Player `toml:"game1_black"`
	Game2White  Player `toml:"game2_white"`
	Game2Black  Player `toml:"game2_black"`
}

type Partnership struct {
	Player1 Player `toml:"player1"`
	Player2 Player `toml:"player2"`
}

// Bugger is a player looking for a partner.
type Bugger struct {
	Name   string `toml:"name"`
	Rating string `toml:"rating"`
	Status string `toml:"status"`
}

// Fetcher returns the current games in progress.
type Fetcher func() ([]Game, error)

// Service holds the latest bughouse listings and notifies subscribers when
// they change.
type Service struct {
	fetch Fetcher

	mu           sync.Mutex
	games        []Game
	partnerships []Partnership
	buggers      []Bugger

	gamesPub        poll.Publisher[[]Game]
	partnershipsPub poll.Publisher[[]Partnership]
	buggersPub      poll.Publisher[[]Bugger]
}

// NewService creates a service refreshing games with fetch. fetch may be nil
// when games are only pushed in with SetGamesInProgress.
func NewService(fetch Fetcher) *Service {
	return &Service{fetch: fetch}
}

// RefreshGamesInProgress fetches the games in progress and publishes them.
func (s *Service) RefreshGamesInProgress() error {
	if s.fetch == nil {
		return nil
	}
	games, err := s.fetch()
	if err != nil {
		log.Warningf("Could not refresh games in progress: %v", err)
		return fmt.Errorf("refresh games in progress: %w", err)
	}
	log.Debugf("Fetched %d games in progress", len(games))
	s.SetGamesInProgress(games)
	return nil
}

func (s *Service) SetGamesInProgress(games []Game) {
	s.mu.Lock()
	s.games = append([]Game(nil), games...)
	s.mu.Unlock()
	s.gamesPub.Publish(s.GamesInProgress())
}

// GamesInProgress returns a copy of the latest games.
func (s *Service) GamesInProgress() []Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Game(nil), s.games...)
}

func (s *Service) OnGamesInProgress(fn func([]Game)) func() {
	return s.gamesPub.Subscribe(fn)
}

func (s *Service) SetPartnerships(partnerships []Partnership) {
	s.mu.Lock()
	s.partnerships = append([]Partnership(nil), partnerships...)
	s.mu.Unlock()
	s.partnershipsPub.Publish(s.Partnerships())
}

func (s *Service) Partnerships() []Partnership {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Partnership(nil), s.partnerships...)
}

func (s *Service) OnPartnerships(fn func([]Partnership)) func() {
	return s.partnershipsPub.Subscribe(fn)
}

func (s *Service) SetUnpartneredBuggers(buggers []Bugger) {
	s.mu.Lock()
	s.buggers = append([]Bugger(nil), buggers...)
	s.mu.Unlock()
	s.buggersPub.Publish(s.UnpartneredBuggers())
}

func (s *Service) UnpartneredBuggers() []Bugger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Bugger(nil), s.buggers...)
}

func (s *Service) OnUnpartneredBuggers(fn func([]Bugger)) func() {
	return s.buggersPub.Subscribe(fn)
}

// Apply publishes every listing held in snap.
func (s *Service) Apply(snap Snapshot) {
	s.SetGamesInProgress(snap.Games)
	s.SetPartnerships(snap.Partnerships)
	s.SetUnpartneredBuggers(snap.Buggers)
}
