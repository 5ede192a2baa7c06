package bughouse

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Snapshot is a saved set of bughouse listings:
//
//	[[game]]
//	game1_id = "12"
//	game2_id = "34"
//	time_control = "2 0"
//	rated = true
//	game1_white = { name = "aramis", rating = "1822" }
//	...
//
//	[[partnership]]
//	player1 = { name = "athos", rating = "1700" }
//	player2 = { name = "porthos", rating = "1650" }
//
//	[[bugger]]
//	name = "dartagnan"
//	rating = "1500"
//	status = "^"
type Snapshot struct {
	Games        []Game        `toml:"game"`
	Partnerships []Partnership `toml:"partnership"`
	Buggers      []Bugger      `toml:"bugger"`
}

func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := toml.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

func ReadSnapshotFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}

// LoadSnapshot returns the games in progress stored at path.
func LoadSnapshot(path string) ([]Game, error) {
	snap, err := ReadSnapshotFile(path)
	if err != nil {
		return nil, err
	}
	return snap.Games, nil
}

// SnapshotFetcher re-reads the snapshot at path on every fetch, so edits to
// the file show up on the next refresh.
func SnapshotFetcher(path string) Fetcher {
	return func() ([]Game, error) {
		return LoadSnapshot(path)
	}
}
