package bughouse

import "strings"

// Columns is the number of cells in each row returned by Rows.
const Columns = 4

// Rows lays games out for a four column table: game id, time control, white
// and black. Each game takes two rows, one per board, and games are separated
// by a blank row.
func Rows(games []Game) [][]string {
	if len(games) == 0 {
		return nil
	}
	rows := make([][]string, 0, 3*len(games)-1)
	for i, g := range games {
		if i > 0 {
			rows = append(rows, make([]string, Columns))
		}
		rated := "u"
		if g.Rated {
			rated = "r"
		}
		rows = append(rows,
			[]string{g.Game1ID, g.TimeControl + " " + rated, g.Game1White.Label(), g.Game1Black.Label()},
			[]string{g.Game2ID, "", g.Game2White.Label(), g.Game2Black.Label()},
		)
	}
	return rows
}

// ObserveTarget returns the game id in the first cell of row, if any.
// Separator rows and rows out of range have none.
func ObserveTarget(rows [][]string, row int) (string, bool) {
	if row < 0 || row >= len(rows) || len(rows[row]) == 0 {
		return "", false
	}
	id := strings.TrimSpace(rows[row][0])
	return id, id != ""
}
