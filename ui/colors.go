package ui

import (
	"github.com/gdamore/tcell/v2"

	"icsterm/config"
)

// Palette holds the colors shared by the console widgets.
var Palette = struct {
	Text        tcell.Color
	Link        tcell.Color
	Tell        tcell.Color
	Internal    tcell.Color
	Outbound    tcell.Color
	ToolbarBG   tcell.Color
	Border      tcell.Color // separators and brackets
	Hint        tcell.Color // disabled and unfocused items
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
	Alert       tcell.Color
}{
	Text:        tcell.PaletteColor(252),
	Link:        tcell.PaletteColor(75),
	Tell:        tcell.PaletteColor(214),
	Internal:    tcell.PaletteColor(245),
	Outbound:    tcell.PaletteColor(109),
	ToolbarBG:   tcell.PaletteColor(60),
	Border:      tcell.PaletteColor(60),  // Muted blue-gray
	Hint:        tcell.PaletteColor(245), // Dim gray
	ButtonFocus: tcell.PaletteColor(109), // Brighter blue
	ButtonText:  tcell.PaletteColor(255), // White
	Alert:       tcell.PaletteColor(203),
}

// SetPalette applies the configured colors.
func SetPalette(c *config.Config) {
	Palette.Text = tcell.PaletteColor(c.Colors.Text)
	Palette.Link = tcell.PaletteColor(c.Colors.Link)
	Palette.Tell = tcell.PaletteColor(c.Colors.Tell)
	Palette.Internal = tcell.PaletteColor(c.Colors.Internal)
	Palette.Outbound = tcell.PaletteColor(c.Colors.Outbound)
	Palette.ToolbarBG = tcell.PaletteColor(c.Colors.Toolbar)
}
