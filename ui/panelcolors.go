package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
)

// PanelColors defines the Nord-inspired palette of the controls and status bar.
var PanelColors = struct {
	Border     tcell.Color // Muted blue-gray for borders
	Title      tcell.Color // Bright white for titles
	Label      tcell.Color // Light gray for labels
	Hint       tcell.Color // Dim gray for hints
	Error      tcell.Color // Export failures
	ButtonBG   tcell.Color // Inactive button background
	ButtonText tcell.Color // Active button label
}{
	Border:     tcell.PaletteColor(60),
	Title:      tcell.PaletteColor(255),
	Label:      tcell.PaletteColor(250),
	Hint:       tcell.PaletteColor(245),
	Error:      tcell.PaletteColor(174),
	ButtonBG:   tcell.PaletteColor(238),
	ButtonText: tcell.ColorWhite,
}

// HexColor converts a "#rrggbb" style theme color for use in the terminal.
func HexColor(s string) tcell.Color {
	c := gg.Hex(s)
	return tcell.NewRGBColor(int32(c.R*255+0.5), int32(c.G*255+0.5), int32(c.B*255+0.5))
}
