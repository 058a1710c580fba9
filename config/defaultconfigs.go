package config

import "github.com/adrg/xdg"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		Colors: ThemeColors{
			Background: "#dcb35c",
			Line:       "#000000",
			Black:      "#000000",
			White:      "#ffffff",
			Outline:    "#000000",
			Active:     "#008000",
		},
		HoverAlpha: 0.5,
		StoneGap:   2,
	}

	exportDir := xdg.UserDirs.Pictures
	if exportDir == "" {
		exportDir = "."
	}

	DefaultConfig = Config{
		Theme:  DefaultTheme,
		Render: RenderConfig{FPS: 20},
		Export: ExportConfig{
			Dir:      exportDir,
			Filename: "canvas-image.png",
			SGF:      false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
