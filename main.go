// boardsketch is a terminal sketchpad for 19x19 Go positions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"boardsketch/config"
	"boardsketch/export"
	"boardsketch/geometry"
	"boardsketch/logging"
	"boardsketch/render"
	"boardsketch/sketch"
	"boardsketch/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagFPS        = flag.Int("fps", 0, "Redraw rate in frames per second (1-120)")
	flagExportDir  = flag.String("exportdir", "", "Directory exports are written to")
	flagSGF        = flag.Bool("sgf", false, "Also export the position as SGF")
	flagDebug      = flag.Bool("debug", false, "Log at debug level")
	flagInitConfig = flag.Bool("init-config", false, "Write the effective configuration to the user config file and exit")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("boardsketch %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.InitConfig()
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if *flagInitConfig {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println("Configuration written")
		return nil
	}

	log, closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	entry := logrus.NewEntry(log)
	entry.WithField("version", Version).Info("starting")

	session := sketch.New(entry)
	renderer := render.NewRenderer(render.ThemeFromConfig(cfg.Theme))
	surface := render.NewSurface(geometry.FullBoardSize)
	exporter := export.New(cfg.Export, entry)

	app := tview.NewApplication()
	canvas := ui.NewBoardCanvas(session, renderer, surface, entry)
	pad := ui.NewSketchpad(session, canvas, exporter, ui.HexColor(cfg.Theme.Colors.Active), app.Stop, entry)

	app.SetInputCapture(pad.HandleKey)
	app.SetMouseCapture(pad.HandleMouse)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ui.RunFrameLoop(ctx, app, cfg.Render.FPS, pad.Refresh)

	if err := app.SetRoot(pad.Root(), true).EnableMouse(true).SetFocus(canvas).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	entry.Info("exiting")
	return nil
}

// applyFlags overrides the configuration with flags given on the command line.
func applyFlags(cfg *config.Config) {
	if *flagFPS > 0 {
		cfg.Render.FPS = *flagFPS
	}
	if *flagExportDir != "" {
		cfg.Export.Dir = *flagExportDir
	}
	if *flagSGF {
		cfg.Export.SGF = true
	}
	if *flagDebug {
		cfg.Log.Level = "debug"
	}
}
