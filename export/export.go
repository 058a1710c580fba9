// Package export saves the rendered surface as a PNG file.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"boardsketch/config"
	"boardsketch/sgf"
	"boardsketch/types"
)

// PNGSource encodes its current pixels as PNG. *gg.Context implements it.
type PNGSource interface {
	EncodePNG(w io.Writer) error
}

// Position is the board state written next to the image.
type Position interface {
	Board() *types.Board
	Color() types.Stone
	Zoom() types.Zoom
}

// Result lists the files written by one export.
type Result struct {
	Image string
	SGF   string
}

// Exporter writes exports to a fixed directory and file name.
type Exporter struct {
	Dir      string
	Filename string
	SGF      bool
	log      *logrus.Entry
}

func New(cfg config.ExportConfig, log *logrus.Entry) *Exporter {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Exporter{
		Dir:      cfg.Dir,
		Filename: cfg.Filename,
		SGF:      cfg.SGF,
		log:      log.WithField("component", "export"),
	}
}

// Export writes the full surface to Dir/Filename, replacing a previous
// export. When SGF is enabled the position is written next to it with the
// same base name.
func (e *Exporter) Export(src PNGSource, pos Position) (Result, error) {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return Result{}, fmt.Errorf("create export dir: %w", err)
	}

	var res Result
	res.Image = filepath.Join(e.Dir, e.Filename)
	if err := writeFile(res.Image, src.EncodePNG); err != nil {
		return Result{}, fmt.Errorf("export image: %w", err)
	}
	log := e.log.WithField("path", res.Image)

	if e.SGF && pos != nil {
		res.SGF = strings.TrimSuffix(res.Image, filepath.Ext(res.Image)) + ".sgf"
		opts := sgf.Options{
			ToPlay:  pos.Color(),
			Comment: fmt.Sprintf("view: %s", pos.Zoom()),
		}
		err := writeFile(res.SGF, func(w io.Writer) error {
			return sgf.WritePosition(w, pos.Board(), opts)
		})
		if err != nil {
			return res, fmt.Errorf("export position: %w", err)
		}
		log = log.WithField("sgf", res.SGF)
	}

	log.Info("exported")
	return res, nil
}

// writeFile writes through a temporary file in the same directory and
// renames it over path, so a failed write leaves any previous file intact.
func writeFile(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
