package export

import (
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardsketch/config"
	"boardsketch/render"
	"boardsketch/types"
)

type position struct {
	board *types.Board
	color types.Stone
	zoom  types.Zoom
}

func (p position) Board() *types.Board { return p.board }
func (p position) Color() types.Stone  { return p.color }
func (p position) Zoom() types.Zoom    { return p.zoom }

type brokenSource struct{}

func (brokenSource) EncodePNG(w io.Writer) error {
	w.Write([]byte("partial"))
	return errors.New("encoder failed")
}

func newTestExporter(t *testing.T, dir string, withSGF bool) *Exporter {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(config.ExportConfig{Dir: dir, Filename: "canvas-image.png", SGF: withSGF}, logrus.NewEntry(log))
}

func TestExportWritesFullSurfacePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	dc := render.NewSurface(800)
	dc.SetRGBA(1, 0, 0, 1)
	dc.DrawRectangle(0, 0, 10, 10)
	require.NoError(t, dc.Fill())

	res, err := newTestExporter(t, dir, false).Export(dc, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "canvas-image.png"), res.Image)
	assert.Empty(t, res.SGF)

	f, err := os.Open(res.Image)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
	r, _, _, _ := img.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestExportOverwrites(t *testing.T) {
	dir := t.TempDir()
	e := newTestExporter(t, dir, false)
	_, err := e.Export(render.NewSurface(200), nil)
	require.NoError(t, err)
	_, err = e.Export(render.NewSurface(300), nil)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "canvas-image.png"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files left behind")
}

func TestExportFailureKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	e := newTestExporter(t, dir, false)
	_, err := e.Export(render.NewSurface(200), nil)
	require.NoError(t, err)
	before, err := os.ReadFile(filepath.Join(dir, "canvas-image.png"))
	require.NoError(t, err)

	_, err = e.Export(brokenSource{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoder failed")

	after, err := os.ReadFile(filepath.Join(dir, "canvas-image.png"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
	entries, _ := os.ReadDir(dir)
	assert.Len(t, entries, 1)
}

func TestExportWithSGF(t *testing.T) {
	dir := t.TempDir()
	board := types.NewBoard()
	board.Set(types.BoardPos{X: 3, Y: 3}, types.Black)
	board.Set(types.BoardPos{X: 16, Y: 2}, types.White)

	res, err := newTestExporter(t, dir, true).Export(render.NewSurface(200), position{board: board, color: types.White, zoom: 1})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "canvas-image.sgf"), res.SGF)

	data, err := os.ReadFile(res.SGF)
	require.NoError(t, err)
	s := string(data)
	assert.True(t, strings.HasPrefix(s, "(;GM[1]FF[4]"))
	assert.Contains(t, s, "AB[dd]")
	assert.Contains(t, s, "AW[qc]")
	assert.Contains(t, s, "PL[W]")
	assert.Contains(t, s, "C[view: top-right]")
}

func TestExportBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	_, err := newTestExporter(t, file, false).Export(render.NewSurface(100), nil)
	assert.Error(t, err)
}
