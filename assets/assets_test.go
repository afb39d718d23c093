package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/they4kman/minefield/game"
)

func writePNG(t *testing.T, path string, width, height int, fill color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, fill)
		}
	}

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
}

func TestLoaderReadsTexture(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "mine.png"), 20, 20, colornames.Red)

	log, hook := test.NewNullLogger()
	loader := NewLoader(dir, log)

	img := loader.Load(game.Mine)
	require.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())
	r, g, b, _ := img.At(3, 3).RGBA()
	require.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
	require.Empty(t, hook.AllEntries())
}

func TestLoaderFallsBackToPlaceholder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flagged.png"), []byte("not a png"), 0644))

	log, hook := test.NewNullLogger()
	loader := NewLoader(dir, log)

	missing := loader.Load(game.Digit3)
	require.Equal(t, image.Rect(0, 0, CellSize, CellSize), missing.Bounds())

	broken := loader.Load(game.Flagged)
	require.Equal(t, image.Rect(0, 0, CellSize, CellSize), broken.Bounds())

	banner := loader.Load(game.BannerLost)
	require.Equal(t, image.Rect(0, 0, BannerWidth, BannerHeight), banner.Bounds())

	require.Len(t, hook.AllEntries(), 3)
	for _, entry := range hook.AllEntries() {
		require.Equal(t, logrus.WarnLevel, entry.Level)
		require.Contains(t, entry.Data, "path")
	}
	require.Equal(t, "flagged", hook.AllEntries()[1].Data["symbol"])
}

func TestLoadAllCoversEverySymbol(t *testing.T) {
	log, _ := test.NewNullLogger()
	images := LoadAll(NewLoader(t.TempDir(), log))
	require.Len(t, images, len(game.Symbols))
	for _, symbol := range game.Symbols {
		require.NotNil(t, images[symbol], symbol.String())
		require.NotEmpty(t, Filename(symbol))
	}
}

func TestBuildSheet(t *testing.T) {
	images := map[game.Symbol]image.Image{
		game.Closed:    Placeholder(game.Closed),
		game.Mine:      Placeholder(game.Mine),
		game.BannerWon: Placeholder(game.BannerWon),
	}

	sheet := BuildSheet(images)
	require.Equal(t, image.Rect(0, 0, 2*CellSize+BannerWidth, BannerHeight), sheet.Image.Bounds())
	require.Equal(t, image.Rect(0, 0, CellSize, CellSize), sheet.Frames[game.Closed])
	require.Equal(t, image.Rect(CellSize, 0, 2*CellSize, CellSize), sheet.Frames[game.Mine])
	require.Equal(t, image.Rect(2*CellSize, 0, 2*CellSize+BannerWidth, BannerHeight), sheet.Frames[game.BannerWon])
	require.NotContains(t, sheet.Frames, game.Flagged)

	require.Equal(t, colornames.Black, sheet.Image.RGBAAt(CellSize+1, 1))
	require.Equal(t, colornames.Silver, sheet.Image.RGBAAt(1, 1))
}
