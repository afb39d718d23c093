package assets

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	_ "image/png"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"github.com/they4kman/minefield/game"
)

// Provider returns the image drawn for a symbol.
type Provider interface {
	Load(symbol game.Symbol) image.Image
}

var texnames = map[game.Symbol]string{
	game.BannerWon:  "game_won.png",
	game.BannerLost: "game_over.png",
	game.Closed:     "closed.png",
	game.Flagged:    "flagged.png",
	game.Exposed0:   "exposed.png",
	game.Mine:       "mine.png",
	game.Digit1:     "one.png",
	game.Digit2:     "two.png",
	game.Digit3:     "three.png",
	game.Digit4:     "four.png",
	game.Digit5:     "five.png",
	game.Digit6:     "six.png",
	game.Digit7:     "seven.png",
	game.Digit8:     "eight.png",
}

// Size of the placeholders used when a texture cannot be loaded
const (
	CellSize     = 16
	BannerWidth  = 298
	BannerHeight = 72
)

var placeholderColors = map[game.Symbol]color.RGBA{
	game.Closed:     colornames.Silver,
	game.Flagged:    colornames.Orange,
	game.Exposed0:   colornames.Gainsboro,
	game.Mine:       colornames.Black,
	game.Digit1:     colornames.Blue,
	game.Digit2:     colornames.Green,
	game.Digit3:     colornames.Red,
	game.Digit4:     colornames.Navy,
	game.Digit5:     colornames.Maroon,
	game.Digit6:     colornames.Teal,
	game.Digit7:     colornames.Purple,
	game.Digit8:     colornames.Gray,
	game.BannerWon:  colornames.Limegreen,
	game.BannerLost: colornames.Crimson,
}

// Loader reads one PNG per symbol from Dir. A texture that is missing or
// cannot be decoded is logged and replaced with a flat placeholder, so a game
// can always be drawn.
type Loader struct {
	Dir string
	Log logrus.FieldLogger
}

func NewLoader(dir string, log logrus.FieldLogger) *Loader {
	return &Loader{Dir: dir, Log: log}
}

// Filename returns the texture file name of a symbol.
func Filename(symbol game.Symbol) string {
	return texnames[symbol]
}

func (loader *Loader) Load(symbol game.Symbol) image.Image {
	name, ok := texnames[symbol]
	if !ok {
		loader.log().WithField("symbol", symbol.String()).Warn("no texture for symbol")
		return Placeholder(symbol)
	}

	path := filepath.Join(loader.Dir, name)
	img, err := loadPicture(path)
	if err != nil {
		loader.log().WithFields(logrus.Fields{
			"path":   path,
			"symbol": symbol.String(),
		}).WithError(err).Warn("failed to load texture, using placeholder")
		return Placeholder(symbol)
	}
	return img
}

// LoadAll loads the texture of every drawable symbol.
func LoadAll(provider Provider) map[game.Symbol]image.Image {
	images := make(map[game.Symbol]image.Image, len(game.Symbols))
	for _, symbol := range game.Symbols {
		images[symbol] = provider.Load(symbol)
	}
	return images
}

func (loader *Loader) log() logrus.FieldLogger {
	if loader.Log == nil {
		return logrus.StandardLogger()
	}
	return loader.Log
}

func loadPicture(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return img, nil
}

// Placeholder returns a flat image in the symbol's colour, sized like the
// real texture.
func Placeholder(symbol game.Symbol) image.Image {
	width, height := CellSize, CellSize
	if symbol == game.BannerWon || symbol == game.BannerLost {
		width, height = BannerWidth, BannerHeight
	}

	fill, ok := placeholderColors[symbol]
	if !ok {
		fill = colornames.Magenta
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: fill}, image.Point{}, draw.Src)
	return img
}
