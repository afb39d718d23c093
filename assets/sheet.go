package assets

import (
	"image"
	"image/draw"

	"github.com/they4kman/minefield/game"
)

// Sheet is every texture packed side by side into one image, so a frontend
// can draw a whole frame from a single picture.
type Sheet struct {
	Image  *image.RGBA
	Frames map[game.Symbol]image.Rectangle
}

// BuildSheet packs the images left to right in the order of game.Symbols.
// Frames use image coordinates, with y growing downwards.
func BuildSheet(images map[game.Symbol]image.Image) Sheet {
	width, height := 0, 0
	for _, symbol := range game.Symbols {
		img, ok := images[symbol]
		if !ok {
			continue
		}
		size := img.Bounds().Size()
		width += size.X
		if size.Y > height {
			height = size.Y
		}
	}

	sheet := Sheet{
		Image:  image.NewRGBA(image.Rect(0, 0, width, height)),
		Frames: make(map[game.Symbol]image.Rectangle, len(images)),
	}

	x := 0
	for _, symbol := range game.Symbols {
		img, ok := images[symbol]
		if !ok {
			continue
		}
		bounds := img.Bounds()
		frame := image.Rectangle{Min: image.Pt(x, 0), Max: image.Pt(x+bounds.Dx(), bounds.Dy())}
		draw.Draw(sheet.Image, frame, img, bounds.Min, draw.Src)
		sheet.Frames[symbol] = frame
		x += bounds.Dx()
	}

	return sheet
}
