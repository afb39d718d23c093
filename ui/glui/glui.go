package glui

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/minefield/assets"
	"github.com/they4kman/minefield/game"
)

const (
	headerHeight   = 50
	minWindowWidth = 200
)

type Options struct {
	// Side of the board area, in pixels
	BoardSize float64
	AssetsDir string

	// Creates the director for each new game; nil means manual play
	NewDirector      func() game.Director
	DirectorInterval time.Duration

	Log logrus.FieldLogger
}

// spriteSink draws cells and the banner into a batch. Bounds are projected
// through the viewport, whose y axis points down from the top of the board.
type spriteSink struct {
	batch    *pixel.Batch
	sprites  map[game.Symbol]*pixel.Sprite
	viewport game.Viewport
}

func (sink *spriteSink) DrawCell(gx, gy int, symbol game.Symbol, bounds game.Rect) {
	sink.draw(symbol, bounds)
}

func (sink *spriteSink) DrawOverlay(symbol game.Symbol, bounds game.Rect) {
	sink.draw(symbol, bounds)
}

func (sink *spriteSink) draw(symbol game.Symbol, bounds game.Rect) {
	sprite, ok := sink.sprites[symbol]
	if !ok {
		return
	}

	rect := sink.viewport.Project(bounds)
	frame := sprite.Frame()
	center := pixel.V(rect.X+rect.W/2, sink.viewport.Height-(rect.Y+rect.H/2))
	matrix := pixel.IM.
		ScaledXY(pixel.ZV, pixel.V(rect.W/frame.W(), rect.H/frame.H())).
		Moved(center)
	sprite.Draw(sink.batch, matrix)
}

// loadSpritesheet packs every texture into one picture and cuts a sprite per
// symbol out of it.
func loadSpritesheet(provider assets.Provider) (pixel.Picture, map[game.Symbol]*pixel.Sprite) {
	sheet := assets.BuildSheet(assets.LoadAll(provider))
	spritesheet := pixel.PictureDataFromImage(sheet.Image)

	// pixel pictures have y pointing up
	height := float64(sheet.Image.Bounds().Dy())
	sprites := make(map[game.Symbol]*pixel.Sprite, len(sheet.Frames))
	for symbol, frame := range sheet.Frames {
		rect := pixel.R(
			float64(frame.Min.X), height-float64(frame.Max.Y),
			float64(frame.Max.X), height-float64(frame.Min.Y),
		)
		sprites[symbol] = pixel.NewSprite(spritesheet, rect)
	}
	return spritesheet, sprites
}

// Run opens a window and plays games until it is closed. It must be called
// from the function passed to pixelgl.Run.
func Run(config game.GameConfig, options Options) error {
	log := options.Log
	if log == nil {
		log = game.Log
	}

	session, err := game.NewSession(config)
	if err != nil {
		return err
	}

	boardSize := options.BoardSize
	if boardSize <= 0 {
		boardSize = float64(assets.CellSize * max(config.Width, config.Height))
	}

	cfg := pixelgl.WindowConfig{
		Title: "minefield",
		Bounds: pixel.R(
			0, 0,
			math.Max(boardSize, minWindowWidth),
			boardSize+headerHeight,
		),
		VSync: true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	spritesheet, sprites := loadSpritesheet(assets.NewLoader(options.AssetsDir, log))
	batch := pixel.NewBatch(&pixel.TrianglesData{}, spritesheet)

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	topLeft := win.Bounds().Vertices()[1]
	scoreText := text.New(topLeft.Add(pixel.V(20, -30)), basicAtlas)

	var director game.Director
	paused := false
	newDirector := func() {
		director = nil
		if options.NewDirector != nil {
			director = options.NewDirector()
			director.Init(session)
		}
	}
	newDirector()

	resetSession := func() {
		config.Seed = session.NextSeed()
		next, err := game.NewSession(config)
		if err != nil {
			log.WithError(err).Error("could not start a new game")
			return
		}
		session = next
		newDirector()
		log.WithField("seed", config.Seed).Info("new game")
	}

	interval := options.DirectorInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	directorTick := time.NewTicker(interval)
	defer directorTick.Stop()

	var (
		frames = 0
		second = time.NewTicker(time.Second)
	)
	defer second.Stop()

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		frames++
		select {
		case <-second.C:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		bounds := win.Bounds()
		viewport := game.Viewport{
			Width:  bounds.W(),
			Height: bounds.H() - headerHeight,
			Cols:   config.Width,
			Rows:   config.Height,
		}

		scoreText.Clear()
		scoreText.Color = colornames.Black
		fmt.Fprintf(scoreText, "%03d", session.MinesLeft())
		switch session.Status() {
		case game.Won:
			scoreText.Color = colornames.Green
			fmt.Fprint(scoreText, "   WIN!")
		case game.Lost:
			scoreText.Color = colornames.Red
			fmt.Fprint(scoreText, "   LOSE :(")
		default:
			if director != nil && paused {
				fmt.Fprint(scoreText, "   PAUSED")
			}
		}
		scoreText.Draw(win, pixel.IM)

		batch.Clear()
		session.Draw(&spriteSink{batch: batch, sprites: sprites, viewport: viewport})
		batch.Draw(win)

		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
			continue
		}

		if session.Over() {
			// Start a new game with Enter
			if win.JustPressed(pixelgl.KeyEnter) {
				resetSession()
			}
			continue
		}

		if director != nil {
			// Pause with Space
			if win.JustPressed(pixelgl.KeySpace) {
				paused = !paused
			}

			// Perform single step while paused with Right Arrow
			if paused && (win.JustPressed(pixelgl.KeyRight) || win.Repeated(pixelgl.KeyRight)) {
				session.Step(director)
			}

			select {
			case <-directorTick.C:
				if !paused {
					session.Step(director)
				}
			default:
			}
		}

		if !win.MouseInsideWindow() {
			continue
		}
		mouse := win.MousePosition()
		event := game.InputEvent{X: mouse.X, Y: viewport.Height - mouse.Y}
		if win.JustPressed(pixelgl.MouseButtonLeft) {
			event.Button = game.LeftButton
			session.HandleInput(viewport, event)
		} else if win.JustPressed(pixelgl.MouseButtonRight) {
			event.Button = game.RightButton
			session.HandleInput(viewport, event)
		}
	}

	return nil
}
