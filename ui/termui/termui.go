package termui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/minefield/game"
)

type Options struct {
	// Creates the director for each new game; nil means manual play
	NewDirector      func() game.Director
	DirectorInterval time.Duration

	Log logrus.FieldLogger
}

// ui is the state of the terminal frontend between events.
type ui struct {
	config  game.GameConfig
	options Options
	log     logrus.FieldLogger

	session  *game.Session
	director game.Director
	paused   bool

	layout  layout
	buttons tcell.ButtonMask
}

func newUI(config game.GameConfig, options Options) (*ui, error) {
	session, err := game.NewSession(config)
	if err != nil {
		return nil, err
	}

	log := options.Log
	if log == nil {
		log = game.Log
	}

	u := &ui{
		config:  config,
		options: options,
		log:     log,
		session: session,
		layout:  newLayout(0, config.Width, config.Height),
	}
	u.newDirector()
	return u, nil
}

func (u *ui) newDirector() {
	u.director = nil
	if u.options.NewDirector != nil {
		u.director = u.options.NewDirector()
		u.director.Init(u.session)
	}
}

func (u *ui) resize(width int) {
	u.layout = newLayout(width, u.config.Width, u.config.Height)
}

// reset starts a new game seeded from the finished one.
func (u *ui) reset() {
	u.config.Seed = u.session.NextSeed()
	session, err := game.NewSession(u.config)
	if err != nil {
		u.log.WithError(err).Error("could not start a new game")
		return
	}
	u.session = session
	u.paused = false
	u.newDirector()
	u.log.WithField("seed", u.config.Seed).Info("new game")
}

// key handles a key press. It returns false when the player quits.
func (u *ui) key(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		if u.session.Over() {
			u.reset()
		}
	case tcell.KeyRight:
		if u.director != nil && u.paused {
			u.session.Step(u.director)
		}
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case ' ':
			if u.director != nil {
				u.paused = !u.paused
			}
		}
	}
	return true
}

// mouse handles a mouse report. Terminals report the buttons held down, so a
// click is a button that was up in the previous report.
func (u *ui) mouse(x, y int, buttons tcell.ButtonMask) {
	pressed := buttons &^ u.buttons
	u.buttons = buttons

	event := game.InputEvent{X: float64(x), Y: float64(y)}
	switch {
	case pressed&tcell.ButtonPrimary != 0:
		event.Button = game.LeftButton
	case pressed&tcell.ButtonSecondary != 0:
		event.Button = game.RightButton
	default:
		return
	}
	u.session.HandleInput(u.layout, event)
}

func (u *ui) tick() {
	if u.director != nil && !u.paused {
		u.session.Step(u.director)
	}
}

// handle dispatches one terminal event. It returns false when the player
// quits.
func (u *ui) handle(screen tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		u.mouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		width, _ := screen.Size()
		u.resize(width)
		screen.Sync()
	}
	return true
}

func (u *ui) draw(screen tcell.Screen) {
	screen.Clear()
	render(screen, u.layout, u.session, u.director != nil && u.paused)
	screen.Show()
}

// Run plays games on the terminal until the player quits. The screen is
// initialised here and finalised on return.
func Run(screen tcell.Screen, config game.GameConfig, options Options) error {
	u, err := newUI(config, options)
	if err != nil {
		return err
	}

	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	width, _ := screen.Size()
	u.resize(width)

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	interval := options.DirectorInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	u.draw(screen)
	for {
		select {
		case ev := <-events:
			if !u.handle(screen, ev) {
				return nil
			}
		case <-ticker.C:
			u.tick()
		}
		u.draw(screen)
	}
}
