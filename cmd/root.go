package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/faiface/pixel/pixelgl"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/they4kman/minefield/director/constraint"
	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/ui/glui"
	"github.com/they4kman/minefield/ui/termui"
)

var (
	config     = NewConfig()
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "minefield",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `minefield is a Minesweeper game which supports human- or
computer-driven playing, in a window or in the terminal.

Run with no arguments to play manually
	minefield

Use the director flag to make the computer play for you
	minefield --director constraint

Play in the terminal
	minefield --frontend term
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := resolveConfig(cmd.Flags(), configFile, config)
		if err != nil {
			return err
		}
		return run(resolved)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveConfig layers the config file, if any, under the flags the user
// set explicitly.
func resolveConfig(flags *pflag.FlagSet, path string, fromFlags Config) (Config, error) {
	resolved := fromFlags
	if path != "" {
		fromFile, err := LoadConfig(path)
		if err != nil {
			return resolved, err
		}
		resolved = overrideChanged(flags, fromFile, fromFlags)
	}

	if err := resolved.Validate(); err != nil {
		return resolved, err
	}
	return resolved, nil
}

func overrideChanged(flags *pflag.FlagSet, base, fromFlags Config) Config {
	overrides := map[string]func(){
		"width":             func() { base.Width = fromFlags.Width },
		"height":            func() { base.Height = fromFlags.Height },
		"mines":             func() { base.NumMines = fromFlags.NumMines },
		"mode":              func() { base.Mode = fromFlags.Mode },
		"seed":              func() { base.Seed = fromFlags.Seed },
		"frontend":          func() { base.Frontend = fromFlags.Frontend },
		"assets":            func() { base.AssetsDir = fromFlags.AssetsDir },
		"window-size":       func() { base.WindowSize = fromFlags.WindowSize },
		"director":          func() { base.Director = fromFlags.Director },
		"director-interval": func() { base.DirectorInterval = fromFlags.DirectorInterval },
		"log-level":         func() { base.LogLevel = fromFlags.LogLevel },
		"log-file":          func() { base.LogFile = fromFlags.LogFile },
	}
	for name, override := range overrides {
		if flags.Changed(name) {
			override()
		}
	}
	return base
}

func newDirectorFactory(name string) func() game.Director {
	switch strings.ToLower(name) {
	case DirectorRandom:
		return func() game.Director { return &random.Director{} }
	case DirectorConstraint:
		return func() game.Director { return &constraint.Director{} }
	default:
		return nil
	}
}

// setupLogging points game.Log at the configured level and output. The
// terminal frontend owns the screen, so its logs go to the log file or
// nowhere.
func setupLogging(config Config) (func(), error) {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	game.Log.SetLevel(level)
	game.Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if config.LogFile != "" {
		file, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		game.Log.SetOutput(file)
		return func() { file.Close() }, nil
	}

	if config.Frontend == FrontendTerm {
		game.Log.SetOutput(io.Discard)
	}
	return func() {}, nil
}

func run(config Config) error {
	closeLog, err := setupLogging(config)
	if err != nil {
		return err
	}
	defer closeLog()

	game.Log.WithFields(logrus.Fields{
		"width":    config.Width,
		"height":   config.Height,
		"mines":    config.NumMines,
		"mode":     config.Mode.String(),
		"frontend": config.Frontend,
		"director": config.Director,
	}).Info("starting")

	newDirector := newDirectorFactory(config.Director)

	switch config.Frontend {
	case FrontendTerm:
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "open terminal")
		}
		return termui.Run(screen, config.GameConfig, termui.Options{
			NewDirector:      newDirector,
			DirectorInterval: config.DirectorInterval,
			Log:              game.Log,
		})

	default:
		var runErr error
		pixelgl.Run(func() {
			runErr = glui.Run(config.GameConfig, glui.Options{
				BoardSize:        config.WindowSize,
				AssetsDir:        config.AssetsDir,
				NewDirector:      newDirector,
				DirectorInterval: config.DirectorInterval,
				Log:              game.Log,
			})
		})
		return runErr
	}
}

type gameModeValue game.GameMode

func newGameModeValue(val game.GameMode, p *game.GameMode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

func (modeVal *gameModeValue) String() string {
	return game.GameMode(*modeVal).String()
}

func (modeVal *gameModeValue) Set(value string) error {
	mode, err := game.ParseGameMode(value)
	if err != nil {
		return err
	}
	*modeVal = gameModeValue(mode)
	return nil
}

func (modeVal *gameModeValue) Type() string {
	return "game.GameMode"
}

// bindFlags registers the command line flags that fill config.
func bindFlags(flags *pflag.FlagSet, config *Config) {
	flags.IntVarP(&config.Width, "width", "w", config.Width, "Width of game board, in cells")
	flags.IntVarP(&config.Height, "height", "h", config.Height, "Height of game board, in cells")
	flags.IntVarP(&config.NumMines, "mines", "m", config.NumMines, "Number of mines to place in the game board")
	flags.Var(newGameModeValue(config.Mode, &config.Mode), "mode", `Game mode, controlling behaviour of first click.
classic: only the first-clicked cell is kept free of mines
win7: all cells surrounding the first-clicked cell are cleared of mines, when the board has room`)
	flags.Int64Var(&config.Seed, "seed", config.Seed, "Seed for mine placement (0 picks one from the clock)")

	flags.StringVar(&config.Frontend, "frontend", config.Frontend, "Where to play: gl (window) or term (terminal)")
	flags.StringVar(&config.AssetsDir, "assets", config.AssetsDir, "Directory holding the tile and banner textures")
	flags.Float64Var(&config.WindowSize, "window-size", config.WindowSize, "Side of the board area in the window, in pixels (0 sizes it from the board)")
	flags.StringVarP(&config.Director, "director", "d", config.Director, "Make the computer play: random or constraint")
	flags.DurationVar(&config.DirectorInterval, "director-interval", config.DirectorInterval, "Delay between the computer's clicks")

	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&config.LogFile, "log-file", config.LogFile, "Append logs to this file instead of stderr")
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().StringVar(&configFile, "config", "", "YAML config file; flags given on the command line take precedence")
	bindFlags(rootCmd.Flags(), &config)
}
