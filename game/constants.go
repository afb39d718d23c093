package game

import (
	"fmt"
	"strings"
)

// Symbol is what a frontend draws for a cell or as the overlay banner.
type Symbol int

// Status is the state of a Session.
type Status int

// Outcome is the result of exposing a cell.
type Outcome int

type Button int

type GameMode int

const (
	Closed Symbol = iota - 1
	Exposed0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Flagged
	Mine
	BannerWon
	BannerLost
	NoOverlay
)

// Symbols lists every symbol that has a texture.
var Symbols = []Symbol{
	Closed,
	Exposed0,
	Digit1,
	Digit2,
	Digit3,
	Digit4,
	Digit5,
	Digit6,
	Digit7,
	Digit8,
	Flagged,
	Mine,
	BannerWon,
	BannerLost,
}

var symbolNames = map[Symbol]string{
	Closed:     "closed",
	Exposed0:   "exposed",
	Digit1:     "one",
	Digit2:     "two",
	Digit3:     "three",
	Digit4:     "four",
	Digit5:     "five",
	Digit6:     "six",
	Digit7:     "seven",
	Digit8:     "eight",
	Flagged:    "flagged",
	Mine:       "mine",
	BannerWon:  "game_won",
	BannerLost: "game_over",
	NoOverlay:  "none",
}

func (symbol Symbol) String() string {
	if name, ok := symbolNames[symbol]; ok {
		return name
	}
	return fmt.Sprintf("Symbol(%d)", int(symbol))
}

// IsDigit reports whether the symbol is one of Digit1..Digit8.
func (symbol Symbol) IsDigit() bool {
	return symbol >= Digit1 && symbol <= Digit8
}

const (
	Playing Status = iota
	Won
	Lost
)

func (status Status) String() string {
	switch status {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("Status(%d)", int(status))
}

const (
	Safe Outcome = iota
	Detonated
)

const (
	LeftButton Button = iota
	RightButton
)

func (button Button) String() string {
	switch button {
	case LeftButton:
		return "left"
	case RightButton:
		return "right"
	}
	return fmt.Sprintf("Button(%d)", int(button))
}

const (
	// Classic keeps only the first-clicked cell free of mines.
	Classic GameMode = iota
	// Win7 keeps the first-clicked cell and all of its neighbors free of
	// mines, when the board has room for it.
	Win7
)

var GameModes = map[string]GameMode{
	"classic": Classic,
	"win7":    Win7,
}

func (mode GameMode) String() string {
	for name, m := range GameModes {
		if m == mode {
			return name
		}
	}
	return fmt.Sprint(int(mode))
}

// ParseGameMode returns the mode with the given name.
func ParseGameMode(name string) (GameMode, error) {
	if mode, isValid := GameModes[strings.ToLower(name)]; isValid {
		return mode, nil
	}
	return Classic, fmt.Errorf("invalid game mode %q", name)
}

// UnmarshalYAML lets a mode be written by name in config files.
func (mode *GameMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseGameMode(name)
	if err != nil {
		return err
	}
	*mode = parsed
	return nil
}

func (mode GameMode) MarshalYAML() (interface{}, error) {
	return mode.String(), nil
}
