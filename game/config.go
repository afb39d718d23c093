package game

type GameConfig struct {
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	NumMines int      `yaml:"mines"`
	Mode     GameMode `yaml:"mode"`

	// Seed for mine placement; zero picks one from the clock
	Seed int64 `yaml:"seed"`

	// Fixed mine positions (cell indexes, row-major) used instead of random
	// placement. Mines on the first-clicked cell are moved elsewhere.
	Layout []int `yaml:"layout,flow"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:    10,
		Height:   10,
		NumMines: 10,
		Mode:     Classic,
	}
}

// Validate reports whether a session can be built from the config. Every
// returned error wraps ErrInvalidConfig.
func (config GameConfig) Validate() error {
	if config.Width <= 0 || config.Height <= 0 {
		return invalidConfig("board dimensions %dx%d must be positive", config.Width, config.Height)
	}
	numCells := config.Width * config.Height
	if config.NumMines <= 0 || config.NumMines >= numCells {
		return invalidConfig("mine count %d must be between 1 and %d for a %dx%d board",
			config.NumMines, numCells-1, config.Width, config.Height)
	}
	if _, known := GameModes[config.Mode.String()]; !known {
		return invalidConfig("unknown game mode %d", int(config.Mode))
	}

	if config.Layout != nil {
		if len(config.Layout) != config.NumMines {
			return invalidConfig("layout has %d mines, want %d", len(config.Layout), config.NumMines)
		}
		seen := make(map[int]struct{}, len(config.Layout))
		for _, index := range config.Layout {
			if index < 0 || index >= numCells {
				return invalidConfig("layout mine %d outside board of %d cells", index, numCells)
			}
			if _, dup := seen[index]; dup {
				return invalidConfig("layout mine %d listed twice", index)
			}
			seen[index] = struct{}{}
		}
	}
	return nil
}
