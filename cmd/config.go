package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/they4kman/minefield/game"
)

const (
	FrontendGL   = "gl"
	FrontendTerm = "term"

	DirectorNone       = ""
	DirectorRandom     = "random"
	DirectorConstraint = "constraint"
)

// Config is everything a run of the program needs: the game itself and how
// to present it.
type Config struct {
	game.GameConfig `yaml:",inline"`

	Frontend         string        `yaml:"frontend"`
	AssetsDir        string        `yaml:"assets"`
	WindowSize       float64       `yaml:"window_size"`
	Director         string        `yaml:"director"`
	DirectorInterval time.Duration `yaml:"director_interval"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

func NewConfig() Config {
	return Config{
		GameConfig:       game.NewGameConfig(),
		Frontend:         FrontendGL,
		AssetsDir:        "assets",
		Director:         DirectorNone,
		DirectorInterval: 500 * time.Millisecond,
		LogLevel:         "info",
	}
}

// LoadConfig reads a YAML config file over the defaults. Unknown keys are
// errors.
func LoadConfig(path string) (Config, error) {
	config := NewConfig()

	in, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "read config")
	}
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, errors.Wrapf(err, "parse config %s", path)
	}
	return config, nil
}

func (config Config) Validate() error {
	if err := config.GameConfig.Validate(); err != nil {
		return err
	}

	switch config.Frontend {
	case FrontendGL, FrontendTerm:
	default:
		return errors.Errorf("unknown frontend %q", config.Frontend)
	}

	switch strings.ToLower(config.Director) {
	case DirectorNone, DirectorRandom, DirectorConstraint:
	default:
		return errors.Errorf("unknown director %q", config.Director)
	}

	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}
