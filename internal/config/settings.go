package config

import (
	"fmt"

	"github.com/Veraticus/slate/internal/common"
	"github.com/Veraticus/slate/internal/model"
	"github.com/spf13/viper"
)

// Viper keys shared by the flag bindings and the config file.
const (
	KeyInput        = "input"
	KeyGuess        = "guess"
	KeyPatternLimit = "display.pattern_limit"
	KeySubtreeLimit = "display.subtree_limit"
	KeyLogLevel     = "logging.level"
	KeyLogFormat    = "logging.format"
)

// Defaults mirror the original slate_t.txt workflow.
const (
	DefaultInput        = "slate_t.txt"
	DefaultGuess        = "slate"
	DefaultPatternLimit = 50
	DefaultSubtreeLimit = 30
)

// Settings holds the resolved configuration for one invocation.
type Settings struct {
	InputPath    string
	Guess        string
	LogLevel     string
	LogFormat    string
	PatternLimit int
	SubtreeLimit int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyInput, DefaultInput)
	v.SetDefault(KeyGuess, DefaultGuess)
	v.SetDefault(KeyPatternLimit, DefaultPatternLimit)
	v.SetDefault(KeySubtreeLimit, DefaultSubtreeLimit)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// Load reads and validates settings from v.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		InputPath:    ExpandPath(v.GetString(KeyInput)),
		Guess:        v.GetString(KeyGuess),
		PatternLimit: v.GetInt(KeyPatternLimit),
		SubtreeLimit: v.GetInt(KeySubtreeLimit),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the settings can drive a run.
func (s *Settings) Validate() error {
	if !model.IsWord(s.Guess) {
		return fmt.Errorf("%w: %q", common.ErrInvalidGuess, s.Guess)
	}
	if s.InputPath == "" {
		return fmt.Errorf("%w: input path is empty", common.ErrInvalidConfig)
	}
	if s.PatternLimit <= 0 || s.SubtreeLimit <= 0 {
		return fmt.Errorf("%w: display limits must be positive", common.ErrInvalidConfig)
	}
	return nil
}
