package engine

import "fmt"

// Shuffle modes accepted in game configurations.
const (
	ShuffleRandom = "random"
	ShuffleNone   = "none"
)

// GameConfig describes a playable puzzle variant loaded from JSON.
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	BoardSize   int    `json:"board_size"`
	Shuffle     string `json:"shuffle"`
	// ShuffleSeed pins the random walk for reproducible boards; zero means
	// a fresh system-seeded walk per game.
	ShuffleSeed uint64 `json:"shuffle_seed,omitempty"`
	Messages    struct {
		Welcome string `json:"welcome"`
		Prompt  string `json:"prompt"`
		Solved  string `json:"solved"`
	} `json:"messages"`
}

// ValidateGameConfig validates a configuration for correctness. Board sizes
// outside the tile-width budget and unknown shuffle modes are construction
// errors, reported to the caller and never silently defaulted.
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.BoardSize < MinBoardSize || config.BoardSize > MaxBoardSize {
		return fmt.Errorf("config validation: board_size must be between %d and %d, got %d",
			MinBoardSize, MaxBoardSize, config.BoardSize)
	}
	switch config.Shuffle {
	case ShuffleRandom, ShuffleNone:
	case "":
		return fmt.Errorf("config validation: shuffle is required (%q or %q)", ShuffleRandom, ShuffleNone)
	default:
		return fmt.Errorf("config validation: unknown shuffle mode %q (want %q or %q)",
			config.Shuffle, ShuffleRandom, ShuffleNone)
	}
	if config.ShuffleSeed != 0 && config.Shuffle != ShuffleRandom {
		return fmt.Errorf("config validation: shuffle_seed only applies to shuffle=%q", ShuffleRandom)
	}
	return nil
}

// Shuffler builds the shuffle strategy the configuration asks for.
func (c *GameConfig) Shuffler() Shuffler {
	if c.Shuffle != ShuffleRandom {
		return IdentityShuffler{}
	}
	if c.ShuffleSeed != 0 {
		return NewSeededRandomWalkShuffler(c.ShuffleSeed)
	}
	return NewRandomWalkShuffler(nil)
}

// NewBoardFromConfig validates the configuration and constructs its board.
func NewBoardFromConfig(config *GameConfig) (*Board, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	return NewBoard(config.BoardSize, config.Shuffler())
}

// DefaultGameConfig returns the classic 4×4 randomly shuffled puzzle.
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{
		Name:        "Classic 15",
		Description: "The classic 4x4 fifteen puzzle with a random-walk shuffle",
		BoardSize:   4,
		Shuffle:     ShuffleRandom,
	}
	cfg.Messages.Welcome = "Slide the tiles until the numbers ascend."
	cfg.Messages.Prompt = "Slide into direction [w, a, s, d], q - for quit: "
	cfg.Messages.Solved = "Puzzle is solved!"
	return cfg
}
