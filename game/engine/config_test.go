package engine

import (
	"strings"
	"testing"
)

func TestValidateGameConfig(t *testing.T) {
	valid := DefaultGameConfig()
	if err := ValidateGameConfig(valid); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr string
	}{
		{"nil name", func(c *GameConfig) { c.Name = "" }, "name is required"},
		{"zero size", func(c *GameConfig) { c.BoardSize = 0 }, "board_size"},
		{"oversized", func(c *GameConfig) { c.BoardSize = 256 }, "board_size"},
		{"missing shuffle", func(c *GameConfig) { c.Shuffle = "" }, "shuffle is required"},
		{"unknown shuffle", func(c *GameConfig) { c.Shuffle = "permutation" }, "unknown shuffle mode"},
		{"seed without random", func(c *GameConfig) {
			c.Shuffle = ShuffleNone
			c.ShuffleSeed = 5
		}, "shuffle_seed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(cfg)
			err := ValidateGameConfig(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}

	if err := ValidateGameConfig(nil); err == nil {
		t.Error("nil config should fail validation")
	}
}

func TestGameConfig_Shuffler(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Shuffle = ShuffleNone
	if _, ok := cfg.Shuffler().(IdentityShuffler); !ok {
		t.Errorf("shuffle=none should build an identity shuffler, got %T", cfg.Shuffler())
	}

	cfg.Shuffle = ShuffleRandom
	if _, ok := cfg.Shuffler().(*RandomWalkShuffler); !ok {
		t.Errorf("shuffle=random should build a random-walk shuffler, got %T", cfg.Shuffler())
	}
}

func TestNewBoardFromConfig(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.BoardSize = 3
	cfg.Shuffle = ShuffleNone

	b, err := NewBoardFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewBoardFromConfig failed: %v", err)
	}
	if b.Size() != 3 || !b.IsSolved() {
		t.Errorf("unexpected board: size %d, solved %v", b.Size(), b.IsSolved())
	}

	cfg.BoardSize = -1
	if _, err := NewBoardFromConfig(cfg); err == nil {
		t.Error("invalid config should fail board construction")
	}
}

func TestNewBoardFromConfig_SeededReproducible(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.BoardSize = 4
	cfg.ShuffleSeed = 1234

	a, err := NewBoardFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewBoardFromConfig failed: %v", err)
	}
	b, err := NewBoardFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewBoardFromConfig failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("seeded config should produce identical boards")
	}
}
