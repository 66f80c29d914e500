package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `{
	"name": "Classic 15",
	"description": "The classic 4x4 puzzle",
	"board_size": 4,
	"shuffle": "random",
	"messages": {
		"welcome": "Slide the tiles until the numbers ascend.",
		"prompt": "Slide into direction [w, a, s, d], q - for quit: ",
		"solved": "Puzzle is solved!"
	}
}`

func TestValidateConfig_ValidConfig(t *testing.T) {
	result := validateConfig(writeConfig(t, validConfig))

	if !result.Valid {
		t.Fatalf("expected valid config, got errors: %v", result.Errors)
	}
	if !containsAny(result.Errors, "Exact solver: unsupported") {
		t.Error("expected a note that 4x4 exceeds the exact solver")
	}
	if !containsAny(result.Errors, "✓ Board: 4x4 (15 tiles)") {
		t.Errorf("expected board summary, got %v", result.Errors)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	result := validateConfig(writeConfig(t, `{not json`))

	if result.Valid {
		t.Fatal("expected invalid result for broken JSON")
	}
	if !containsAny(result.Errors, "Invalid JSON") {
		t.Errorf("expected JSON error, got %v", result.Errors)
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/config.json")

	if result.Valid {
		t.Fatal("expected invalid result for missing file")
	}
	if !containsAny(result.Errors, "Failed to read file") {
		t.Errorf("expected read error, got %v", result.Errors)
	}
}

func TestValidateConfig_BadBoardSize(t *testing.T) {
	cfg := strings.Replace(validConfig, `"board_size": 4`, `"board_size": 0`, 1)
	result := validateConfig(writeConfig(t, cfg))

	if result.Valid {
		t.Fatal("expected invalid result for board_size 0")
	}
	if !containsAny(result.Errors, "board_size") {
		t.Errorf("expected board_size error, got %v", result.Errors)
	}
}

func TestValidateConfig_UnknownShuffle(t *testing.T) {
	cfg := strings.Replace(validConfig, `"shuffle": "random"`, `"shuffle": "riffle"`, 1)
	result := validateConfig(writeConfig(t, cfg))

	if result.Valid {
		t.Fatal("expected invalid result for unknown shuffle mode")
	}
}

func TestValidateConfig_SeedWithoutRandom(t *testing.T) {
	cfg := strings.Replace(validConfig, `"shuffle": "random"`,
		`"shuffle": "none", "shuffle_seed": 7`, 1)
	result := validateConfig(writeConfig(t, cfg))

	if result.Valid {
		t.Fatal("expected invalid result for seed on an unshuffled config")
	}
	if !containsAny(result.Errors, "shuffle_seed") {
		t.Errorf("expected shuffle_seed error, got %v", result.Errors)
	}
}

func TestValidateConfig_MissingMessages(t *testing.T) {
	cfg := `{"name": "Mute", "board_size": 3, "shuffle": "none"}`
	result := validateConfig(writeConfig(t, cfg))

	if result.Valid {
		t.Fatal("expected invalid result for missing messages")
	}
	if !containsAny(result.Errors, "Missing required message: prompt") {
		t.Errorf("expected prompt error, got %v", result.Errors)
	}
	if !containsAny(result.Errors, "Missing required message: solved") {
		t.Errorf("expected solved error, got %v", result.Errors)
	}
}

func TestValidateConfig_SolverSupported(t *testing.T) {
	cfg := strings.Replace(validConfig, `"board_size": 4`, `"board_size": 3`, 1)
	result := validateConfig(writeConfig(t, cfg))

	if !result.Valid {
		t.Fatalf("expected valid config, got %v", result.Errors)
	}
	if !containsAny(result.Errors, "Exact solver: supported") {
		t.Errorf("expected solver support note, got %v", result.Errors)
	}
}

func TestValidateConfig_SeededSummary(t *testing.T) {
	cfg := strings.Replace(validConfig, `"shuffle": "random"`,
		`"shuffle": "random", "shuffle_seed": 42`, 1)
	result := validateConfig(writeConfig(t, cfg))

	if !result.Valid {
		t.Fatalf("expected valid config, got %v", result.Errors)
	}
	if !containsAny(result.Errors, "seed 42 (reproducible)") {
		t.Errorf("expected seeded shuffle summary, got %v", result.Errors)
	}
}

func containsAny(lines []string, substr string) bool {
	for _, line := range lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
