// Command validate provides a small CLI that validates puzzle configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Board size bounds and shuffle mode correctness
//   - Seed usage (seeds only make sense for random shuffles)
//   - Presence of the player-facing messages
//
// It also prints informational notes: whether the exact solver can handle
// the board, and whether tile numbers still fit the four-character cells
// the terminal renderer uses.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmendes/fifteen/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// solverLimit mirrors the exact solver's board-size ceiling. Kept local so
// this command stays a standalone lint tool.
const solverLimit = 3

// renderLimit is the largest board whose tiles still fit the terminal
// client's four-character cells (size*size-1 <= 9999).
const renderLimit = 100

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	}

	// Message checks: the engine does not require them, but a config
	// without player-facing text makes for a mute terminal client.
	if config.Messages.Prompt == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required message: prompt")
	}
	if config.Messages.Solved == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required message: solved")
	}

	if !result.Valid {
		return result
	}

	// Informational data
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d (%d tiles)",
		config.BoardSize, config.BoardSize, config.BoardSize*config.BoardSize-1))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Shuffle: %s", shuffleSummary(&config)))

	if config.BoardSize <= solverLimit {
		result.Errors = append(result.Errors, "✓ Exact solver: supported")
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("ℹ Exact solver: unsupported above %dx%d", solverLimit, solverLimit))
	}
	if config.BoardSize > renderLimit {
		result.Errors = append(result.Errors, fmt.Sprintf("ℹ Tiles above 9999 will widen the %dx%d terminal rendering", config.BoardSize, config.BoardSize))
	}

	return result
}

// shuffleSummary describes the shuffle a config will run.
func shuffleSummary(config *engine.GameConfig) string {
	switch {
	case config.Shuffle == engine.ShuffleNone:
		return "none (starts solved)"
	case config.ShuffleSeed != 0:
		return fmt.Sprintf("random walk, seed %d (reproducible)", config.ShuffleSeed)
	default:
		return "random walk, fresh seed per game"
	}
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
