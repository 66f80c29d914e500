package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rmendes/fifteen/game/engine"
	"github.com/rmendes/fifteen/game/service"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// Manager handles game configuration loading and caching.
type Manager struct {
	configDir string
	configs   map[string]*engine.GameConfig
	mu        sync.RWMutex
}

// NewManager creates a configuration manager over the given directory. An
// empty directory string yields a manager that only serves the compiled-in
// default; a non-empty directory must exist.
func NewManager(configDir string) (*Manager, error) {
	if configDir != "" {
		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			return nil, fmt.Errorf("config directory does not exist: %s", configDir)
		}
	}

	return &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.GameConfig),
	}, nil
}

// LoadConfig loads a configuration by name, adding the .json extension if
// absent. Parsed configs are cached.
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	m.mu.RLock()
	if config, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock.
	if config, exists := m.configs[name]; exists {
		return config, nil
	}

	if m.configDir == "" {
		return nil, ErrConfigNotFound
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}
	configPath := filepath.Join(m.configDir, filename)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	m.configs[name] = &config
	return &config, nil
}

// ListConfigs returns information about all available configurations.
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	if m.configDir == "" {
		def := m.GetDefault()
		return []*service.ConfigInfo{{
			ConfigID:    "default",
			Name:        def.Name,
			Description: def.Description,
			BoardSize:   def.BoardSize,
			Shuffle:     def.Shuffle,
		}}, nil
	}

	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []*service.ConfigInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")
		config, err := m.LoadConfig(name)
		if err != nil {
			// Skip unreadable or invalid files; listing should surface
			// the usable configs, not fail wholesale.
			continue
		}

		configs = append(configs, &service.ConfigInfo{
			Filename:    entry.Name(),
			ConfigID:    name,
			Name:        config.Name,
			Description: config.Description,
			BoardSize:   config.BoardSize,
			Shuffle:     config.Shuffle,
		})
	}

	return configs, nil
}

// GetDefault returns the configuration used when a session asks for none:
// the "default" file if the directory provides one, otherwise the
// compiled-in classic 4×4.
func (m *Manager) GetDefault() *engine.GameConfig {
	if config, err := m.LoadConfig("default"); err == nil {
		return config
	}
	return engine.DefaultGameConfig()
}
