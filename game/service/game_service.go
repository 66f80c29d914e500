package service

import (
	"context"
	"time"

	"github.com/rmendes/fifteen/game/engine"
)

// GameService defines all game-related operations exposed to transports.
type GameService interface {
	// Session management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game operations
	Move(ctx context.Context, sessionID, direction string) (*MoveResult, error)
	BulkMove(ctx context.Context, sessionID string, directions []string) (*BulkMoveResult, error)
	Reset(ctx context.Context, sessionID string) (*BoardState, error)

	// Game state
	GetBoardState(ctx context.Context, sessionID string) (*BoardState, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
}

// SessionManager defines session storage operations.
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles game configuration loading.
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
}

// Session is one live game: a board, its configuration and the move
// counter. Sessions are held in memory only; there is no cross-run
// persistence.
type Session struct {
	ID             string
	Board          *engine.Board
	Config         *engine.GameConfig
	Moves          int
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
