package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rmendes/fifteen/game/engine"
)

// gameServiceImpl implements the GameService interface.
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance.
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// CreateSession creates a new game session from the named configuration,
// or from the default configuration when configName is empty.
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	if configName != "" {
		var err error
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			available, listErr := s.configs.ListConfigs()
			if listErr == nil && len(available) > 0 {
				ids := make([]string, 0, len(available))
				for _, cfg := range available {
					ids = append(ids, cfg.ConfigID)
				}
				return nil, fmt.Errorf("config %q not found, available configs: %v", configName, ids)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate a short ID.
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(session), nil
}

// GetSession retrieves session information.
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions.
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	infos := make([]*SessionInfo, 0, len(sessions))
	for _, session := range sessions {
		infos = append(infos, s.sessionInfo(session))
	}
	return infos, nil
}

// DeleteSession removes a session.
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Move attempts a single move on the session's board. An illegal move is
// reported through MoveResult.Applied, never as an error; only unknown
// sessions and direction strings fail.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, direction string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	d, err := engine.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	applied := session.Board.MoveOnce(d)
	if applied {
		session.Moves++
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return &MoveResult{
		Direction:  d.String(),
		Applied:    applied,
		BoardState: NewBoardState(session),
	}, nil
}

// BulkMove attempts a sequence of moves in order. The whole sequence is
// rejected up front if any direction string is unknown; after that every
// direction is attempted even when earlier ones were illegal.
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, directions []string) (*BulkMoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	moves, err := engine.ParseDirections(directions)
	if err != nil {
		return nil, err
	}

	applied := session.Board.MoveMany(moves)
	session.Moves += applied
	s.sessions.UpdateLastAccessed(sessionID)

	return &BulkMoveResult{
		Requested:  len(moves),
		Applied:    applied,
		BoardState: NewBoardState(session),
	}, nil
}

// Reset rebuilds the session's board in place using its configuration's
// shuffle strategy and clears the move counter.
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*BoardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	session.Board.Reset(session.Config.Shuffler())
	session.Moves = 0
	s.sessions.UpdateLastAccessed(sessionID)

	return NewBoardState(session), nil
}

// GetBoardState returns the current board snapshot for a session.
func (s *gameServiceImpl) GetBoardState(ctx context.Context, sessionID string) (*BoardState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return NewBoardState(session), nil
}

// ListConfigs returns all available configurations.
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a configuration by name.
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// sessionInfo builds the wire representation of a session. Callers hold
// the service lock.
func (s *gameServiceImpl) sessionInfo(session *Session) *SessionInfo {
	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     session.Config.Name,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		BoardState:     NewBoardState(session),
	}
}
