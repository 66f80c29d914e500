package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmendes/fifteen/game/engine"
	"github.com/rmendes/fifteen/game/service"
)

// MockSessionManager implements service.SessionManager for testing.
type MockSessionManager struct {
	sessions map[string]*service.Session
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{sessions: make(map[string]*service.Session)}
}

func (m *MockSessionManager) Create(id string, config *engine.GameConfig) (*service.Session, error) {
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}
	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	board, err := engine.NewBoardFromConfig(config)
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		Board:          board,
		Config:         config,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}
	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) GetOrCreate(id string, config *engine.GameConfig) (*service.Session, error) {
	if session, exists := m.sessions[id]; exists {
		return session, nil
	}
	return m.Create(id, config)
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	session, exists := m.sessions[id]
	if !exists {
		return errors.New("session not found")
	}
	session.LastAccessedAt = time.Now()
	return nil
}

// MockConfigManager implements service.ConfigManager for testing.
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
}

func NewMockConfigManager() *MockConfigManager {
	mini := engine.DefaultGameConfig()
	mini.Name = "Mini 8"
	mini.BoardSize = 3
	mini.Shuffle = engine.ShuffleNone

	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{"mini": mini},
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	config, exists := m.configs[name]
	if !exists {
		return nil, errors.New("configuration not found")
	}
	return config, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	var infos []*service.ConfigInfo
	for id, cfg := range m.configs {
		infos = append(infos, &service.ConfigInfo{
			ConfigID:  id,
			Name:      cfg.Name,
			BoardSize: cfg.BoardSize,
			Shuffle:   cfg.Shuffle,
		})
	}
	return infos, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	cfg := engine.DefaultGameConfig()
	cfg.Shuffle = engine.ShuffleNone // deterministic boards for assertions
	return cfg
}

func newTestService() service.GameService {
	return service.NewGameService(NewMockSessionManager(), NewMockConfigManager())
}

func TestGameService_CreateSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, info.ID)
	assert.Equal(t, 4, info.BoardState.Size)
	assert.True(t, info.BoardState.Solved)
	assert.Zero(t, info.BoardState.Moves)

	mini, err := svc.CreateSession(ctx, "mini")
	require.NoError(t, err)
	assert.Equal(t, 3, mini.BoardState.Size)
	assert.Equal(t, "Mini 8", mini.ConfigName)
}

func TestGameService_CreateSession_UnknownConfig(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateSession(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mini", "error should list the available configs")
}

func TestGameService_Move(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "mini")
	require.NoError(t, err)

	// Legal move from the solved layout: the tile left of the blank
	// slides right.
	result, err := svc.Move(ctx, info.ID, "right")
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, 1, result.BoardState.Moves)
	assert.False(t, result.BoardState.Solved)

	// Wall push: a defined no-op, not an error, and not counted.
	result, err = svc.Move(ctx, info.ID, "up")
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Equal(t, 1, result.BoardState.Moves)

	// Unknown direction strings are errors.
	_, err = svc.Move(ctx, info.ID, "sideways")
	assert.Error(t, err)

	// Unknown sessions are errors.
	_, err = svc.Move(ctx, "ghost", "right")
	assert.Error(t, err)
}

func TestGameService_BulkMove(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "mini")
	require.NoError(t, err)

	// First direction is a wall push; the rest must still be attempted.
	result, err := svc.BulkMove(ctx, info.ID, []string{"left", "right", "down"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 2, result.BoardState.Moves)

	// One unknown string rejects the whole sequence before any move.
	_, err = svc.BulkMove(ctx, info.ID, []string{"up", "diagonal"})
	require.Error(t, err)
	state, err := svc.GetBoardState(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Moves, "rejected sequence must not move the board")
}

func TestGameService_Reset(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "mini")
	require.NoError(t, err)

	_, err = svc.BulkMove(ctx, info.ID, []string{"right", "down", "right"})
	require.NoError(t, err)

	state, err := svc.Reset(ctx, info.ID)
	require.NoError(t, err)
	assert.True(t, state.Solved, "mini config shuffles with identity, reset lands on solved")
	assert.Zero(t, state.Moves)
}

func TestGameService_SolvedRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "mini")
	require.NoError(t, err)

	// Slide a tile out and back; the board reports solved again while the
	// move counter keeps counting.
	result, err := svc.BulkMove(ctx, info.ID, []string{"right", "left"})
	require.NoError(t, err)
	assert.True(t, result.BoardState.Solved)
	assert.Equal(t, 2, result.BoardState.Moves)
}

func TestGameService_SessionLifecycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.CreateSession(ctx, "")
	require.NoError(t, err)
	b, err := svc.CreateSession(ctx, "mini")
	require.NoError(t, err)

	infos, err := svc.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 2)

	got, err := svc.GetSession(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	require.NoError(t, svc.DeleteSession(ctx, b.ID))
	_, err = svc.GetSession(ctx, b.ID)
	assert.Error(t, err)
}

func TestGameService_Snapshots(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "mini")
	require.NoError(t, err)

	before, err := svc.GetBoardState(ctx, info.ID)
	require.NoError(t, err)
	blankBefore := before.Rows[2][2]

	_, err = svc.Move(ctx, info.ID, "right")
	require.NoError(t, err)

	// The earlier snapshot must not change under later moves.
	assert.Equal(t, blankBefore, before.Rows[2][2])
	assert.Equal(t, engine.Blank, before.Rows[2][2])
}
