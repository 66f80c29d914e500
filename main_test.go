package main

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rmendes/fifteen/game/engine"
)

// unshuffledConfig is the classic board without scramble or welcome
// banner; the transcript tests cover the bare prompt/render loop.
func unshuffledConfig() *engine.GameConfig {
	cfg := engine.DefaultGameConfig()
	cfg.Shuffle = engine.ShuffleNone
	cfg.Messages.Welcome = ""
	return cfg
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}
}

func TestDisplayBoard(t *testing.T) {
	board, err := engine.NewBoardFromConfig(unshuffledConfig())
	if err != nil {
		t.Fatalf("NewBoardFromConfig: %v", err)
	}

	var out bytes.Buffer
	if err := displayBoard(&out, board); err != nil {
		t.Fatalf("displayBoard: %v", err)
	}

	want := "   1   2   3   4\n\n" +
		"   5   6   7   8\n\n" +
		"   9  10  11  12\n\n" +
		"  13  14  15    \n\n"
	if out.String() != want {
		t.Errorf("board render mismatch\ngot:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestParseCommand(t *testing.T) {
	moves, quit := parseCommand("wasd")
	if quit {
		t.Fatal("wasd must not quit")
	}
	want := []engine.Direction{engine.Up, engine.Left, engine.Down, engine.Right}
	if len(moves) != len(want) {
		t.Fatalf("expected %d moves, got %d", len(want), len(moves))
	}
	for i, m := range moves {
		if m != want[i] {
			t.Errorf("move %d: expected %v, got %v", i, want[i], m)
		}
	}

	// Unknown characters are ignored.
	moves, quit = parseCommand("x w!a")
	if quit || len(moves) != 2 {
		t.Errorf("expected 2 moves from noisy input, got %d (quit=%v)", len(moves), quit)
	}

	// q aborts the whole line, even mid-sequence.
	moves, quit = parseCommand("ddq")
	if !quit {
		t.Error("expected quit for line containing q")
	}
	if moves != nil {
		t.Errorf("quit must discard pending moves, got %v", moves)
	}
}

func TestRunPlay(t *testing.T) {
	in := strings.NewReader("dds\nq\n")
	var out bytes.Buffer

	if err := runPlay(in, &out, unshuffledConfig()); err != nil {
		t.Fatalf("runPlay: %v", err)
	}

	want := "   1   2   3   4\n\n" +
		"   5   6   7   8\n\n" +
		"   9  10  11  12\n\n" +
		"  13  14  15    \n\n" +
		"Slide into direction [w, a, s, d], q - for quit: " +
		"   1   2   3   4\n\n" +
		"   5   6   7   8\n\n" +
		"   9      11  12\n\n" +
		"  13  10  14  15\n\n" +
		"Slide into direction [w, a, s, d], q - for quit: "
	if out.String() != want {
		t.Errorf("session transcript mismatch\ngot:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestRunPlay_SolvedBanner(t *testing.T) {
	in := strings.NewReader("da\nq\n")
	var out bytes.Buffer

	if err := runPlay(in, &out, unshuffledConfig()); err != nil {
		t.Fatalf("runPlay: %v", err)
	}

	want := "   1   2   3   4\n\n" +
		"   5   6   7   8\n\n" +
		"   9  10  11  12\n\n" +
		"  13  14  15    \n\n" +
		"Slide into direction [w, a, s, d], q - for quit: " +
		"   1   2   3   4\n\n" +
		"   5   6   7   8\n\n" +
		"   9  10  11  12\n\n" +
		"  13  14  15    \n\n" +
		"Puzzle is solved!\n\n" +
		"Slide into direction [w, a, s, d], q - for quit: "
	if out.String() != want {
		t.Errorf("session transcript mismatch\ngot:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestRunPlay_ConfiguredMessages(t *testing.T) {
	cfg := unshuffledConfig()
	cfg.Messages.Welcome = "Tiles up, numbers ascending."
	cfg.Messages.Prompt = "Your move> "
	cfg.Messages.Solved = "Nailed it."

	in := strings.NewReader("da\nq\n")
	var out bytes.Buffer

	if err := runPlay(in, &out, cfg); err != nil {
		t.Fatalf("runPlay: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "Tiles up, numbers ascending.\n\n") {
		t.Errorf("expected welcome banner before the first render, got:\n%q", got)
	}
	if !strings.Contains(got, "Your move> ") {
		t.Errorf("expected configured prompt, got:\n%q", got)
	}
	if strings.Contains(got, "Slide into direction") {
		t.Errorf("configured prompt must replace the classic one, got:\n%q", got)
	}
	if !strings.Contains(got, "Nailed it.\n\n") {
		t.Errorf("expected configured solved banner, got:\n%q", got)
	}
	if strings.Contains(got, "Puzzle is solved!") {
		t.Errorf("configured solved banner must replace the classic one, got:\n%q", got)
	}
}

func TestRunPlay_EOF(t *testing.T) {
	var out bytes.Buffer
	if err := runPlay(strings.NewReader(""), &out, unshuffledConfig()); err != nil {
		t.Fatalf("runPlay at EOF: %v", err)
	}
	if !strings.Contains(out.String(), "Slide into direction") {
		t.Error("expected at least one prompt before EOF")
	}
}

// closeTrackingBody records whether the response body was closed.
type closeTrackingBody struct {
	io.Reader
	closed bool
}

func (b *closeTrackingBody) Close() error {
	b.closed = true
	return nil
}

// stubTransport serves a canned status without touching the network.
type stubTransport struct {
	status int
	body   *closeTrackingBody
}

func (t *stubTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.body = &closeTrackingBody{Reader: strings.NewReader("{}")}
	return &http.Response{StatusCode: t.status, Body: t.body}, nil
}

func TestProbeAPIServer(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"healthy server", http.StatusOK, true},
		{"client error still counts as alive", http.StatusNotFound, true},
		{"server error", http.StatusInternalServerError, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			transport := &stubTransport{status: tc.status}
			client := &http.Client{Transport: transport}

			if got := probeAPIServer(client, "http://example.invalid"); got != tc.want {
				t.Errorf("probeAPIServer = %v, want %v", got, tc.want)
			}
			if transport.body == nil || !transport.body.closed {
				t.Error("response body must be closed regardless of status")
			}
		})
	}
}

func TestProbeAPIServer_Unreachable(t *testing.T) {
	client := &http.Client{Timeout: 50 * time.Millisecond}
	if probeAPIServer(client, "http://127.0.0.1:1") {
		t.Error("expected probe to fail against a closed port")
	}
}

func TestInitializeServices(t *testing.T) {
	dir := t.TempDir()
	cfg := `{"name": "Mini", "board_size": 3, "shuffle": "random"}`
	if err := os.WriteFile(filepath.Join(dir, "mini.json"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	gameService, err := initializeServices(dir)
	if err != nil {
		t.Fatalf("initializeServices: %v", err)
	}
	if gameService == nil {
		t.Fatal("expected game service to be initialized")
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	if _, err := initializeServices("/non/existent/path"); err == nil {
		t.Error("expected error for non-existent config directory")
	}
}
