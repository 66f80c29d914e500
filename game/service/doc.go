// Package service defines the game-facing application layer between the
// board engine and the transports.
//
// GameService is the single interface the HTTP API, the WebSocket hub and
// the MCP tools consume. It owns no state of its own: sessions live in a
// SessionManager, configurations in a ConfigManager, and the service wires
// operations between them. Unknown sessions, configs and direction
// strings are errors; an illegal move is a routine non-applied result,
// never an error.
//
// The service also keeps the per-session move counter; the board engine
// stays a pure grid with no gameplay bookkeeping.
package service
