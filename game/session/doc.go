// Package session provides in-memory session management for the puzzle
// server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - Session cleanup and expiration
//
// Sessions use 4-character hex IDs for easy reference, generated with
// cryptographic randomness and looked up case-insensitively.
//
// Sessions live only in memory; board state does not persist across
// runs. A board is created once per session, optionally
// reset in place for a new game, and dropped with its session.
//
// The manager itself is safe for concurrent use, but the board inside a
// session performs no locking of its own; the service layer serializes
// board mutations per call.
package session
