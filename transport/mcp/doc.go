// Package mcp exposes the puzzle over the Model Context Protocol so AI
// agents can create sessions and slide tiles through well-typed tools.
//
// The package is a thin client: every tool call is proxied to the REST
// API server, which owns the sessions. Running the MCP process next to
// the HTTP server means browser spectators connected over WebSocket see
// an agent's moves live.
//
// MCP Tools:
//   - create_session: start a new game from a named configuration
//   - get_session: fetch one session's details
//   - list_sessions: list active sessions
//   - board_state: render the current board
//   - move: slide one tile into the blank
//   - bulk_move: apply a sequence of slides
//   - reset_game: rebuild the board from its configuration
//   - list_configs: list available puzzle configurations
//   - game_instructions: rules and tool usage notes for agents
//
// Transport Modes:
//
// The underlying server can be driven over stdio for local MCP clients
// or mounted on an HTTP endpoint via GetMCPServer().HandleMessage.
package mcp
