// Package api exposes the puzzle game as a REST surface.
//
// Routes are mounted under /api:
//
//	POST   /api/sessions                create a session (optional config_id)
//	GET    /api/sessions                list sessions, sortable and limitable
//	GET    /api/sessions/{id}           session details
//	DELETE /api/sessions/{id}           delete a session
//	GET    /api/sessions/{id}/state     current board snapshot
//	POST   /api/sessions/{id}/move      single move {"direction": "left"}
//	POST   /api/sessions/{id}/bulk-move move sequence {"directions": [...]}
//	POST   /api/sessions/{id}/reset     rebuild and reshuffle the board
//	GET    /api/configs                 list configurations
//	GET    /api/configs/{name}          configuration details
//
// /ws upgrades to a WebSocket attached to one session; every mutating call
// above also fans the fresh board state out to that session's viewers.
//
// A rejected wall push returns 200 with applied=false: illegal moves are
// routine gameplay, not API errors. Error responses are reserved for
// unknown sessions, unknown configs and malformed input.
package api
