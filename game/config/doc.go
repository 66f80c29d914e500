// Package config loads and caches puzzle game configurations.
//
// Configurations are JSON files in a directory, one variant per file
// (board size, shuffle mode, optional seed, and player-facing messages).
// The Manager validates each file on load through the engine's
// construction-error rules and caches parsed configs; a compiled-in
// classic 4×4 default is always available, so a server can run without
// any configuration directory at all.
package config
