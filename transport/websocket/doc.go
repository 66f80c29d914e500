// Package websocket implements real-time board updates for browser
// clients.
//
// A Hub maintains the set of connected clients grouped by session ID and
// fans out board snapshots after every mutating operation. Clients are
// read-mostly: the browser sends moves through the REST API and receives
// state_update events here, so the read pump only keeps the connection
// alive. The hub runs as a single goroutine owning all client maps;
// registration, unregistration and broadcasts travel over channels, which
// keeps the hub lock-free.
package websocket
