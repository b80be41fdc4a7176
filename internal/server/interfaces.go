// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "net/http"

// Server defines the lifecycle contract of the transport server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns nil after a graceful shutdown.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()

	// Handler returns the fully configured request handler. It can serve
	// requests without a listening socket.
	Handler() http.Handler
}
