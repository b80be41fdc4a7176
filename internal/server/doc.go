// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server.
//
// It covers the server lifecycle: construction with timeouts, signal
// handling and graceful shutdown. Whether the server listens at all is
// decided by the caller; the configured [net/http.Handler] is always
// available through Handler for in-process invocation.
package server
