// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the sweet shop API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as CORS, request body limits, request tracing, access
// logging, panic recovery and authentication are handled in this package
// before requests are delegated to the service layer.
package http
