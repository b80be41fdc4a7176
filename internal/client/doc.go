// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sweet shop command-line client.
//
// It wires the API-URL resolver and the REST adapter into a cobra command
// tree. Command output goes to the configured writer as indented JSON;
// diagnostics go to the logger.
package client
