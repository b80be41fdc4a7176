// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
}

func TestNewServer(t *testing.T) {
	t.Run("nil handler", func(t *testing.T) {
		s, err := NewServer(nil, ":0", config.Server{}, logger.Nop())
		assert.ErrorIs(t, err, errNoHandlerProvided)
		assert.Nil(t, s)
	})

	t.Run("timeouts are applied", func(t *testing.T) {
		cfg := config.Server{ReadTimeout: time.Second, WriteTimeout: 2 * time.Second}

		s, err := NewServer(okHandler(), "127.0.0.1:0", cfg, logger.Nop())
		require.NoError(t, err)

		srv := s.(*server)
		assert.Equal(t, "127.0.0.1:0", srv.httpServer.server.Addr)
		assert.Equal(t, time.Second, srv.httpServer.server.ReadTimeout)
		assert.Equal(t, 2*time.Second, srv.httpServer.server.WriteTimeout)
		assert.Equal(t, defaultShutdownTimeout, srv.httpServer.shutdownTimeout)
		assert.NotNil(t, s.Handler())
	})
}

func TestServer_RunAndShutdownOnCancel(t *testing.T) {
	s, err := NewServer(okHandler(), "127.0.0.1:0", config.Server{}, logger.Nop())
	require.NoError(t, err)
	srv := s.(*server)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx, listener) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + listener.Addr().String() + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunReturnsListenerErrors(t *testing.T) {
	s, err := NewServer(okHandler(), "127.0.0.1:0", config.Server{}, logger.Nop())
	require.NoError(t, err)
	srv := s.(*server)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, listener.Close())

	err = srv.run(context.Background(), listener)
	assert.Error(t, err)
}
