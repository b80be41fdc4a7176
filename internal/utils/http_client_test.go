// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-sweet-shop/internal/apiurl"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(apiurl.ClientConfig{}, "")

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client with embedded *resty.Client")
	}
}

func TestNewHTTPClient_BaseURL(t *testing.T) {
	tests := []struct {
		name   string
		cfg    apiurl.ClientConfig
		origin string
		want   string
	}{
		{"configured base wins", apiurl.ClientConfig{BaseURL: "https://api.example.com"}, "http://localhost:3001", "https://api.example.com"},
		{"origin fallback", apiurl.ClientConfig{}, "http://localhost:3001", "http://localhost:3001"},
		{"nothing set", apiurl.ClientConfig{}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewHTTPClient(tt.cfg, tt.origin)
			if client.BaseURL != tt.want {
				t.Errorf("expected base URL %q, got %q", tt.want, client.BaseURL)
			}
		})
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient(apiurl.ClientConfig{Timeout: 3 * time.Second}, "")

	if got := client.GetClient().Timeout; got != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(apiurl.ClientConfig{}, "")
	client2 := NewHTTPClient(apiurl.ClientConfig{}, "")

	if client1.Client == client2.Client {
		t.Fatal("expected independent *resty.Client instances")
	}
}
