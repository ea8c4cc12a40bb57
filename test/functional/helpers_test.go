//go:build functional

// Package functional provides functional tests that exercise the full
// server over a real TCP listener.
package functional

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/questhaven/inventory-api/internal/config"
	"github.com/questhaven/inventory-api/internal/server"
	"github.com/questhaven/inventory-api/internal/service"
	"github.com/questhaven/inventory-api/internal/store"
)

// Default test timeouts.
const (
	requestTimeout  = 5 * time.Second
	startupTimeout  = 5 * time.Second
	shutdownTimeout = 5 * time.Second
)

// freePort asks the kernel for a free TCP port.
func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("finding free port: %v", err)
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// startServer boots the full stack (seeded store, service, server) on a
// free port and returns the base URL. The server is shut down via t.Cleanup.
func startServer(t *testing.T) string {
	t.Helper()

	port := freePort(t)
	cfg := &config.Config{
		Host:              "localhost",
		Port:              port,
		LogLevel:          "error",
		ShutdownTimeout:   shutdownTimeout,
		MetricsEnabled:    false,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	svc := service.New(store.NewSeededMemoryStore())
	srv, err := server.New(cfg, zap.NewNop(), svc)
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}

	go func() {
		_ = srv.Start()
	}()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	baseURL := fmt.Sprintf("http://localhost:%d", port)
	waitForServer(t, baseURL)

	return baseURL
}

// waitForServer polls the health endpoint until the server accepts requests.
func waitForServer(t *testing.T, baseURL string) {
	t.Helper()

	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(startupTimeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// doJSON performs an HTTP request with an optional JSON body and decodes
// the JSON response into out when out is non-nil.
func doJSON(t *testing.T, method, url, body string, out any) int {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: requestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding response from %s %s: %v", method, url, err)
		}
	}

	return resp.StatusCode
}
