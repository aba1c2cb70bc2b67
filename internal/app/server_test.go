//go:build !integration

package app

import (
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/guttosm/bakery-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name             string
		cfg              config.ServerConfig
		expectedRead     time.Duration
		expectedWrite    time.Duration
		expectedShutdown time.Duration
	}{
		{
			name:             "defaults for zero timeouts",
			cfg:              config.ServerConfig{Port: "8080"},
			expectedRead:     15 * time.Second,
			expectedWrite:    15 * time.Second,
			expectedShutdown: 10 * time.Second,
		},
		{
			name: "configured timeouts",
			cfg: config.ServerConfig{
				Port:            "8080",
				ReadTimeout:     5 * time.Second,
				WriteTimeout:    20 * time.Second,
				ShutdownTimeout: 3 * time.Second,
			},
			expectedRead:     5 * time.Second,
			expectedWrite:    20 * time.Second,
			expectedShutdown: 3 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler(), tt.cfg)

			require.NotNil(t, server.httpServer)
			assert.Equal(t, ":8080", server.httpServer.Addr)
			assert.Equal(t, tt.expectedRead, server.httpServer.ReadTimeout)
			assert.Equal(t, tt.expectedWrite, server.httpServer.WriteTimeout)
			assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
			assert.Equal(t, tt.expectedShutdown, server.shutdownTimeout)
		})
	}
}

func TestServer_ShutdownRunsHooksInOrder(t *testing.T) {
	server := NewServer(okHandler(), config.ServerConfig{Port: "0"})

	var calls []string
	server.OnShutdown(func() { calls = append(calls, "carts") })
	server.OnShutdown(func() { calls = append(calls, "mongodb") })

	require.NoError(t, server.Shutdown())
	require.NoError(t, server.Shutdown())

	assert.Equal(t, []string{"carts", "mongodb"}, calls, "hooks run once")
}

func TestServer_Run_WithError(t *testing.T) {
	server := NewServer(okHandler(), config.ServerConfig{Port: "invalid-port"})
	hookRan := make(chan struct{}, 1)
	server.OnShutdown(func() { hookRan <- struct{}{} })

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	select {
	case err := <-errChan:
		assert.Error(t, err)
		assert.Len(t, hookRan, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("Server did not fail on an invalid address")
	}
}

func TestServer_Run_GracefulShutdown(t *testing.T) {
	server := NewServer(okHandler(), config.ServerConfig{Port: "0"})
	stopped := false
	server.OnShutdown(func() { stopped = true })

	done := make(chan error, 1)
	go func() {
		done <- server.Run()
	}()

	time.Sleep(50 * time.Millisecond)

	proc, _ := os.FindProcess(os.Getpid())
	_ = proc.Signal(syscall.SIGTERM)

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.True(t, stopped)
	case <-time.After(2 * time.Second):
		require.Fail(t, "Server did not shutdown gracefully")
	}
}
