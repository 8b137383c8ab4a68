package server_test

import (
	"context"
	"testing"
	"time"

	"hrhub/internal/api/server"
	"hrhub/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serverConfig(port string) *config.Config {
	cfg := &config.Config{}
	cfg.API.Port = port
	cfg.Auth.JWTSecret = "test_secret_key"
	cfg.Auth.MaxLoginAttempts = 5
	cfg.Auth.LockoutMinutes = 15
	cfg.RateLimit.Requests = 1000
	cfg.RateLimit.Window = 60
	cfg.RateLimit.Burst = 50
	return cfg
}

func TestStart_InvalidPort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := server.New(serverConfig("not-a-port"), nil)
	err := srv.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

func TestStart_ShutsDownOnContextCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		// Port 0 picks a free ephemeral port.
		done <- server.New(serverConfig("0"), nil).Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
