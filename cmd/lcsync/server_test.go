package main

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/lcsync/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartHTTPServerShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, config.AuthConfig{Username: "admin", Password: "hunter2"})
	router, err := app.setupRouter()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.startHTTPServer(ctx, router)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
