package httptransport

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewServerAppliesConfig(t *testing.T) {
	handler := http.NotFoundHandler()
	srv := NewServer(ServerConfig{
		Address:      ":8000",
		ReadTimeout:  time.Second,
		WriteTimeout: 2 * time.Second,
		IdleTimeout:  3 * time.Second,
	}, handler)

	assert.Equal(t, ":8000", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.WriteTimeout)
	assert.Equal(t, 3*time.Second, srv.IdleTimeout)
}

func TestServeStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv := NewServer(ServerConfig{Address: "127.0.0.1:0"}, http.NotFoundHandler())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Serve(ctx, srv, time.Second) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeReturnsListenError(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv := NewServer(ServerConfig{Address: "invalid-address"}, http.NotFoundHandler())
	err := Serve(context.Background(), srv, time.Second)
	assert.Error(t, err)
}
