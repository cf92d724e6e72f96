package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/adapters/out/envlookup"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/common"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/domain"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/pkg/logger"
)

func testConfig(port int) *common.Config {
	cfg := common.DefaultConfig()
	cfg.Http.Host = "127.0.0.1"
	cfg.Http.Port = port
	cfg.Http.ShutdownGracePeriod = 2
	return cfg
}

func TestNewServerApp(t *testing.T) {
	cfg := testConfig(5000)
	a := NewServerApp(cfg, envlookup.NewSnapshot(nil), logger.New(io.Discard))

	require.NotNil(t, a.Echo)
	assert.True(t, a.Echo.HideBanner)
	assert.True(t, a.Echo.HidePort)
	assert.Equal(t, 10*time.Second, a.Echo.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, a.Echo.Server.WriteTimeout)
	assert.Same(t, cfg, a.Config)
}

func TestApp_Run_ServesAndShutsDown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port

	env := envlookup.NewSnapshot(map[string]string{"INSTANCE_ID": "i-0abc123"})
	var logs bytes.Buffer
	a := NewServerApp(testConfig(port), env, logger.New(&logs))
	a.Echo.Listener = ln

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/", port))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), "<li><strong>Instance ID:</strong> i-0abc123</li>")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestApp_Run_BindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	port := ln.Addr().(*net.TCPAddr).Port

	var logs bytes.Buffer
	a := NewServerApp(testConfig(port), envlookup.NewSnapshot(nil), logger.New(&logs))

	err = a.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrListenFailed)
	assert.Contains(t, logs.String(), "Starting server")
	assert.NotContains(t, logs.String(), "listening")
}
