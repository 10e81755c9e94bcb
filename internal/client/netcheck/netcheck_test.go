package netcheck

import (
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunc(t *testing.T) {
	assert.True(t, Func(func() bool { return true }).IsOnline())
	assert.False(t, Func(func() bool { return false }).IsOnline())
}

func TestNewDialChecker_DefaultPorts(t *testing.T) {
	tests := []struct {
		name      string
		serverURL string
		wantAddr  string
	}{
		{name: "explicit port", serverURL: "http://localhost:8080", wantAddr: "localhost:8080"},
		{name: "http default", serverURL: "http://example.com", wantAddr: "example.com:80"},
		{name: "https default", serverURL: "https://example.com", wantAddr: "example.com:443"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, err := NewDialChecker(tt.serverURL)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, checker.addr)
		})
	}
}

func TestDialChecker_IsOnline(t *testing.T) {
	server := httptest.NewServer(nil)
	defer server.Close()

	checker, err := NewDialChecker(server.URL)
	require.NoError(t, err)
	assert.True(t, checker.IsOnline())
}

func TestDialChecker_IsOffline(t *testing.T) {
	// Reserve a port, then close the listener so nothing accepts
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	checker := &DialChecker{addr: addr, timeout: 500 * time.Millisecond}
	assert.False(t, checker.IsOnline())
}
