package endpoint

import (
	"context"
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe(t *testing.T) {
	t.Setenv("ALL_PROXY", "")
	t.Setenv("all_proxy", "")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			c.Close()
		}
	}()

	u := &url.URL{Scheme: "http", Host: ln.Addr().String(), Path: "/"}
	require.NoError(t, Probe(context.Background(), u, time.Second))

	ln.Close()
	assert.Error(t, Probe(context.Background(), u, time.Second))
}

func TestHostPort(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"http://localhost:3000/", "localhost:3000"},
		{"https://www.jortaskmanager.com/", "www.jortaskmanager.com:443"},
		{"http://example.com", "example.com:80"},
	}
	for _, tt := range tests {
		u, err := url.Parse(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, hostPort(u))
	}
}
