package mcp

import (
	"bytes"
	"context"
	"net"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/recall/pkg/app"
	"tableflip.dev/recall/pkg/store"
)

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"":       DefaultPath,
		"   ":    DefaultPath,
		"mcp":    "/mcp",
		"/rpc":   "/rpc",
		" api/ ": "/api/",
	}
	for in, want := range tests {
		if got := NormalizePath(in); got != want {
			t.Errorf("NormalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestListenURL(t *testing.T) {
	tests := []struct {
		name   string
		secure bool
		addr   net.Addr
		path   string
		want   string
	}{{
		name: "loopback",
		addr: &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 8080},
		path: "/mcp",
		want: "http://127.0.0.1:8080/mcp",
	}, {
		name: "unspecified shown as loopback",
		addr: &net.TCPAddr{IP: net.IPv4zero, Port: 9000},
		want: "http://127.0.0.1:9000/mcp",
	}, {
		name:   "ipv6 over tls",
		secure: true,
		addr:   &net.TCPAddr{IP: net.ParseIP("::1"), Port: 443},
		path:   "rpc",
		want:   "https://[::1]:443/rpc",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ListenURL(tt.secure, tt.addr, tt.path); got != tt.want {
				t.Fatalf("ListenURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunnerErrors(t *testing.T) {
	if err := (Runner{}).Do(context.Background()); err == nil {
		t.Fatalf("expected an error without a service")
	}

	svc := app.Open(store.NewMemory())
	if err := (Runner{Service: svc, Transport: "carrier-pigeon"}).Do(context.Background()); err == nil {
		t.Fatalf("expected an error for an unknown transport")
	}
	err := (Runner{Service: svc, CertFile: "cert.pem"}).Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "cert and key") {
		t.Fatalf("expected a tls pairing error, got %v", err)
	}
}

func TestRunnerHTTPShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listening := make(chan string, 1)
	r := Runner{
		Service:     app.Open(store.NewMemory()),
		Addr:        "127.0.0.1:0",
		Path:        "rpc",
		OnListening: func(url string) { listening <- url },
	}

	done := make(chan error, 1)
	go func() { done <- r.Do(ctx) }()

	select {
	case url := <-listening:
		if !strings.HasPrefix(url, "http://127.0.0.1:") || !strings.HasSuffix(url, "/rpc") {
			t.Fatalf("unexpected url %q", url)
		}
	case err := <-done:
		t.Fatalf("runner exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for the listener")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected a clean shutdown, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("timed out waiting for shutdown")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunnerServeFailureReleasesShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var logs syncBuffer
	dir := t.TempDir()
	r := Runner{
		Service:  app.Open(store.NewMemory()),
		Addr:     "127.0.0.1:0",
		CertFile: filepath.Join(dir, "missing.crt"),
		KeyFile:  filepath.Join(dir, "missing.key"),
		Log:      zerolog.New(&logs).Level(zerolog.DebugLevel),
	}
	if err := r.Do(ctx); err == nil {
		t.Fatalf("expected serving with missing certificates to fail")
	}

	// a cancel after serving ended must not reach the shutdown path
	cancel()
	time.Sleep(50 * time.Millisecond)
	if strings.Contains(logs.String(), "mcp shutting down") {
		t.Fatalf("shutdown ran after serving had already failed:\n%s", logs.String())
	}
}
