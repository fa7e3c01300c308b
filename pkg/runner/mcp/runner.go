package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"tableflip.dev/recall/pkg/app"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

const (
	DefaultAddr = "127.0.0.1:8080"
	DefaultPath = "/mcp"

	shutdownGrace = 5 * time.Second
)

const instructions = `Read and write a personal daily log. Entries are did, plan, blocker or note items with optional tags, minutes, mood and detail.
Use list_entries to browse by day, standup and weekly_review for ready to paste summaries, and add_entry to record what happened.`

// Runner coordinates MCP server startup.
type Runner struct {
	Service *app.Service
	Name    string
	Version string

	Transport Transport
	// Addr and Path locate the HTTP endpoint.
	Addr string
	Path string
	// CertFile and KeyFile switch HTTP to HTTPS when both are set.
	CertFile string
	KeyFile  string
	// OnListening is called with the endpoint URL once HTTP accepts
	// connections.
	OnListening func(url string)

	Log zerolog.Logger
}

// NewServer registers the recall tools and resources on a new MCP server.
func NewServer(svc *app.Service, name, version string) *server.MCPServer {
	if name == "" {
		name = "recall"
	}
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	wrapped := NewService(svc)
	registerResources(srv, wrapped)
	registerTools(srv, wrapped)
	return srv
}

// Do serves until ctx is cancelled or the transport fails.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("mcp runner requires an entry store")
	}
	srv := NewServer(r.Service, r.Name, r.Version)

	switch t := r.Transport; t {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		r.Log.Debug().Msg("serving mcp on stdio")
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

// NormalizePath makes p an absolute endpoint path, DefaultPath when blank.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return DefaultPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// ListenURL is the URL clients should use for a listener bound to addr.
// Unspecified hosts are shown as loopback.
func ListenURL(secure bool, addr net.Addr, path string) string {
	scheme := "http"
	if secure {
		scheme = "https"
	}
	host, port := addr.String(), ""
	if tcp, ok := addr.(*net.TCPAddr); ok {
		host = "127.0.0.1"
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
		port = fmt.Sprint(tcp.Port)
	}
	if port != "" {
		host = net.JoinHostPort(host, port)
	}
	return fmt.Sprintf("%s://%s%s", scheme, host, NormalizePath(path))
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	if (r.CertFile == "") != (r.KeyFile == "") {
		return errors.New("both http tls cert and key must be provided")
	}
	secure := r.CertFile != ""

	path := NormalizePath(r.Path)
	addr := r.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	url := ListenURL(secure, ln.Addr(), path)
	r.Log.Info().Str("url", url).Msg("mcp listening")
	if r.OnListening != nil {
		r.OnListening(url)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	served := make(chan struct{})
	defer close(served)
	go func() {
		select {
		case <-served:
			return
		case <-ctx.Done():
		}
		r.Log.Debug().Msg("mcp shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if secure {
		err = httpSrv.ServeTLS(ln, r.CertFile, r.KeyFile)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
