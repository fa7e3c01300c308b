package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/recall/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		host      string
		port      int
		path      string
		certFile  string
		keyFile   string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server so agents can log entries, browse the timeline and
draft standups and weekly reviews through the Model Context Protocol.

Use --transport stdio when an MCP client starts recall itself.`,
		Example: `
recall mcp --transport stdio
recall mcp --http-port 0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port < 0 || port > 65535 {
				return fmt.Errorf("invalid http-port %d", port)
			}

			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			runner := mcp.Runner{
				Service:  e.Service,
				Name:     "recall",
				Version:  version,
				Path:     path,
				CertFile: strings.TrimSpace(certFile),
				KeyFile:  strings.TrimSpace(keyFile),
				Log:      e.Log,
			}

			switch mcp.Transport(strings.ToLower(strings.TrimSpace(transport))) {
			case "", mcp.TransportHTTP:
				runner.Transport = mcp.TransportHTTP
				runner.Addr = net.JoinHostPort(strings.TrimSpace(host), strconv.Itoa(port))
				runner.OnListening = func(url string) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", url)
				}
			case mcp.TransportStdio:
				// stdout belongs to the protocol from here on.
				runner.Transport = mcp.TransportStdio
			default:
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", transport)
			}

			return runner.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&host, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&port, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&path, "http-path", mcp.DefaultPath, "HTTP endpoint path")
	cmd.Flags().StringVar(&certFile, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&keyFile, "http-tls-key", "", "TLS private key file for HTTPS")
	_ = cmd.RegisterFlagCompletionFunc("transport", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(mcp.TransportHTTP), string(mcp.TransportStdio)}, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
