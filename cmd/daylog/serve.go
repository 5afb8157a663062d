// ABOUTME: CLI command for serving the static view directory over HTTP.
// ABOUTME: Stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/harperreed/daylog/internal/config"
	"github.com/harperreed/daylog/internal/web"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
	serveRoot string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the view directory over HTTP",
	Long: `Serve static files from a directory.

"/" serves index.html. Any other path is read from the directory and sent
as text/html; missing files get a 404. Only GET and HEAD are answered.

EXAMPLES:

  daylog serve                          # http://localhost:3000 from ./view
  daylog serve --addr 127.0.0.1:8080 --root ~/site`,
	Annotations: map[string]string{noStore: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		root := config.ExpandPath(serveRoot)
		ln, err := net.Listen("tcp", serveAddr)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", serveAddr, err)
		}

		success(cmd.OutOrStdout(), "Serving %s on http://%s", root, ln.Addr())
		return web.Serve(ctx, ln, web.NewFileServer(root, logger), logger)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":3000", "listen address")
	serveCmd.Flags().StringVar(&serveRoot, "root", "./view", "document root")
	rootCmd.AddCommand(serveCmd)
}
