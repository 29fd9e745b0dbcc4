package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsuggest/internal/adapters/driving/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve the search, upload and index endpoints over HTTP.

  GET  /search/:ownerId[/*prefix]   title autocomplete, slashes allowed
  GET  /search?user_id=&title=      same, query-string form
  POST /upload                      multipart upload
  GET  /documents                   all documents
  GET  /categories                  shared category list
  POST /categories                  register categories
  POST /index/rebuild               rebuild now
  GET  /index/stats                 current generation
  GET  /metrics                     Prometheus metrics

The index is rebuilt in the background after uploads and deletes, when the
seed file changes and on the configured interval.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	addr := s.Config.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	stop := startBackground(cmd.Context(), s.Background)
	defer stop()

	server := httpapi.NewServer(addr, httpapi.NewHandlers(s.Suggest, s.Documents, s.Users), s.Metrics)
	cmd.Printf("docsuggest listening on %s\n", addr)
	return server.Run(cmd.Context())
}
