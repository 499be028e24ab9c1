package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mithrel/nodehtml/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP render endpoints",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			flagKeyPrefix + "listen": "http_addr",
			flagKeyPrefix + "cache":  "cache.enabled",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.New(app.Cfg, app.Renderer, app.Log).Run(ctx)
		},
	}
	cmd.Flags().String("listen", "", "listen address (overrides http_addr)")
	cmd.Flags().Bool("cache", false, "reuse cached output keyed by input digest")
	return cmd
}
