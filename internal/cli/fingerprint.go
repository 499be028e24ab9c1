package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/nodehtml/internal/render"
)

func newFingerprintCmd() *cobra.Command {
	var spans bool
	cmd := &cobra.Command{
		Use:   "fingerprint [file|-]",
		Short: "Print the BLAKE3 digest of the rendered HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			data, _, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var out render.Output
			if spans {
				out, err = app.Renderer.Spans(cmd.Context(), data, app.Cfg.GetString("render.wrap"))
			} else {
				out, err = app.Renderer.Document(cmd.Context(), data)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Fingerprint)
			return nil
		},
	}
	cmd.Flags().BoolVar(&spans, "spans", false, "input is text spans instead of a node document")
	return cmd
}
