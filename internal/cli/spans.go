package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/nodehtml/internal/present"
)

func newSpansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spans [file|-]",
		Short: "Convert text spans to HTML",
		Long: `Convert text spans (a JSON array or NDJSON) to HTML wrapped in one element.

  {"text": "Read ", "style": "plain"}
  {"text": "the docs", "style": "link", "url": "https://go.dev/doc"}

Styles: plain, bold, italic, code, link, image.`,
		Args: cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			flagKeyPrefix + "output": "render.output",
			flagKeyPrefix + "cache":  "cache.enabled",
			flagKeyPrefix + "pager":  "render.pager",
			flagKeyPrefix + "wrap":   "render.wrap",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			data, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts, err := presentOptions(app, name)
			if err != nil {
				return err
			}
			out, err := app.Renderer.Spans(cmd.Context(), data, app.Cfg.GetString("render.wrap"))
			if err != nil {
				return err
			}
			return writeResult(cmd, app, present.Result{HTML: out.HTML, Fingerprint: out.Fingerprint}, opts)
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().String("wrap", "p", "element wrapping the converted spans")
	return cmd
}
