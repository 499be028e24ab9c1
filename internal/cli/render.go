package cli

import (
	"github.com/spf13/cobra"

	"github.com/mithrel/nodehtml/internal/present"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a JSON node document to HTML",
		Long: `Render a JSON node document to HTML.

A document is a tree of objects. An object with "children" is a parent node;
any other object is a leaf:

  {"tag": "div", "props": {"class": "box"}, "children": [
    {"value": "Hello "},
    {"tag": "b", "value": "world"}
  ]}`,
		Args: cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			flagKeyPrefix + "output": "render.output",
			flagKeyPrefix + "cache":  "cache.enabled",
			flagKeyPrefix + "pager":  "render.pager",
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
			out, err := app.Renderer.Document(cmd.Context(), data)
			if err != nil {
				return err
			}
			return writeResult(cmd, app, present.Result{HTML: out.HTML, Fingerprint: out.Fingerprint}, opts)
		},
	}
	addOutputFlags(cmd)
	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "html", "output mode: html|pretty|json")
	cmd.Flags().Bool("cache", false, "reuse cached output keyed by input digest")
	cmd.Flags().Bool("pager", true, "page output when stdout is a terminal")
}
