package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mithrel/nodehtml/internal/convert"
	"github.com/mithrel/nodehtml/pkg/htmlnode"
	"github.com/mithrel/nodehtml/pkg/textspan"
)

var (
	nameStyle = lipgloss.NewStyle().Width(8)
	htmlStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func sampleStyle(s textspan.Style) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch s {
	case textspan.Bold:
		return base.Bold(true)
	case textspan.Italic:
		return base.Italic(true)
	case textspan.Code:
		return base.Foreground(lipgloss.Color("212"))
	case textspan.Link:
		return base.Underline(true).Foreground(lipgloss.Color("39"))
	case textspan.Image:
		return base.Faint(true)
	default:
		return base
	}
}

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List text span styles and the HTML each produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, st := range textspan.Styles() {
				span := textspan.New("sample", st)
				if st == textspan.Link || st == textspan.Image {
					span = span.WithURL("https://example.com")
				}
				leaf, err := convert.SpanToLeaf(span)
				if err != nil {
					return err
				}
				html, err := htmlnode.Render(leaf)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n",
					nameStyle.Render(st.String()),
					sampleStyle(st).Render("sample"),
					htmlStyle.Render(html))
			}
			return nil
		},
	}
}
