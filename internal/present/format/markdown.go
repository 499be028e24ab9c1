package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// PrettyOptions configures the glamour renderer.
type PrettyOptions struct {
	Style    string
	WordWrap int
}

// WritePrettyHTML shows rendered HTML as a highlighted code block using glamour.
func WritePrettyHTML(w io.Writer, title, html string, opts PrettyOptions) error {
	style := opts.Style
	if style == "" {
		style = "dracula"
	}
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}
	b.WriteString("```html\n")
	b.WriteString(html)
	b.WriteString("\n```\n")

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(opts.WordWrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(b.String())
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
