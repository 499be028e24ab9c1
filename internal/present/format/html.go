package format

import "io"

// WriteHTML writes rendered HTML followed by a single newline.
func WriteHTML(w io.Writer, html string) error {
	if _, err := io.WriteString(w, html); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
