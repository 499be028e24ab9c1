package present

import (
	"io"

	"github.com/mithrel/nodehtml/internal/present/format"
)

type Mode int

const (
	ModeHTML Mode = iota
	ModePretty
	ModeJSON
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Title      string
	Pretty     format.PrettyOptions
}

// Result is a finished render ready to be written.
type Result struct {
	HTML        string
	Fingerprint string
}

// ParseMode parses a string like "html", "pretty" or "json".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "html":
		return ModeHTML, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	default:
		return ModeHTML, false
	}
}

// Write writes a render result according to options.
func Write(w io.Writer, r Result, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONDocument(w, format.Document{HTML: r.HTML, Fingerprint: r.Fingerprint}, opts.JSONIndent)
	case ModePretty:
		return format.WritePrettyHTML(w, opts.Title, r.HTML, opts.Pretty)
	default:
		return format.WriteHTML(w, r.HTML)
	}
}
