package format

import (
	"encoding/json"
	"io"
)

// Document is the JSON form of a render result.
type Document struct {
	HTML        string `json:"html"`
	Fingerprint string `json:"fingerprint"`
}

func WriteJSONDocument(w io.Writer, d Document, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(d)
}
