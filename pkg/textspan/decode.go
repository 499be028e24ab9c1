package textspan

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ReadSpans decodes spans from r. The input is either a JSON array of span
// objects or newline-delimited span objects. Empty input yields no spans.
func ReadSpans(r io.Reader) ([]Span, error) {
	br := bufio.NewReader(r)
	first, err := peekFirstNonSpace(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	dec := json.NewDecoder(br)
	if first == '[' {
		var spans []Span
		if err := dec.Decode(&spans); err != nil {
			return nil, fmt.Errorf("decode spans: %w", err)
		}
		return spans, nil
	}

	var spans []Span
	for i := 0; ; i++ {
		var s Span
		if err := dec.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode span %d: %w", i, err)
		}
		spans = append(spans, s)
	}
	return spans, nil
}

func peekFirstNonSpace(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b == ' ' || b == '\n' || b == '\r' || b == '\t' {
			continue
		}
		if err := r.UnreadByte(); err != nil {
			return 0, err
		}
		return b, nil
	}
}
