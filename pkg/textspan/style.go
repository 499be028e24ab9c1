package textspan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Style describes how a span of inline text is formatted.
type Style int

const (
	Plain Style = iota
	Bold
	Italic
	Code
	Link
	Image
)

var styleNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

// ErrUnknownStyle is returned when a style name does not match any Style.
var ErrUnknownStyle = errors.New("unknown style")

// Styles returns every style in declaration order.
func Styles() []Style {
	return []Style{Plain, Bold, Italic, Code, Link, Image}
}

// Valid reports whether s is one of the declared styles.
func (s Style) Valid() bool {
	return s >= Plain && s <= Image
}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle parses a style name, case-insensitively. "text" is accepted as
// an alias for plain.
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "text" {
		return Plain, nil
	}
	for i, sn := range styleNames {
		if sn == n {
			return Style(i), nil
		}
	}
	if hints := SuggestStyles(n, 2); len(hints) > 0 {
		return Plain, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownStyle, name, strings.Join(hints, " or "))
	}
	return Plain, fmt.Errorf("%w %q", ErrUnknownStyle, name)
}

// SuggestStyles returns up to n style names that fuzzy-match input.
func SuggestStyles(input string, n int) []string {
	if input == "" {
		return nil
	}
	matches := fuzzy.Find(input, styleNames[:])
	if len(matches) == 0 {
		return nil
	}
	limit := n
	if n <= 0 || len(matches) < limit {
		limit = len(matches)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].Str
	}
	return out
}

// MarshalText encodes the style as its name.
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a style name.
func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
