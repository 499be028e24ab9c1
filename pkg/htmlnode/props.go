package htmlnode

import "strings"

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Props is an ordered attribute list. Order is preserved on output.
type Props []Attr

// P builds Props from alternating key/value pairs. A trailing key without a
// value is dropped.
func P(kv ...string) Props {
	if len(kv) < 2 {
		return nil
	}
	out := make(Props, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, Attr{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

// Get returns the value of the first attribute named key.
func (p Props) Get(key string) (string, bool) {
	for _, a := range p {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// ToHTML renders each attribute as ` key="value"`. Values are written
// verbatim; no escaping is done.
func (p Props) ToHTML() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range p {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	return b.String()
}
