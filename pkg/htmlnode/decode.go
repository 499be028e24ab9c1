package htmlnode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedDocument is returned when a JSON node document cannot be decoded.
var ErrMalformedDocument = errors.New("malformed node document")

// Node documents are JSON objects:
//
//	{"tag": "div", "props": {"class": "box"}, "children": [ ... ]}
//	{"tag": "span", "value": "Hello"}
//	{"value": "raw text"}
//
// An object with a "children" key is a Parent; any other object is a Leaf.

// ReadNode decodes a single node document from r.
func ReadNode(r io.Reader) (Node, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeNode(b)
}

// DecodeNode decodes a node document.
func DecodeNode(data []byte) (Node, error) {
	return decodeNode(data, "$")
}

func decodeNode(data []byte, path string) (Node, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, path, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: %s: node is null", ErrMalformedDocument, path)
	}

	var tag *string
	if raw, ok := fields["tag"]; ok {
		if err := json.Unmarshal(raw, &tag); err != nil {
			return nil, fmt.Errorf("%w: %s.tag: %v", ErrMalformedDocument, path, err)
		}
	}
	var props Props
	if raw, ok := fields["props"]; ok {
		if err := props.UnmarshalJSON(raw); err != nil {
			return nil, fmt.Errorf("%w: %s.props: %v", ErrMalformedDocument, path, err)
		}
	}

	if raw, ok := fields["children"]; ok {
		if _, ok := fields["value"]; ok {
			return nil, fmt.Errorf("%w: %s: node has both value and children", ErrMalformedDocument, path)
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: %s.children: %v", ErrMalformedDocument, path, err)
		}
		var children []Node
		if items != nil {
			children = make([]Node, 0, len(items))
		}
		for i, item := range items {
			c, err := decodeNode(item, fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return Parent{Tag: tag, Children: children, Props: props}, nil
	}

	var value any
	if raw, ok := fields["value"]; ok {
		v, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.value: %v", ErrMalformedDocument, path, err)
		}
		value = v
	}
	return Leaf{Tag: tag, Value: value, Props: props}, nil
}

// decodeValue keeps scalar JSON types; numbers stay as json.Number so they
// render exactly as written.
func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	switch v.(type) {
	case nil, string, bool, json.Number:
		return v, nil
	default:
		return nil, fmt.Errorf("value must be a string, number or boolean, got %s", bytes.TrimSpace(raw))
	}
}

// UnmarshalJSON decodes a JSON object of string values, keeping key order.
func (p *Props) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("props must be an object")
	}
	out := Props{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := kt.(string)
		var val string
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("prop %q: %w", key, err)
		}
		out = append(out, Attr{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = out
	return nil
}

// MarshalJSON encodes props as a JSON object in attribute order.
func (p Props) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, a := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(a.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(a.Value)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

type leafJSON struct {
	Tag   *string `json:"tag,omitempty"`
	Value any     `json:"value,omitempty"`
	Props Props   `json:"props,omitempty"`
}

type parentJSON struct {
	Tag      *string `json:"tag,omitempty"`
	Props    Props   `json:"props,omitempty"`
	Children []Node  `json:"children"`
}

// MarshalJSON encodes the leaf in node document form.
func (l Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(leafJSON{Tag: l.Tag, Value: l.Value, Props: l.Props})
}

// MarshalJSON encodes the parent in node document form. The children key is
// always written so the document decodes back to a Parent.
func (p Parent) MarshalJSON() ([]byte, error) {
	return json.Marshal(parentJSON{Tag: p.Tag, Props: p.Props, Children: p.Children})
}
