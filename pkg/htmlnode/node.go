// Package htmlnode is a small document-node model that serializes a
// caller-built tree of nodes to HTML text.
//
// A Node is either a Leaf (a single value, optionally wrapped in a tag) or a
// Parent (a tag wrapping the concatenated output of its children). Nodes are
// never validated on construction; invalid trees fail when rendered.
package htmlnode

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Node is a renderable unit of a document tree. Leaf and Parent are the only
// implementations.
type Node interface {
	ToHTML() (string, error)
	node()
}

// Leaf is a childless node. A nil Tag renders the value as raw text; a nil
// Value cannot be rendered.
type Leaf struct {
	Tag   *string
	Value any
	Props Props
}

// Parent is a container node. Tag and a non-empty Children are required at
// render time.
//
// Trees are built bottom-up and must be acyclic: a Parent must not be
// reachable from its own Children. NewParent copies the children slice, but
// assigning into Children afterwards can still introduce a cycle.
type Parent struct {
	Tag      *string
	Children []Node
	Props    Props
}

func (Leaf) node()   {}
func (Parent) node() {}

// Tag returns a pointer to s for use as a node tag.
func Tag(s string) *string { return &s }

// NewLeaf returns a Leaf with the given tag, value and optional props.
func NewLeaf(tag *string, value any, props ...Attr) Leaf {
	return Leaf{Tag: tag, Value: value, Props: propsOrNil(props)}
}

// Text returns an untagged Leaf.
func Text(value any) Leaf {
	return Leaf{Value: value}
}

// NewParent returns a Parent with the given tag, children and optional props.
// The children slice is copied.
func NewParent(tag *string, children []Node, props ...Attr) Parent {
	return Parent{Tag: tag, Children: slices.Clone(children), Props: propsOrNil(props)}
}

func propsOrNil(props []Attr) Props {
	if len(props) == 0 {
		return nil
	}
	return Props(props)
}

// Render renders n to HTML. Only Leaf and Parent values are accepted;
// nil and pointer nodes fail with ErrInvalidContainer.
func Render(n Node) (string, error) {
	switch t := n.(type) {
	case Leaf:
		return t.ToHTML()
	case Parent:
		return t.ToHTML()
	case nil:
		return "", fmt.Errorf("%w: nil node", ErrInvalidContainer)
	default:
		return "", fmt.Errorf("%w: unsupported node %T", ErrInvalidContainer, n)
	}
}

// ToHTML renders the leaf.
func (l Leaf) ToHTML() (string, error) {
	if l.Value == nil {
		return "", fmt.Errorf("render %s: %w", describe(l.Tag), ErrMissingValue)
	}
	v := stringify(l.Value)
	if l.Tag == nil {
		return v, nil
	}
	var b strings.Builder
	open(&b, *l.Tag, l.Props)
	b.WriteString(v)
	closeTag(&b, *l.Tag)
	return b.String(), nil
}

// ToHTML renders the parent and, recursively, all of its children.
func (p Parent) ToHTML() (string, error) {
	if p.Tag == nil {
		return "", fmt.Errorf("render parent: %w: missing tag", ErrInvalidContainer)
	}
	if len(p.Children) == 0 {
		return "", fmt.Errorf("render <%s>: %w: no children", *p.Tag, ErrInvalidContainer)
	}
	var b strings.Builder
	open(&b, *p.Tag, p.Props)
	for i, c := range p.Children {
		switch c.(type) {
		case Leaf, Parent:
		default:
			return "", fmt.Errorf("render <%s> child %d: %w: unsupported node %T", *p.Tag, i, ErrInvalidContainer, c)
		}
		s, err := Render(c)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	closeTag(&b, *p.Tag)
	return b.String(), nil
}

func open(b *strings.Builder, tag string, props Props) {
	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteString(props.ToHTML())
	b.WriteByte('>')
}

func closeTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

func describe(tag *string) string {
	if tag == nil {
		return "text leaf"
	}
	return "<" + *tag + ">"
}

// stringify returns the text form of a leaf value. Booleans are written
// capitalized.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case fmt.Stringer:
		return t.String()
	case bool:
		if t {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
