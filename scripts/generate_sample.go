// Command generate_sample writes a deterministic sample node document to
// stdout, useful for benchmarking `nodehtml-cli render`.
package main

import (
	"encoding/json"
	"fmt"
	mrand "math/rand"
	"os"

	"github.com/mithrel/nodehtml/pkg/htmlnode"
)

var inline = []string{"b", "i", "code", "span"}

func main() {
	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(42))

	const sections = 50
	body := make([]htmlnode.Node, 0, sections)
	for i := 0; i < sections; i++ {
		// 1–4 paragraphs per section
		k := 1 + mr.Intn(4)
		children := []htmlnode.Node{
			htmlnode.NewLeaf(htmlnode.Tag("h2"), fmt.Sprintf("Section %03d", i+1)),
		}
		for j := 0; j < k; j++ {
			children = append(children, paragraph(mr, i, j))
		}
		body = append(body, htmlnode.NewParent(htmlnode.Tag("section"), children,
			htmlnode.P("id", fmt.Sprintf("s%03d", i+1))...))
	}
	doc := htmlnode.NewParent(htmlnode.Tag("main"), body, htmlnode.P("class", "sample")...)

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		panic(err)
	}
}

func paragraph(r *mrand.Rand, section, n int) htmlnode.Parent {
	parts := []htmlnode.Node{
		htmlnode.Text(fmt.Sprintf("Paragraph %d of section %d with ", n+1, section+1)),
	}
	tag := inline[r.Intn(len(inline))]
	parts = append(parts, htmlnode.NewLeaf(htmlnode.Tag(tag), fmt.Sprintf("%s text", tag)))
	if r.Float64() < 0.3 {
		parts = append(parts,
			htmlnode.Text(" and a "),
			htmlnode.NewLeaf(htmlnode.Tag("a"), "link", htmlnode.P("href", fmt.Sprintf("#s%03d", r.Intn(50)+1))...))
	}
	parts = append(parts, htmlnode.Text("."))
	return htmlnode.NewParent(htmlnode.Tag("p"), parts)
}
