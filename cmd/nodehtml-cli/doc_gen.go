//go:build ignore
// +build ignore

// doc_gen writes markdown and man pages for nodehtml-cli.
//
//	go run ./cmd/nodehtml-cli/doc_gen.go -out docs
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra/doc"

	"github.com/mithrel/nodehtml/internal/cli"
)

func main() {
	out := flag.String("out", "docs", "output directory")
	flag.Parse()

	root := cli.NewRootCmd()
	root.DisableAutoGenTag = true

	mdDir := filepath.Join(*out, "markdown")
	manDir := filepath.Join(*out, "man")
	for _, dir := range []string{mdDir, manDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	if err := doc.GenMarkdownTree(root, mdDir); err != nil {
		log.Fatal(err)
	}
	header := &doc.GenManHeader{
		Title:   "NODEHTML-CLI",
		Section: "1",
		Source:  "nodehtml",
		Manual:  "nodehtml manual",
	}
	if err := doc.GenManTree(root, header, manDir); err != nil {
		log.Fatal(err)
	}
}
