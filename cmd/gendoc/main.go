//go:build ignore

// gendoc writes man pages for gcm and its subcommands.
//
//	go run cmd/gendoc/main.go [dir]
package main

import (
	"fmt"
	"os"

	"github.com/samzong/gcm/cmd"
	"github.com/spf13/cobra/doc"
)

func main() {
	dir := "./docs/man"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	if err := doc.GenManTree(cmd.RootCmd(), cmd.ManHeader(), dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Man pages generated in %s\n", dir)
}
