package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/titpetric/cssc"
)

func main() {
	style := flag.String("style", "nested", "output style: nested, expanded, compact, compressed, debug, tokens, ast")
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: cssc [-style style] [-o output] <input-file>\n")
		os.Exit(1)
	}

	if err := compileFile(args[0], *out, *style); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func compileFile(inputPath, outputPath, style string) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	w := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return cssc.Compile(string(source), cssc.Style(style), f)
	}

	return cssc.Compile(string(source), cssc.Style(style), w)
}
