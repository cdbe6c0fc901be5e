// Command urlcanon canonicalizes URLs (or prints their SURT/SSURT keys)
// and extracts URL-shaped spans from text. It has no mode for evaluating
// match rules. It is a thin driver over the library packages: all of its logic is
// reading input, picking a pipeline, and writing output.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"

	"go.source.hueristiq.com/urlcanon/canon"
	"go.source.hueristiq.com/urlcanon/extractor"
	"go.source.hueristiq.com/urlcanon/parser"
)

type options struct {
	pipeline string
	file     string
	extract  bool
	surt     bool
	ssurt    bool
}

var pipelines = map[string]*canon.Canonicalizer{
	"whatwg":           canon.WHATWG,
	"google":           canon.Google,
	"semantic_precise": canon.SemanticPrecise,
	"semantic":         canon.Semantic,
	"aggressive":       canon.Aggressive,
}

func parseFlags() *options {
	opts := &options{}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("urlcanon canonicalizes URLs for web-archiving and crawl pipelines.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.file, "file", "f", "", "file to read URLs from (default: stdin)"),
		flagSet.BoolVarP(&opts.extract, "extract", "e", false, "treat input as free text and extract URL-shaped spans instead of one URL per line"),
	)

	flagSet.CreateGroup("canonicalization", "Canonicalization",
		flagSet.StringVarP(&opts.pipeline, "pipeline", "p", "whatwg", "canonicalizer pipeline: whatwg, google, semantic_precise, semantic, aggressive"),
		flagSet.BoolVarP(&opts.surt, "surt", "s", false, "print the SURT key instead of the canonicalized URL"),
		flagSet.BoolVarP(&opts.ssurt, "ssurt", "S", false, "print the SSURT key instead of the canonicalized URL"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("failed to parse flags: %s", err)
	}

	return opts
}

func main() {
	opts := parseFlags()

	pipeline, ok := pipelines[opts.pipeline]
	if !ok {
		gologger.Fatal().Msgf("unknown pipeline %q", opts.pipeline)
	}

	input := os.Stdin

	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			gologger.Fatal().Msgf("failed to open %q: %s", opts.file, err)
		}

		defer f.Close()

		input = f
	}

	if opts.extract {
		runExtract(input, pipeline)
	} else {
		runCanonicalize(input, pipeline, opts)
	}
}

func runCanonicalize(r io.Reader, pipeline *canon.Canonicalizer, opts *options) {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		u := pipeline.Canonicalize(parser.Parse(line))

		switch {
		case opts.surt:
			fmt.Println(string(u.SURT(true, true)))
		case opts.ssurt:
			fmt.Println(string(u.SSURT()))
		default:
			fmt.Println(u.String())
		}
	}

	if err := scanner.Err(); err != nil {
		gologger.Fatal().Msgf("error reading input: %s", err)
	}
}

func runExtract(r io.Reader, pipeline *canon.Canonicalizer) {
	text, err := io.ReadAll(r)
	if err != nil {
		gologger.Fatal().Msgf("error reading input: %s", err)
	}

	e := extractor.New(extractor.WithScheme())

	for _, found := range extractor.Discover(text, e, pipeline) {
		fmt.Printf("%d\t%d\t%s\n", found.Span.Start, found.Span.End, found.Canonical.String())
	}
}
