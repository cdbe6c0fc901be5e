package extractor

import (
	"go.source.hueristiq.com/urlcanon/canon"
	"go.source.hueristiq.com/urlcanon/parser"
)

// Span is a candidate URL's byte range within the text it was found in,
// along with the raw matched bytes.
type Span struct {
	Start int
	End   int
	Raw   []byte
}

// FindSpans runs e's compiled regex over text and returns every match as a
// Span. It's the byte-offset-preserving counterpart to regexp's
// FindAllString: a crawl pipeline needs the original position in the
// document (for dedup, provenance, or re-fetching context) in addition to
// the matched bytes themselves.
func (e *Extractor) FindSpans(text []byte) []Span {
	regex := e.CompileRegex()

	indices := regex.FindAllIndex(text, -1)
	spans := make([]Span, 0, len(indices))

	for _, idx := range indices {
		spans = append(spans, Span{
			Start: idx[0],
			End:   idx[1],
			Raw:   text[idx[0]:idx[1]],
		})
	}

	return spans
}

// Discovered is one URL found in crawled text, in both its as-found form
// and canonicalized under a chosen pipeline, ready to be indexed or
// enqueued.
type Discovered struct {
	Span      Span
	Parsed    *parser.ParsedUrl
	Canonical *parser.ParsedUrl
}

// Discover finds every URL-shaped span in text, parses it, and runs it
// through pipeline, closing the loop between "found a URL-looking string
// in a fetched document" and "canonical, SURT-keyed form for the index".
func Discover(text []byte, e *Extractor, pipeline *canon.Canonicalizer) []Discovered {
	spans := e.FindSpans(text)
	out := make([]Discovered, 0, len(spans))

	for _, span := range spans {
		parsed := parser.Parse(span.Raw)
		canonical := pipeline.Canonicalize(parser.Parse(span.Raw))

		out = append(out, Discovered{
			Span:      span,
			Parsed:    parsed,
			Canonical: canonical,
		})
	}

	return out
}
