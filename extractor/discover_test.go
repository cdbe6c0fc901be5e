package extractor_test

import (
	"testing"

	"go.source.hueristiq.com/urlcanon/canon"
	"go.source.hueristiq.com/urlcanon/extractor"
)

func TestFindSpans(t *testing.T) {
	t.Parallel()

	e := extractor.New(extractor.WithScheme())

	text := []byte("see http://example.com/a and https://example.org/b for details")

	spans := e.FindSpans(text)
	if len(spans) != 2 {
		t.Fatalf("FindSpans() returned %d spans; want 2", len(spans))
	}

	for _, span := range spans {
		if string(text[span.Start:span.End]) != string(span.Raw) {
			t.Errorf("span bytes %q don't match text[%d:%d] %q", span.Raw, span.Start, span.End, text[span.Start:span.End])
		}
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	e := extractor.New(extractor.WithScheme())

	text := []byte("visit HTTP://Example.COM/a/../b now")

	found := extractor.Discover(text, e, canon.WHATWG)
	if len(found) != 1 {
		t.Fatalf("Discover() returned %d results; want 1", len(found))
	}

	got := string(found[0].Canonical.Bytes())
	want := "http://example.com/b"

	if got != want {
		t.Errorf("Discover()[0].Canonical = %q; want %q", got, want)
	}
}
