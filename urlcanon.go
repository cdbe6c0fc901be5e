// Package urlcanon re-exports the small surface most callers need —
// Parse, the named pipelines, and the host-reversal helper — so that a
// caller doing nothing exotic never has to import the parser and canon
// subpackages directly. Anything beyond that (match rules, the domain
// decomposer, the scope key, the extractor) lives in its own subpackage
// and is imported directly.
package urlcanon

import (
	"go.source.hueristiq.com/urlcanon/canon"
	"go.source.hueristiq.com/urlcanon/parser"
	"go.source.hueristiq.com/urlcanon/schemes"
)

// SpecialSchemes is schemes.Special, re-exported for convenience.
var SpecialSchemes = schemes.Special

// IsSpecialScheme reports whether scheme is one of SpecialSchemes. See
// schemes.IsSpecial.
func IsSpecialScheme(scheme []byte) bool {
	return schemes.IsSpecial(scheme)
}

// ParsedUrl is parser.ParsedUrl, re-exported for convenience.
type ParsedUrl = parser.ParsedUrl

// Canonicalizer is canon.Canonicalizer, re-exported for convenience.
type Canonicalizer = canon.Canonicalizer

// Parse decomposes input into a ParsedUrl. See parser.Parse.
func Parse(input []byte) *ParsedUrl {
	return parser.Parse(input)
}

// ReverseHost reverses the dotted labels of host for sort-friendly key
// formatting. See parser.ReverseHost.
func ReverseHost(host []byte, trailingComma bool) []byte {
	return parser.ReverseHost(host, trailingComma)
}

// The named canonicalizer pipelines, re-exported from canon.
var (
	WHATWG          = canon.WHATWG
	Google          = canon.Google
	SemanticPrecise = canon.SemanticPrecise
	Semantic        = canon.Semantic
	Aggressive      = canon.Aggressive
)
