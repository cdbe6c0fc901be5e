// Package canon implements the canonicalization step library and the named
// pipelines (WHATWG, Google, SemanticPrecise, Semantic, Aggressive) that
// compose them. Each step is an independent function that mutates one or
// more fields of a parser.ParsedUrl in place; a Canonicalizer is simply an
// ordered list of steps run left to right.
package canon

import "go.source.hueristiq.com/urlcanon/parser"

// Step mutates one or more fields of u in place.
type Step func(u *parser.ParsedUrl)

// Canonicalizer owns an ordered, immutable list of Steps. It is safe for
// concurrent use by multiple goroutines, since applying it only ever
// mutates the ParsedUrl passed in, never the Canonicalizer itself.
type Canonicalizer struct {
	steps []Step
}

// New builds a Canonicalizer that runs steps, in order, against whatever
// ParsedUrl it is applied to.
func New(steps ...Step) *Canonicalizer {
	return &Canonicalizer{steps: steps}
}

// Canonicalize runs every step of c against u, in order, and returns u for
// convenient chaining.
func (c *Canonicalizer) Canonicalize(u *parser.ParsedUrl) *parser.ParsedUrl {
	for _, step := range c.steps {
		step(u)
	}

	return u
}
