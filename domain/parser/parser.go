// Package parser decomposes a dotted host string into subdomain, SLD, and
// TLD using a suffix-array lookup over tlds.Official/tlds.Pseudo.
package parser

import (
	"index/suffixarray"
	"strings"

	"go.source.hueristiq.com/urlcanon/domain"
	"go.source.hueristiq.com/urlcanon/tlds"
)

// Parser splits a host into subdomain/SLD/TLD by walking its dot-separated
// labels from the right and testing each candidate suffix against a known
// TLD list via suffix-array lookup, so a subdomain label that happens to
// look like a TLD (e.g. "co" in "co.example.com") isn't mistaken for one.
type Parser struct {
	sa *suffixarray.Index
}

// Parse splits unparsed (e.g. "www.example.com") into Subdomain/SLD/TLD. A
// host with no recognized TLD (a single label, or no label matching the
// suffix-array's TLD set) is returned entirely as SLD, matching
// domain.Domain's documented "undecomposable host" case.
func (p *Parser) Parse(unparsed string) (parsed *domain.Domain) {
	parsed = &domain.Domain{}

	parts := strings.Split(unparsed, ".")

	if len(parts) <= 1 {
		parsed.SLD = unparsed

		return
	}

	tldOffset := p.findTLDOffset(parts)

	if tldOffset < 0 {
		parsed.SLD = unparsed

		return
	}

	parsed.Subdomain = strings.Join(parts[:tldOffset], ".")
	parsed.SLD = parts[tldOffset]
	parsed.TLD = strings.Join(parts[tldOffset+1:], ".")

	return
}

// findTLDOffset walks parts right-to-left, extending the candidate TLD
// suffix one label at a time for as long as the suffix array holds it as
// a whole TLD entry, and returns the index of the label just before the longest matching
// TLD suffix (the SLD), or -1 if no suffix matched at all.
func (p *Parser) findTLDOffset(parts []string) (offset int) {
	offset = -1

	for i := len(parts) - 1; i >= 0; i-- {
		candidate := strings.Join(parts[i:], ".")

		if len(p.sa.Lookup([]byte("\x00"+candidate+"\x00"), 1)) > 0 {
			offset = i - 1
		} else {
			break
		}
	}

	return
}

// Interface is the contract domain/parser.Parser satisfies; scope and
// other callers depend on this rather than the concrete type so a custom
// TLD set (via WithTLDs) is a drop-in replacement.
type Interface interface {
	Parse(unparsed string) (parsed *domain.Domain)
}

// OptionFunc configures a Parser at construction time.
type OptionFunc func(*Parser)

var _ Interface = &Parser{}

// New builds a Parser over the combined Official and Pseudo TLD tables,
// applying any opts (e.g. WithTLDs) afterward.
func New(opts ...OptionFunc) (parser *Parser) {
	parser = &Parser{}

	allTLDs := make([]string, 0, len(tlds.Official)+len(tlds.Pseudo))
	allTLDs = append(allTLDs, tlds.Official...)
	allTLDs = append(allTLDs, tlds.Pseudo...)

	parser.sa = suffixarray.New([]byte("\x00" + strings.Join(allTLDs, "\x00") + "\x00"))

	for _, opt := range opts {
		opt(parser)
	}

	return
}

// WithTLDs replaces the default TLD table with a caller-supplied set,
// useful for scoping a crawl to a private or non-standard TLD namespace.
func WithTLDs(tlds ...string) OptionFunc {
	return func(p *Parser) {
		p.sa = suffixarray.New([]byte("\x00" + strings.Join(tlds, "\x00") + "\x00"))
	}
}
