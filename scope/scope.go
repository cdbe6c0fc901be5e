// Package scope derives a crawl-scoping key from an already-canonicalized
// URL's host: the registrable-domain grouping ("SLD.TLD") that a scope
// policy engine uses to decide whether two URLs belong to "the same
// site" without re-deriving it ad hoc from match.Rule conditions every
// time. It is built on top of domain/parser's suffix-array TLD
// decomposition and never parses raw, uncanonicalized input itself.
package scope

import (
	"net/netip"

	domainparser "go.source.hueristiq.com/urlcanon/domain/parser"
	"go.source.hueristiq.com/urlcanon/parser"
)

// SiteKey is the registrable-domain grouping key of a host: "SLD.TLD" for
// an ordinary DNS name, or the literal host (IP address or
// otherwise-undecomposable string) when no TLD could be identified.
type SiteKey string

var decomposer = domainparser.New()

// HostSiteKey derives a SiteKey from a bare host, as found in
// parser.ParsedUrl.Host after canonicalization.
func HostSiteKey(host []byte) SiteKey {
	if _, err := netip.ParseAddr(trimBrackets(host)); err == nil {
		return SiteKey(host)
	}

	d := decomposer.Parse(string(host))

	if d.SLD == "" || d.TLD == "" {
		return SiteKey(host)
	}

	return SiteKey(d.SLD + "." + d.TLD)
}

// URLSiteKey derives a SiteKey from a ParsedUrl's Host field. Callers
// should pass a URL that has already gone through a canon.Canonicalizer,
// since scope decisions over uncanonicalized hosts (differing case,
// trailing dots, etc.) are unreliable.
func URLSiteKey(u *parser.ParsedUrl) SiteKey {
	return HostSiteKey(u.Host)
}

func trimBrackets(host []byte) string {
	if len(host) >= 2 && host[0] == '[' && host[len(host)-1] == ']' {
		return string(host[1 : len(host)-1])
	}

	return string(host)
}
