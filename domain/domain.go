// Package domain decomposes a registrable host into its subdomain, second-level
// domain (SLD), and top-level domain (TLD) components, using the suffix-array
// lookup implemented by domain/parser over the tlds package's TLD tables.
package domain

import "strings"

// Domain holds the result of splitting a host into its three conventional
// components. Any of the three may be empty: a bare TLD-less host (e.g. an
// intranet name like "printer") is represented entirely in SLD, and a host
// with no subdomain leaves Subdomain empty.
type Domain struct {
	// Subdomain is everything to the left of the SLD, e.g. "www" or "a.b" in
	// "a.b.example.com".
	Subdomain string

	// SLD is the second-level domain label, e.g. "example" in "www.example.com".
	SLD string

	// TLD is the matched top-level/effective top-level domain, e.g. "com" or
	// "co.uk".
	TLD string
}

// String reassembles the three components back into a dotted domain string.
func (d *Domain) String() string {
	parts := make([]string, 0, 3)

	if d.Subdomain != "" {
		parts = append(parts, d.Subdomain)
	}

	if d.SLD != "" {
		parts = append(parts, d.SLD)
	}

	if d.TLD != "" {
		parts = append(parts, d.TLD)
	}

	return strings.Join(parts, ".")
}
