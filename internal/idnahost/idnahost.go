// Package idnahost is a thin adapter over golang.org/x/net/idna providing
// the two-tier IDNA encoding behavior the punycode_special_host
// canonicalization step needs: a UTS-46 (IDNA2008-ish) primary encoder with
// a lenient Punycode-only fallback, and an identity fallback (lower-cased,
// unchanged) if both fail. Each fallback is applied to the whole host when
// the primary profile rejects it; hosts are not re-encoded label by label. No
// canonicalization step in this module ever errors on a malformed host;
// this package exists so that policy lives in one place.
package idnahost

import (
	"strings"

	"golang.org/x/net/idna"
)

// primary applies UTS-46 processing: Unicode mapping/normalization,
// validity checks relaxed enough to accept the kind of malformed hosts a
// crawler encounters, and Punycode encoding of non-ASCII labels.
var primary = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.CheckHyphens(false),
	idna.StrictDomainName(false),
)

// Encode converts host (UTF-8 text, already lowercased by the caller's
// broader pipeline or not) to its ASCII/Punycode form. It first tries the
// UTS-46 profile; on failure it falls back to the package-level, more
// permissive idna.ToASCII (the Punycode profile: no mapping, minimal
// validation); if that also
// fails, it returns host lowercased and otherwise unchanged, exactly like
// the "identity" leg of punycode_special_host's historical fallback.
func Encode(host []byte) []byte {
	s := string(host)

	if ascii, err := primary.ToASCII(s); err == nil {
		return []byte(ascii)
	}

	if ascii, err := idna.ToASCII(s); err == nil {
		return []byte(ascii)
	}

	return []byte(strings.ToLower(s))
}
