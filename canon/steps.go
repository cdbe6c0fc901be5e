package canon

import (
	"bytes"
	"regexp"
	"sort"

	"go.source.hueristiq.com/urlcanon/internal/idnahost"
	"go.source.hueristiq.com/urlcanon/parser"
	"go.source.hueristiq.com/urlcanon/schemes"
)

// RemoveLeadingTrailingJunk discards the junk bytes Parse tolerated at the
// very start and end of the raw input (ASCII control characters and space).
func RemoveLeadingTrailingJunk(u *parser.ParsedUrl) {
	u.LeadingJunk = nil
	u.TrailingJunk = nil
}

// RemoveTabsAndNewlines deletes tab, newline, and carriage-return bytes
// from every textual field except LeadingJunk and TrailingJunk, mirroring the WHATWG URL parser's first pass over its
// input.
func RemoveTabsAndNewlines(u *parser.ParsedUrl) {
	u.Scheme = stripTabNewline(u.Scheme)
	u.Slashes = stripTabNewline(u.Slashes)
	u.Username = stripTabNewline(u.Username)
	u.Password = stripTabNewline(u.Password)
	u.Host = stripTabNewline(u.Host)
	u.Port = stripTabNewline(u.Port)
	u.Path = stripTabNewline(u.Path)
	u.Query = stripTabNewline(u.Query)
	u.Fragment = stripTabNewline(u.Fragment)
}

// LowercaseScheme lowercases the ASCII letters of Scheme.
func LowercaseScheme(u *parser.ParsedUrl) {
	u.Scheme = toLowerASCII(u.Scheme)
}

// FixBackslashes rewrites '\' as '/' in Slashes and Path, but only for
// special schemes, where browsers treat the two interchangeably.
func FixBackslashes(u *parser.ParsedUrl) {
	if !schemes.IsSpecial(u.Scheme) {
		return
	}

	u.Slashes = bytes.ReplaceAll(u.Slashes, []byte(`\`), []byte("/"))
	u.Path = bytes.ReplaceAll(u.Path, []byte(`\`), []byte("/"))
}

// NormalizePathDots resolves "." and ".." path segments.
func NormalizePathDots(u *parser.ParsedUrl) {
	u.Path = resolvePathDots(u.Path, schemes.IsSpecial(u.Scheme))
}

// PctEncodePath percent-encodes Path under the path encode set, except
// that a non-special URL whose path never starts with '/' (e.g.
// "mailto:joe@example.com") only gets the minimal C0 treatment, since it
// has no hierarchical structure to protect.
func PctEncodePath(u *parser.ParsedUrl) {
	if (len(u.Path) > 0 && u.Path[0] == '/') || schemes.IsSpecial(u.Scheme) {
		u.Path = pctEncode(u.Path, &pathEncodeSet)
	} else {
		u.Path = pctEncode(u.Path, &c0EncodeSet)
	}
}

// PctEncodeUserinfo percent-encodes Username and Password under the
// userinfo encode set.
func PctEncodeUserinfo(u *parser.ParsedUrl) {
	u.Username = pctEncode(u.Username, &userinfoEncodeSet)
	u.Password = pctEncode(u.Password, &userinfoEncodeSet)
}

// PctEncodeQuery percent-encodes Query under the query encode set.
func PctEncodeQuery(u *parser.ParsedUrl) {
	u.Query = pctEncode(u.Query, &queryEncodeSet)
}

// PctEncodeFragment percent-encodes Fragment under the C0 encode set.
func PctEncodeFragment(u *parser.ParsedUrl) {
	u.Fragment = pctEncode(u.Fragment, &c0EncodeSet)
}

// PctEncodeHost percent-encodes Host under the conservative host encode
// set. For special-scheme hosts this runs after punycode_special_host has
// already reduced Host to ASCII, so in practice it only ever catches
// control bytes a malformed input slipped through parsing with.
func PctEncodeHost(u *parser.ParsedUrl) {
	u.Host = pctEncode(u.Host, &hostEncodeSet)
}

// PctDecodeHost percent-decodes Host to a fixed point, but only for
// special schemes: a non-special host (e.g. the host of a "mailto:" or
// custom-scheme URL) isn't a DNS name and decoding it risks destroying
// meaningful structure.
func PctDecodeHost(u *parser.ParsedUrl) {
	if len(u.Host) == 0 || !schemes.IsSpecial(u.Scheme) {
		return
	}

	u.Host = pctDecodeRepeatedly(u.Host)
}

// PctDecodeRepeatedly percent-decodes every component but Fragment (which
// is never decoded, matching the reference implementation) to a fixed
// point.
func PctDecodeRepeatedly(u *parser.ParsedUrl) {
	u.Scheme = pctDecodeRepeatedly(u.Scheme)
	u.Username = pctDecodeRepeatedly(u.Username)
	u.Password = pctDecodeRepeatedly(u.Password)
	u.Host = pctDecodeRepeatedly(u.Host)
	u.Port = pctDecodeRepeatedly(u.Port)
	u.Path = pctDecodeRepeatedly(u.Path)
	u.Query = pctDecodeRepeatedly(u.Query)
}

// PctDecodeRepeatedlyExceptQuery is PctDecodeRepeatedly but leaves Query
// untouched, so that Query can be handled by a separate step
// (SemanticPrecise recodes it with LessDumbPctRecodeQuery).
func PctDecodeRepeatedlyExceptQuery(u *parser.ParsedUrl) {
	u.Scheme = pctDecodeRepeatedly(u.Scheme)
	u.Username = pctDecodeRepeatedly(u.Username)
	u.Password = pctDecodeRepeatedly(u.Password)
	u.Host = pctDecodeRepeatedly(u.Host)
	u.Port = pctDecodeRepeatedly(u.Port)
	u.Path = pctDecodeRepeatedly(u.Path)
}

// ReparseHost recomputes IP4/IP6 from the current Host bytes. Required
// after any step rewrites Host, since IP4/IP6 are derived views that don't
// update themselves.
func ReparseHost(u *parser.ParsedUrl) {
	u.IP4, u.IP6 = parser.ParseIPv4or6(u.Host)
}

// NormalizeIPAddress rewrites Host to the canonical textual form of IP4 or
// IP6, when either is set.
func NormalizeIPAddress(u *parser.ParsedUrl) {
	switch {
	case u.IP4 != nil:
		u.Host = dottedDecimal(*u.IP4)
	case u.IP6 != nil:
		u.Host = append([]byte{'['}, append([]byte(u.IP6.String()), ']')...)
	}
}

// PunycodeSpecialHost Punycode-encodes Host for special schemes, whose
// hosts are DNS names. LowercaseScheme must already have run for the
// IsSpecial check to see a normalized scheme.
func PunycodeSpecialHost(u *parser.ParsedUrl) {
	if len(u.Host) > 0 && schemes.IsSpecial(u.Scheme) {
		u.Host = idnahost.Encode(u.Host)
	}
}

// EmptyPathToSlash sets Path to "/" when a special-scheme URL has an
// authority but no path at all.
func EmptyPathToSlash(u *parser.ParsedUrl) {
	if len(u.Path) == 0 && len(u.Authority()) > 0 && schemes.IsSpecial(u.Scheme) {
		u.Path = []byte("/")
	}
}

// LeadingSlash ensures a special-scheme URL's Path begins with '/'.
func LeadingSlash(u *parser.ParsedUrl) {
	if schemes.IsSpecial(u.Scheme) && (len(u.Path) == 0 || u.Path[0] != '/') {
		u.Path = append([]byte("/"), u.Path...)
	}
}

// ElideDefaultPort clears Port (and its preceding colon) when it matches
// the scheme's well-known default.
func ElideDefaultPort(u *parser.ParsedUrl) {
	if !schemes.IsSpecial(u.Scheme) {
		return
	}

	if def, ok := schemes.DefaultPort(u.Scheme); ok && bytes.Equal(u.Port, def) {
		u.ColonBeforePort = nil
		u.Port = nil
	}
}

// CleanUpUserinfo drops a dangling colon-before-password when there's no
// password, and drops the '@' entirely when there's no userinfo left at
// all.
func CleanUpUserinfo(u *parser.ParsedUrl) {
	if len(u.Password) == 0 {
		u.ColonBeforePassword = nil

		if len(u.Username) == 0 {
			u.AtSign = nil
		}
	}
}

// TwoSlashes normalizes Slashes to exactly "//" whenever there was any
// slash, any authority, or the scheme is "file" (which always implies an
// authority component even when empty).
func TwoSlashes(u *parser.ParsedUrl) {
	if len(u.Slashes) > 0 || len(u.Authority()) > 0 || bytes.Equal(u.Scheme, []byte("file")) {
		u.Slashes = []byte("//")
	}
}

// DefaultSchemeHttp assigns the "http" scheme to a schemeless URL (one
// where the top-level grammar couldn't find a "scheme:" prefix) and
// re-parses whatever ended up in Path using the special-scheme pathish
// grammar, since a host may be hiding in there now that a scheme exists.
func DefaultSchemeHttp(u *parser.ParsedUrl) {
	if len(u.Scheme) != 0 {
		return
	}

	u.Scheme = []byte("http")
	u.ColonAfterScheme = []byte(":")

	if len(u.Path) > 0 {
		parser.ParsePathish(u, u.Path)
	}
}

var collapseSlashesRegex = regexp.MustCompile(`/{2,}`)

// CollapseConsecutiveSlashes collapses runs of two or more '/' in Path
// down to one, for special schemes only.
func CollapseConsecutiveSlashes(u *parser.ParsedUrl) {
	if !schemes.IsSpecial(u.Scheme) {
		return
	}

	u.Path = collapseSlashesRegex.ReplaceAll(u.Path, []byte("/"))
}

var collapseDotsRegex = regexp.MustCompile(`\.{2,}`)

// FixHostDots trims leading and trailing '.' from Host and collapses any
// interior run of '.' down to one, cleaning up the stray dots that fall
// out of permissive parsing (e.g. "example.com...").
func FixHostDots(u *parser.ParsedUrl) {
	if len(u.Host) == 0 {
		return
	}

	h := u.Host

	i := 0
	for i < len(h) && h[i] == '.' {
		i++
	}

	h = h[i:]

	j := len(h)
	for j > 0 && h[j-1] == '.' {
		j--
	}

	h = h[:j]

	u.Host = collapseDotsRegex.ReplaceAll(h, []byte("."))
}

// RemoveFragment discards Fragment and its leading '#'.
func RemoveFragment(u *parser.ParsedUrl) {
	u.HashSign = nil
	u.Fragment = nil
}

// RemoveUserinfo discards Username, Password, and their delimiters.
func RemoveUserinfo(u *parser.ParsedUrl) {
	u.Username = nil
	u.ColonBeforePassword = nil
	u.Password = nil
	u.AtSign = nil
}

// AlphaReorderQuery sorts '&'-delimited query parameters lexicographically
// by their raw bytes, so that two URLs differing only in parameter order
// canonicalize to the same key.
func AlphaReorderQuery(u *parser.ParsedUrl) {
	if len(u.Query) == 0 {
		return
	}

	parts := bytes.Split(u.Query, []byte("&"))

	sort.Slice(parts, func(i, j int) bool {
		return bytes.Compare(parts[i], parts[j]) < 0
	})

	u.Query = bytes.Join(parts, []byte("&"))
}

var redundantAmpersandsRegex = regexp.MustCompile(`&{2,}`)

// RemoveRedundantAmpersandsFromQuery collapses runs of '&' to one and
// trims a leading or trailing '&', cleaning up after session-id stripping
// or reordering leaves an empty parameter slot behind.
func RemoveRedundantAmpersandsFromQuery(u *parser.ParsedUrl) {
	q := redundantAmpersandsRegex.ReplaceAll(u.Query, []byte("&"))
	u.Query = bytes.Trim(q, "&")
}

// OmitQuestionMarkIfQueryEmpty drops the '?' delimiter when Query ended up
// empty.
func OmitQuestionMarkIfQueryEmpty(u *parser.ParsedUrl) {
	if len(u.Query) == 0 {
		u.QuestionMark = nil
	}
}

// StripTrailingSlashUnlessEmpty removes one trailing '/' from Path, unless
// Path is exactly "/".
func StripTrailingSlashUnlessEmpty(u *parser.ParsedUrl) {
	if len(u.Path) > 1 && u.Path[len(u.Path)-1] == '/' {
		u.Path = u.Path[:len(u.Path)-1]
	}
}

// HttpsToHttp downgrades an "https" scheme to "http", part of the
// aggressive pipeline's policy of treating the two as the same resource
// for deduplication purposes.
func HttpsToHttp(u *parser.ParsedUrl) {
	if bytes.EqualFold(u.Scheme, []byte("https")) {
		u.Scheme = []byte("http")
	}
}

var wwwPrefixRegex = regexp.MustCompile(`(?i)^www([1-9])?\.`)

// StripWww removes a leading "www." or "www1." through "www9." label from
// Host.
func StripWww(u *parser.ParsedUrl) {
	u.Host = wwwPrefixRegex.ReplaceAll(u.Host, nil)
}

// LowercasePath lowercases the ASCII letters of Path.
func LowercasePath(u *parser.ParsedUrl) {
	u.Path = toLowerASCII(u.Path)
}

// LowercaseQuery lowercases the ASCII letters of Query.
func LowercaseQuery(u *parser.ParsedUrl) {
	u.Query = toLowerASCII(u.Query)
}

// GooglePctEncode re-percent-encodes every component but Fragment under
// the Google Safe Browsing encode set (<=0x20, >=0x7f, '#', '%').
func GooglePctEncode(u *parser.ParsedUrl) {
	u.Scheme = pctEncode(u.Scheme, &googleEncodeSet)
	u.Username = pctEncode(u.Username, &googleEncodeSet)
	u.Password = pctEncode(u.Password, &googleEncodeSet)
	u.Host = pctEncode(u.Host, &googleEncodeSet)
	u.Port = pctEncode(u.Port, &googleEncodeSet)
	u.Path = pctEncode(u.Path, &googleEncodeSet)
	u.Query = pctEncode(u.Query, &googleEncodeSet)
}

// LessDumbPctEncode re-percent-encodes every component but Query and
// Fragment under the narrower "less dumb" encode set used by the semantic
// pipelines.
func LessDumbPctEncode(u *parser.ParsedUrl) {
	u.Scheme = pctEncode(u.Scheme, &lessDumbEncodeSet)
	u.Username = pctEncode(u.Username, &lessDumbEncodeSet)
	u.Password = pctEncode(u.Password, &lessDumbEncodeSet)
	u.Host = pctEncode(u.Host, &lessDumbEncodeSet)
	u.Port = pctEncode(u.Port, &lessDumbEncodeSet)
	u.Path = pctEncode(u.Path, &lessDumbEncodeSet)
}

// LessDumbPctRecodeQuery decodes Query to a fixed point and re-encodes it
// under the "less dumb" encode set, normalizing over-encoded query strings
// into a minimal canonical form.
func LessDumbPctRecodeQuery(u *parser.ParsedUrl) {
	u.Query = reencode(u.Query, &lessDumbEncodeSet)
}
