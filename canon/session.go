package canon

import (
	"bytes"
	"regexp"

	"go.source.hueristiq.com/urlcanon/parser"
)

// Session-id patterns recognized in query strings: the common
// application-server conventions (Java's jsessionid, generic sessionid,
// PHP's PHPSESSID, a bare sid, ColdFusion's paired CFID/CFTOKEN, and
// IIS/ASP's ASPSESSIONID<slot>). Matching is case-insensitive since these
// keys appear in every capitalization in the wild.
var sessionIDQueryRegex = regexp.MustCompile(`(?i)` +
	`jsessionid=[0-9a-z$]{10,}` +
	`|sessionid=[0-9a-z]{16,}` +
	`|phpsessid=[0-9a-z]{16,}` +
	`|sid=[0-9a-z]{16,}` +
	`|aspsessionid[a-z]{8}=[0-9a-z]{16,}` +
	`|cfid=[0-9]+&cftoken=[0-9a-z-]+`)

// StripSessionIdsFromQuery removes known session-id key/value pairs from
// Query. It leaves behind any stray '&' delimiters the removal opens up;
// RemoveRedundantAmpersandsFromQuery cleans those up in a later step.
func StripSessionIdsFromQuery(u *parser.ParsedUrl) {
	u.Query = sessionIDQueryRegex.ReplaceAll(u.Query, nil)
}

var (
	// aspSessionParenRegex matches a single "(<24 alnum chars>)/" path
	// segment, the session token format .NET's ASP.NET session state
	// module historically embedded directly in the URL path of a ".aspx"
	// resource.
	aspSessionParenRegex = regexp.MustCompile(`(?i)(/)\([0-9a-z]{24}\)/`)

	// aspSessionChainRegex matches one or more chained
	// "(<letter>(<24 alnum chars>))" segments, a variant some ASP.NET
	// configurations produce when multiple session modules are active.
	aspSessionChainRegex = regexp.MustCompile(`(?i)(/)(\([a-z]\([0-9a-z]{24}\)\))+/`)

	// trailingJsessionidRegex matches a ";jsessionid=<32 alnum chars>"
	// path parameter at the very end of the path, the classic Java
	// servlet-container URL-rewriting convention for clients without
	// cookie support.
	trailingJsessionidRegex = regexp.MustCompile(`(?i);jsessionid=[0-9a-z]{32}$`)

	aspxSuffix = []byte(".aspx")
)

// StripSessionIdsFromPath removes a trailing ";jsessionid=..." path
// parameter unconditionally, and, only when Path ends in ".aspx", also
// removes the ASP.NET parenthesized session-token path segments.
func StripSessionIdsFromPath(u *parser.ParsedUrl) {
	u.Path = trailingJsessionidRegex.ReplaceAll(u.Path, nil)

	if !bytes.HasSuffix(toLowerASCII(u.Path), aspxSuffix) {
		return
	}

	u.Path = aspSessionParenRegex.ReplaceAll(u.Path, []byte("$1"))
	u.Path = aspSessionChainRegex.ReplaceAll(u.Path, []byte("$1"))
}
