// Package match implements a URL match-rule evaluator: a conjunction of
// conditions (domain, surt, ssurt, substring, regex, parent_url_regex)
// that either all hold against a URL or the rule doesn't apply. It is
// grounded on the Python urlcanon.rules.MatchRule class, including its
// legacy url_match/value compatibility shim.
package match

import (
	"bytes"
	"fmt"
	"regexp"

	hqerrors "github.com/hueristiq/hq-go-errors"

	"go.source.hueristiq.com/urlcanon/parser"
)

// UrlMatch names a legacy condition kind accepted by the deprecated
// url_match/value rule shape.
type UrlMatch string

const (
	RegexMatch  UrlMatch = "REGEX_MATCH"
	SurtMatch   UrlMatch = "SURT_MATCH"
	StringMatch UrlMatch = "STRING_MATCH"
)

// ConstructionError is the one error this package ever returns: the
// legacy url_match/value rule shape named a selector other than
// REGEX_MATCH, SURT_MATCH, or STRING_MATCH. It signals a programmer
// error in rule authoring, never a property of user-supplied URL data.
type ConstructionError struct {
	cause error
}

func (e ConstructionError) Error() string { return e.cause.Error() }
func (e ConstructionError) Unwrap() error { return e.cause }

// Rule is one or more conditions; a URL matches only if every non-nil
// condition matches. No condition value is itself canonicalized; callers
// are responsible for supplying conditions already in whatever
// canonical form the URLs they'll be matched against use.
type Rule struct {
	Surt           []byte
	Ssurt          []byte
	Regex          *regexp.Regexp
	Domain         []byte
	Substring      []byte
	ParentURLRegex *regexp.Regexp
}

// Options configures New. UrlMatch/Value is the deprecated
// url_match/value rule shape; when UrlMatch is set it populates Regex,
// Surt, or Substring, exactly as the legacy field it replaces.
type Options struct {
	Surt           []byte
	Ssurt          []byte
	Regex          []byte
	Domain         []byte
	Substring      []byte
	ParentURLRegex []byte
	UrlMatch       UrlMatch
	Value          []byte
}

// New builds a Rule from opts. It returns an error only for the legacy
// UrlMatch shim, when UrlMatch names an unrecognized selector: every
// other field is accepted as-is, since spec.md's ParseError taxonomy has
// no user-data error for rule construction, only this one programmer
// error.
func New(opts Options) (*Rule, error) {
	r := &Rule{
		Surt:      opts.Surt,
		Ssurt:     opts.Ssurt,
		Domain:    opts.Domain,
		Substring: opts.Substring,
	}

	if len(opts.Regex) > 0 {
		r.Regex = regexp.MustCompile(`(?s)\A(?:` + string(opts.Regex) + `)\z`)
	}

	if len(opts.ParentURLRegex) > 0 {
		r.ParentURLRegex = regexp.MustCompile(`(?s)\A(?:` + string(opts.ParentURLRegex) + `)\z`)
	}

	if opts.UrlMatch != "" {
		switch opts.UrlMatch {
		case RegexMatch:
			r.Regex = regexp.MustCompile(`(?s)\A(?:` + string(opts.Value) + `)\z`)
		case SurtMatch:
			r.Surt = opts.Value
		case StringMatch:
			r.Substring = opts.Value
		default:
			return nil, ConstructionError{cause: hqerrors.New(fmt.Sprintf("invalid scope rule with url_match %q", opts.UrlMatch))}
		}
	}

	return r, nil
}

// Applies reports whether every condition of r holds against url, given
// an optional parentURL for the parent_url_regex condition. Both url and
// parentURL are used exactly as given: the caller canonicalizes before
// calling Applies, not this function.
func (r *Rule) Applies(url *parser.ParsedUrl, parentURL *parser.ParsedUrl) bool {
	if len(r.Domain) > 0 && !UrlMatchesDomain(url, r.Domain) {
		return false
	}

	if len(r.Surt) > 0 && !bytes.HasPrefix(url.SURT(true, true), r.Surt) {
		return false
	}

	if len(r.Ssurt) > 0 && !bytes.HasPrefix(url.SSURT(), r.Ssurt) {
		return false
	}

	if len(r.Substring) > 0 && !bytes.Contains(url.Bytes(), r.Substring) {
		return false
	}

	if r.Regex != nil && !r.Regex.Match(url.Bytes()) {
		return false
	}

	if r.ParentURLRegex != nil {
		if parentURL == nil {
			return false
		}

		if !r.ParentURLRegex.Match(parentURL.Bytes()) {
			return false
		}
	}

	return true
}

// HostMatchesDomain reports whether host equals domain, or domain names
// an ordinary DNS domain and host is domain or a subdomain of it. If
// either side parses as an IP address literal, only byte-for-byte
// equality counts as a match.
func HostMatchesDomain(host, domain []byte) bool {
	if bytes.Equal(host, domain) {
		return true
	}

	dip4, dip6 := parser.ParseIPv4or6(domain)
	hip4, hip6 := parser.ParseIPv4or6(host)

	if dip4 != nil || dip6 != nil || hip4 != nil || hip6 != nil {
		return false
	}

	return bytes.HasPrefix(parser.ReverseHost(host, true), parser.ReverseHost(domain, true))
}

// UrlMatchesDomain reports whether url's host matches domain, per
// HostMatchesDomain.
func UrlMatchesDomain(url *parser.ParsedUrl, domain []byte) bool {
	return HostMatchesDomain(url.Host, domain)
}
