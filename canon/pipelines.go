package canon

// WHATWG approximates a browser's own URL parser/serializer: it never
// strips information a browser would keep (userinfo, fragment, query
// order) and stays close to byte-for-byte fidelity with the input.
var WHATWG = New(
	RemoveLeadingTrailingJunk,
	RemoveTabsAndNewlines,
	LowercaseScheme,
	ElideDefaultPort,
	CleanUpUserinfo,
	TwoSlashes,
	PctDecodeHost,
	ReparseHost,
	NormalizeIPAddress,
	PunycodeSpecialHost,
	PctEncodeHost,
	FixBackslashes,
	PctEncodePath,
	LeadingSlash,
	NormalizePathDots,
	EmptyPathToSlash,
	PctEncodeUserinfo,
	PctEncodeQuery,
	PctEncodeFragment,
)

// Google reproduces the Google Safe Browsing URL canonicalization
// algorithm, used to compute the lookup key a Safe Browsing hash check is
// made against.
var Google = New(
	RemoveLeadingTrailingJunk,
	DefaultSchemeHttp,
	RemoveTabsAndNewlines,
	LowercaseScheme,
	FixBackslashes,
	PctEncodePath,
	EmptyPathToSlash,
	ElideDefaultPort,
	CleanUpUserinfo,
	LeadingSlash,
	TwoSlashes,
	RemoveFragment,
	PctDecodeRepeatedly,
	NormalizePathDots,
	FixHostDots,
	CollapseConsecutiveSlashes,
	PunycodeSpecialHost,
	ReparseHost,
	NormalizeIPAddress,
	GooglePctEncode,
)

// SemanticPrecise aims at a dedupe key for "the same resource": userinfo
// is dropped (it never affects what's served) and every component but the
// fragment is repeatedly decoded then minimally re-encoded, collapsing the
// many encodings a given semantic URL can be written in down to one. Query
// parameter order is normalized; the fragment is kept as it is.
var SemanticPrecise = New(
	RemoveLeadingTrailingJunk,
	DefaultSchemeHttp,
	RemoveTabsAndNewlines,
	LowercaseScheme,
	ElideDefaultPort,
	CleanUpUserinfo,
	TwoSlashes,
	PctDecodeRepeatedlyExceptQuery,
	ReparseHost,
	NormalizeIPAddress,
	FixHostDots,
	PunycodeSpecialHost,
	RemoveUserinfo,
	LessDumbPctEncode,
	LessDumbPctRecodeQuery,
	FixBackslashes,
	LeadingSlash,
	NormalizePathDots,
	CollapseConsecutiveSlashes,
	EmptyPathToSlash,
	AlphaReorderQuery,
)

// Semantic is SemanticPrecise with the fragment discarded too, since a
// fragment never reaches the server and two URLs differing only by
// fragment are the same resource.
var Semantic = New(append(append([]Step{}, SemanticPrecise.steps...), RemoveFragment)...)

// Aggressive builds on Semantic with crawl-scoping heuristics that are
// "usually" safe but occasionally conflate distinct resources: it treats
// https and http as the same scheme, drops a leading "www[1-9]?." host
// label, lowercases path and query, and strips common session-id
// artifacts various application servers embed in the URL itself.
var Aggressive = New(append(append([]Step{}, Semantic.steps...),
	HttpsToHttp,
	StripWww,
	LowercasePath,
	LowercaseQuery,
	StripSessionIdsFromQuery,
	StripSessionIdsFromPath,
	StripTrailingSlashUnlessEmpty,
	RemoveRedundantAmpersandsFromQuery,
	OmitQuestionMarkIfQueryEmpty,
	AlphaReorderQuery,
)...)
