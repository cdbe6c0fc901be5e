// ./gen/TLDs/main.go regenerates this file from the IANA TLD list and the
// Public Suffix List. Do not edit the entries by hand; re-run the generator
// instead. This snapshot is a representative subset (common gTLDs, ccTLDs,
// and a handful of widely used eTLDs), not an exhaustive mirror of either
// source.
package tlds

// Official is a sorted list of public top-level domains (TLDs) and effective top-level domains (eTLDs).
// TLDs are the highest level in the hierarchical domain name system of the Internet. eTLDs include
// top-level domains and public suffixes, such as country code second-level domains (e.g., "co.uk" or "gov.in"),
// that are commonly used for websites.
//
// The list is curated from official sources:
//   - https://data.iana.org/TLD/tlds-alpha-by-domain.txt: Contains a list of all current IANA-approved TLDs.
//   - https://publicsuffix.org/list/public_suffix_list.dat: Contains a list of public suffixes managed by the Public Suffix List,
//     which identifies domain suffixes under which Internet users can register names.
//
// This list is the representative subset described above; re-running the generator replaces it with the
// full, current lists of TLDs and public suffixes.
var Official = []string{
	"ac",
	"ac.uk",
	"ad",
	"ae",
	"aero",
	"af",
	"ag",
	"ai",
	"al",
	"am",
	"app",
	"ar",
	"at",
	"au",
	"biz",
	"br",
	"br.com",
	"ca",
	"cat",
	"cc",
	"ch",
	"cl",
	"cn",
	"co",
	"co.in",
	"co.jp",
	"co.nz",
	"co.uk",
	"co.za",
	"com",
	"com.au",
	"com.br",
	"com.cn",
	"com.mx",
	"coop",
	"cz",
	"de",
	"dev",
	"dk",
	"edu",
	"edu.au",
	"ee",
	"es",
	"eu",
	"fi",
	"fm",
	"fr",
	"gb",
	"gg",
	"gl",
	"gov",
	"gov.uk",
	"gq",
	"gr",
	"gs",
	"hk",
	"hr",
	"hu",
	"id",
	"ie",
	"il",
	"im",
	"in",
	"info",
	"int",
	"io",
	"ir",
	"is",
	"it",
	"je",
	"jobs",
	"jp",
	"ke",
	"kr",
	"kz",
	"la",
	"li",
	"lt",
	"lu",
	"lv",
	"ly",
	"ma",
	"me",
	"mil",
	"mn",
	"mobi",
	"ms",
	"mu",
	"museum",
	"mx",
	"my",
	"name",
	"net",
	"net.au",
	"net.nz",
	"ng",
	"nl",
	"no",
	"nu",
	"nyc",
	"nz",
	"org",
	"org.au",
	"org.uk",
	"pe",
	"ph",
	"pl",
	"pr",
	"pro",
	"pt",
	"pw",
	"qa",
	"re",
	"ro",
	"rs",
	"ru",
	"sa",
	"se",
	"sg",
	"sh",
	"si",
	"sk",
	"sm",
	"sn",
	"so",
	"su",
	"tc",
	"tech",
	"tel",
	"th",
	"tk",
	"tn",
	"to",
	"top",
	"tr",
	"travel",
	"tv",
	"tw",
	"ua",
	"ug",
	"uk",
	"us",
	"uy",
	"uz",
	"vc",
	"ve",
	"vg",
	"vn",
	"ws",
	"xyz",
	"za",
}
