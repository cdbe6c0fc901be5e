// Package parser converts an arbitrary, possibly malformed URL byte string
// into a ParsedUrl: a record of byte slices covering every span of the
// input, including delimiters, such that concatenating the fields in order
// reproduces the input exactly.
//
// Parse never fails. It follows the WHATWG grammar closely enough to split
// scheme, authority, path, query, and fragment the way a browser would,
// including WHATWG's permissive IPv4 numeric parsing (hex/octal/decimal
// parts) and bracketed-literal IPv6 parsing, but it performs no
// normalization itself — that is the job of the canon package, which
// mutates a ParsedUrl's fields in place.
//
// Example Usage:
//
//	package main
//
//	import (
//	    "fmt"
//	    "go.source.hueristiq.com/urlcanon/parser"
//	)
//
//	func main() {
//	    u := parser.Parse([]byte("HTTP://Example.COM:80/a/./b"))
//
//	    fmt.Println(string(u.Scheme))  // HTTP
//	    fmt.Println(string(u.Host))    // Example.COM
//	    fmt.Println(string(u.Bytes())) // HTTP://Example.COM:80/a/./b
//	}
//
// References:
// - WHATWG URL Standard: https://url.spec.whatwg.org/
package parser
