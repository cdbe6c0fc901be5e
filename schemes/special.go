package schemes

// Special maps each "special" URL scheme, as defined by the WHATWG URL
// standard, to its default port expressed in bytes, or to a nil value for
// schemes that have no notion of a port (currently only "file").
//
// Membership in this table controls several canonicalization behaviors:
// backslash-to-slash normalization, "path always starts with /" enforcement,
// default-port elision, host IDNA encoding, and forcing an empty path to "/".
var Special = map[string][]byte{
	"ftp":    []byte("21"),
	"gopher": []byte("70"),
	"http":   []byte("80"),
	"https":  []byte("443"),
	"ws":     []byte("80"),
	"wss":    []byte("443"),
	"file":   nil,
}

// IsSpecial reports whether scheme (already lowercased by the caller) is one
// of the special schemes.
func IsSpecial(scheme []byte) (ok bool) {
	_, ok = Special[string(scheme)]

	return
}

// DefaultPort returns the default port bytes for scheme and true if scheme
// is special and has a default port ("file" is special but has none).
func DefaultPort(scheme []byte) (port []byte, ok bool) {
	p, known := Special[string(scheme)]
	if !known || p == nil {
		return nil, false
	}

	return p, true
}
