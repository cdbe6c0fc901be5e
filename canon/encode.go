package canon

// encodeSet is a lookup table of which bytes must be percent-encoded for a
// particular URL component. It is built once at init() from explicit byte
// ranges rather than compiled as a regexp, since percent-encoding runs over
// every byte of every textual field in every pipeline invocation.
type encodeSet [256]bool

func newEncodeSet(fn func(b byte) bool) (set encodeSet) {
	for i := 0; i < 256; i++ {
		set[i] = fn(byte(i))
	}

	return
}

var (
	// c0EncodeSet is "C0 controls and all code points greater than U+007E".
	c0EncodeSet = newEncodeSet(func(b byte) bool {
		return b <= 0x1f || b >= 0x7f
	})

	// pathEncodeSet is the C0 set plus space, '"', '#', '<', '>', '?', '`',
	// '{', '}'.
	pathEncodeSet = newEncodeSet(func(b byte) bool {
		if b <= 0x20 || b >= 0x7f {
			return true
		}

		switch b {
		case '"', '#', '<', '>', '?', '`', '{', '}':
			return true
		default:
			return false
		}
	})

	// userinfoEncodeSet is pathEncodeSet plus the "userinfo percent-encode
	// set" delimiters from the WHATWG standard.
	userinfoEncodeSet = newEncodeSet(func(b byte) bool {
		if pathEncodeSet[b] {
			return true
		}

		switch b {
		case '/', ':', ';', '=', '@', '[', '\\', ']', '^', '|':
			return true
		default:
			return false
		}
	})

	// queryEncodeSet is bytes <= 0x20, >= 0x7f, '"', '#', '<', '>'.
	queryEncodeSet = newEncodeSet(func(b byte) bool {
		if b <= 0x20 || b >= 0x7f {
			return true
		}

		switch b {
		case '"', '#', '<', '>':
			return true
		default:
			return false
		}
	})

	// hostEncodeSet is the conservative set applied to every host by
	// PctEncodeHost: C0 controls, space, and >= 0x7f.
	hostEncodeSet = newEncodeSet(func(b byte) bool {
		return b <= 0x20 || b >= 0x7f
	})

	// googleEncodeSet implements the Google Safe Browsing canonicalization
	// encode rule: "percent-escape all characters that are <= ASCII 32,
	// >= 127, '#', or '%'".
	googleEncodeSet = newEncodeSet(func(b byte) bool {
		if b <= 0x20 || b >= 0x7f {
			return true
		}

		return b == '#' || b == '%'
	})

	// lessDumbEncodeSet is used by the semantic pipelines: narrower than the
	// WHATWG sets because by the time it runs the URL has already been
	// repeatedly percent-decoded, and the goal is a human-legible semantic
	// key rather than a browser-exact serialization. It encodes C0 controls,
	// space, DEL and above, and '%' itself (so the decode/recode round trip
	// cannot reintroduce ambiguity).
	lessDumbEncodeSet = newEncodeSet(func(b byte) bool {
		if b <= 0x20 || b >= 0x7f {
			return true
		}

		return b == '%'
	})
)

const upperHex = "0123456789ABCDEF"

// pctEncode returns the result of percent-encoding every byte of b that is
// a member of set, in-place-safe (b is never mutated).
func pctEncode(b []byte, set *encodeSet) []byte {
	n := 0

	for _, c := range b {
		if set[c] {
			n += 3
		} else {
			n++
		}
	}

	if n == len(b) {
		return b
	}

	out := make([]byte, 0, n)

	for _, c := range b {
		if set[c] {
			out = append(out, '%', upperHex[c>>4], upperHex[c&0xf])
		} else {
			out = append(out, c)
		}
	}

	return out
}

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// pctDecode performs a single pass of standard percent-decoding: each "%XX"
// with two hex digits becomes the byte XX; anything else (including a bare
// "%" or "%" followed by fewer than two hex digits) passes through
// literally, per the InvalidPercentEscape policy of not treating malformed
// escapes as errors.
func pctDecode(b []byte) []byte {
	hasEscape := false

	for i := 0; i < len(b); i++ {
		if b[i] == '%' && i+2 < len(b) {
			if _, ok1 := hexVal(b[i+1]); ok1 {
				if _, ok2 := hexVal(b[i+2]); ok2 {
					hasEscape = true

					break
				}
			}
		}
	}

	if !hasEscape {
		return b
	}

	out := make([]byte, 0, len(b))

	for i := 0; i < len(b); i++ {
		if b[i] == '%' && i+2 < len(b) {
			hi, ok1 := hexVal(b[i+1])
			lo, ok2 := hexVal(b[i+2])

			if ok1 && ok2 {
				out = append(out, byte(hi<<4|lo))
				i += 2

				continue
			}
		}

		out = append(out, b[i])
	}

	return out
}

// pctDecodeRepeatedly applies pctDecode until a fixed point is reached,
// defeating adversarially multi-encoded inputs (e.g. "%2525" -> "%25" ->
// "%").
func pctDecodeRepeatedly(b []byte) []byte {
	for {
		next := pctDecode(b)
		if string(next) == string(b) {
			return b
		}

		b = next
	}
}

// reencode percent-decodes b repeatedly and then re-encodes it under set;
// this is the "decode then recode under a narrower set" idiom used by the
// semantic pipelines to normalize over-encoded inputs into a canonical,
// minimally-encoded form.
func reencode(b []byte, set *encodeSet) []byte {
	return pctEncode(pctDecodeRepeatedly(b), set)
}

// dottedDecimal formats a numeric IPv4 address in standard dotted-decimal
// notation.
func dottedDecimal(ip4 uint32) []byte {
	return []byte(
		itoa(byte(ip4>>24)) + "." + itoa(byte(ip4>>16)) + "." +
			itoa(byte(ip4>>8)) + "." + itoa(byte(ip4)),
	)
}

func itoa(b byte) string {
	if b == 0 {
		return "0"
	}

	var buf [3]byte

	i := 3

	for b > 0 {
		i--
		buf[i] = '0' + b%10
		b /= 10
	}

	return string(buf[i:])
}
