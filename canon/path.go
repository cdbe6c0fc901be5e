package canon

// isDotToken reports whether tok is "." or "%2e"/"%2E" (len 1), leaving
// rest as what follows the matched dot. ok is false if tok doesn't start
// with a dot token.
func isDotToken(tok []byte) (rest []byte, ok bool) {
	if len(tok) >= 1 && tok[0] == '.' {
		return tok[1:], true
	}

	if len(tok) >= 3 && tok[0] == '%' && tok[1] == '2' && (tok[2] == 'e' || tok[2] == 'E') {
		return tok[3:], true
	}

	return nil, false
}

// classifyDotSegment reports whether seg is exactly a "dot" segment
// (".", "%2e") or a "dot-dot" segment (two dot tokens back to back, e.g.
// "..", ".%2e", "%2e%2e"), matching case-insensitively. Anything else,
// including a longer run like "...", is neither.
func classifyDotSegment(seg []byte) (isDot, isDotDot bool) {
	rest, ok := isDotToken(seg)
	if !ok {
		return false, false
	}

	if len(rest) == 0 {
		return true, false
	}

	rest2, ok := isDotToken(rest)
	if ok && len(rest2) == 0 {
		return false, true
	}

	return false, false
}

// resolvePathDots resolves "." and ".." (and their case-insensitive
// "%2e"/"%2E" equivalents) segments of path, mirroring browser dot-segment
// removal. special controls whether "\" is also treated as a path
// separator alongside "/". resolvePathDots is a no-op unless path begins
// with a separator (always "/", additionally "\" when special).
func resolvePathDots(path []byte, special bool) []byte {
	isSep := func(b byte) bool {
		return b == '/' || (special && b == '\\')
	}

	if len(path) == 0 || !isSep(path[0]) {
		return path
	}

	var sepPositions []int

	for i := 0; i < len(path); i++ {
		if isSep(path[i]) {
			sepPositions = append(sepPositions, i)
		}
	}

	k := len(sepPositions)
	tokens := make([][]byte, 0, 2*k)

	for i := 0; i < k; i++ {
		tokens = append(tokens, path[sepPositions[i]:sepPositions[i]+1])

		end := len(path)
		if i+1 < k {
			end = sepPositions[i+1]
		}

		tokens = append(tokens, path[sepPositions[i]+1:end])
	}

	out := make([][]byte, 0, len(tokens))

	i := 0
	for i < len(tokens) {
		isDot, isDotDot := classifyDotSegment(tokens[i])

		switch {
		case isDotDot:
			if len(out) > 1 {
				out = out[:len(out)-1] // pop preceding separator
			}

			if len(out) > 1 {
				out = out[:len(out)-1] // pop preceding segment
			}

			i++ // skip following separator
		case isDot:
			i++ // skip following separator
		default:
			out = append(out, tokens[i])
		}

		i++
	}

	var result []byte

	for _, t := range out {
		result = append(result, t...)
	}

	return result
}
