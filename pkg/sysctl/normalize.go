package sysctl

// Normalize converts a tunable name or value between its dotted and
// slash-delimited spellings. The first separator encountered decides the
// convention: if a slash shows up before any dot, the string is assumed to
// already be in canonical path form and is returned verbatim, untouched from
// start to end. Otherwise dots become slashes and slashes become dots.
func Normalize(name string) string {
	seenDot := false
	b := []byte(name)
	for i := range b {
		switch b[i] {
		case '/':
			if !seenDot {
				// Already path form. The whole string passes
				// through, including any dots after this point.
				return name
			}
			b[i] = '.'
		case '.':
			seenDot = true
			b[i] = '/'
		}
	}
	return string(b)
}
