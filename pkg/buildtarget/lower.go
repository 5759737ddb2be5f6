package buildtarget

import "strings"

// toASCIILower folds ASCII upper-case letters to lower case and leaves every
// other byte untouched. An input without upper-case ASCII is returned as is,
// sharing its storage.
func toASCIILower(s string) string {
	first := -1
	for i := 0; i < len(s); i++ {
		if isASCIIUpper(s[i]) {
			first = i
			break
		}
	}
	if first < 0 {
		return s
	}

	// Bytes of a multi-byte UTF-8 sequence are all >= 0x80, so folding
	// byte by byte never splits a code point.
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:first])
	for i := first; i < len(s); i++ {
		c := s[i]
		if isASCIIUpper(c) {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isASCIIUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}
