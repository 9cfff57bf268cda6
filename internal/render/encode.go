// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "strings"

const upperHex = "0123456789ABCDEF"

// EncodePath percent-encodes each "/"-separated segment of p so the result
// can be used as a markdown link target. Separators are preserved.
func EncodePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = encodeComponent(s)
	}
	return strings.Join(segments, "/")
}

// encodeComponent escapes every byte except ASCII letters, digits and
// - _ . ! ~ * ' ( ), matching URI component encoding.
func encodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
