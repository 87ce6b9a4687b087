package domain

import "unicode/utf16"

// StringHash returns the Java String.hashCode of s: the base-31 polynomial
// over the UTF-16 code units of s, computed with int32 wraparound.
//
// Go's own string hashing is seeded per process, so it cannot be used here.
func StringHash(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(u)
	}
	return h
}
