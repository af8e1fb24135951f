package util

import "unicode/utf8"

// TruncateRunes caps a string at n runes. Used to keep user-supplied text
// from flooding log lines.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	rs := []rune(s)
	return string(rs[:n])
}
