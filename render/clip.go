package render

// Clip returns at most n runes of s; no ellipsis, no wrapping
func Clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// runeLen counts runes, the unit of one grid column
func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
