package utils

import (
	"net/url"
	"strconv"
	"strings"
)

// PositiveInt parses s, falling back to def when s is missing, malformed or below 1.
// A leading integer prefix is accepted ("2abc" -> 2).
func PositiveInt(s string, def int) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 1 {
		return def
	}
	return n
}

// MultiValue returns every value of key, splitting comma-joined entries and dropping blanks.
func MultiValue(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
