package utils

import "strings"

// NormalizeSeats trims, uppercases and drops empty seat names while keeping
// selection order.
func NormalizeSeats(seats []string) []string {
	out := make([]string, 0, len(seats))
	for _, s := range seats {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// HasDuplicates reports whether the seat list names the same seat twice.
func HasDuplicates(seats []string) bool {
	seen := map[string]bool{}
	for _, s := range seats {
		k := strings.ToUpper(strings.TrimSpace(s))
		if k == "" {
			continue
		}
		if seen[k] {
			return true
		}
		seen[k] = true
	}
	return false
}
