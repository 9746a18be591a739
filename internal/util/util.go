// Package util holds small helpers shared across layers.
package util

import (
	"regexp"
	"strings"
)

var imgurPageRe = regexp.MustCompile(`^https?://imgur\.com/([A-Za-z0-9]+)$`)

// NormalizeImageURL rewrites imgur page links into direct image links so the
// storefront can embed them. Already-direct and non-imgur URLs pass through
// untouched.
func NormalizeImageURL(rawURL string) string {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return ""
	}

	if match := imgurPageRe.FindStringSubmatch(url); match != nil {
		return "https://i.imgur.com/" + match[1] + ".jpg"
	}

	return url
}

// NormalizePhone strips separators from a phone number, keeping digits and a
// single leading plus sign.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}

	return b.String()
}
