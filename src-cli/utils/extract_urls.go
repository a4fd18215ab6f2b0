package utils

import "regexp"

var urlPattern = regexp.MustCompile(`https?://[^\s<>"{}|\\^[\]` + "`" + `]+`)

// Pull every URL out of a notes blob, deduplicated on literal string
// equality, first occurrence wins. Always returns a non-nil slice so
// the JSON field marshals to [] rather than null.
func ExtractURLs(text string) []string {
	urls := make([]string, 0)
	seen := make(map[string]struct{})
	for _, match := range urlPattern.FindAllString(text, -1) {
		if _, ok := seen[match]; ok {
			continue
		}
		seen[match] = struct{}{}
		urls = append(urls, match)
	}
	return urls
}
