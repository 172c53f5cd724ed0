package app

import (
	"net/url"
	"strings"
)

// withChoice returns href with query parameter key set to value, keeping
// other parameters and any fragment.
func withChoice(href, key, value string) string {
	fragment := ""
	if idx := strings.Index(href, "#"); idx >= 0 {
		fragment = href[idx:]
		href = href[:idx]
	}

	path, rawQuery, _ := strings.Cut(href, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(key, value)

	return path + "?" + query.Encode() + fragment
}

// pageHref is the link to a page carrying the current selector choices.
func pageHref(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
