// Package digest turns a raw language-model response into digest items and
// assembles the final publishable post.
package digest

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// bullet markers accepted by the line-based response form
const bulletMarkers = "-*•"

var fencedRe = regexp.MustCompile("(?s)^```[a-zA-Z0-9]*\\s*\n(.*?)\n?```$")

// ParseItems extracts an ordered list of digest item strings from a raw
// model response. Three response shapes are accepted, tried in order:
// a JSON array of strings, a single fenced code block containing such an
// array, and bullet-prefixed lines. Items are trimmed and empty ones
// dropped; an empty JSON array is a valid (empty) result, while a blank
// response is an error.
func ParseItems(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("empty model response")
	}

	if items, ok, err := parseJSONArray(trimmed); ok || err != nil {
		return items, err
	}

	if m := fencedRe.FindStringSubmatch(trimmed); m != nil {
		if items, ok, err := parseJSONArray(strings.TrimSpace(m[1])); ok || err != nil {
			return items, err
		}
	}

	if items, ok := parseBullets(trimmed); ok {
		return items, nil
	}

	return nil, fmt.Errorf("model response matches no accepted digest format")
}

// parseJSONArray reports ok=true when the input is a syntactically valid
// JSON array; a non-string element is then a hard error, not a fallthrough
func parseJSONArray(s string) (items []string, ok bool, err error) {
	if !strings.HasPrefix(s, "[") {
		return nil, false, nil
	}

	var elems []json.RawMessage
	if jErr := json.Unmarshal([]byte(s), &elems); jErr != nil {
		return nil, false, nil
	}

	items = make([]string, 0, len(elems))
	for i, elem := range elems {
		var str string
		if jErr := json.Unmarshal(elem, &str); jErr != nil {
			return nil, true, fmt.Errorf("digest array element %d is not a string", i)
		}
		if trimmed := strings.TrimSpace(str); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items, true, nil
}

// parseBullets matches only when every non-empty line starts with a bullet marker
func parseBullets(s string) ([]string, bool) {
	items := []string{}
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		marker, size := utf8.DecodeRuneInString(trimmed)
		if !strings.ContainsRune(bulletMarkers, marker) {
			return nil, false
		}
		if item := strings.TrimSpace(trimmed[size:]); item != "" {
			items = append(items, item)
		}
	}
	return items, true
}
