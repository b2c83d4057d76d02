package paper

import (
	"regexp"
	"strings"
)

const (
	defaultFileStem = "exam-paper"
	maxStemLength   = 80
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// FileStem derives a download filename stem from a paper title: lower-cased,
// runs of non-alphanumeric characters collapsed to a single hyphen, leading
// and trailing hyphens stripped, truncated to 80 characters. An empty result
// falls back to "exam-paper".
func FileStem(title string) string {
	stem := nonAlnum.ReplaceAllString(strings.ToLower(title), "-")
	stem = strings.Trim(stem, "-")
	if len(stem) > maxStemLength {
		stem = strings.Trim(stem[:maxStemLength], "-")
	}
	if stem == "" {
		return defaultFileStem
	}
	return stem
}
