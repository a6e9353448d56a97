package application

import (
	"regexp"
	"strings"
)

var slugScrub = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a post title: lowercase, every run of
// non-alphanumeric characters collapsed to a single hyphen, hyphens trimmed
// from both ends.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugScrub.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
