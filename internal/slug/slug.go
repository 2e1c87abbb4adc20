// Package slug turns human note titles into URL-safe identifiers.
package slug

import "strings"

// Make converts a title into its slug: lowercase, apostrophes and periods
// removed, spaces replaced by underscores, runs of underscores collapsed.
// The same function is used for link targets and for note self-slugs, so a
// link's slug always matches the slug the target note is filed under.
func Make(title string) string {
	s := strings.ToLower(title)
	for _, r := range []string{"'", "’", "."} {
		s = strings.ReplaceAll(s, r, "")
	}
	s = strings.ReplaceAll(s, " ", "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}
