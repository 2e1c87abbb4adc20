// Package parser extracts wikilinks and image references from Markdown content.
package parser

import (
	"regexp"
	"strings"

	"github.com/starford/raido/internal/models"
)

var (
	// Non-greedy inner match so adjacent links are not merged into one.
	wikilinkRe = regexp.MustCompile(`\[\[(.*?)(?:\|(.*?))?\]\]`)

	// An image reference occupies a whole line: a bare file name with an
	// optional caption, quoted or not. Only horizontal whitespace is allowed
	// so a match can never cross a line boundary.
	imageRe = regexp.MustCompile(`(?m)^(([a-z0-9_-]+\.(?i:png|jpe?g))(?:[ \t]+"?(.*?)"?)?)[ \t\r]*$`)
)

// Links returns every wikilink found in body, in document order.
// Malformed link syntax simply fails to match; there is no error case.
func Links(body string) []models.Link {
	matches := wikilinkRe.FindAllStringSubmatch(body, -1)
	out := make([]models.Link, 0, len(matches))
	for _, m := range matches {
		out = append(out, models.Link{
			Text:  m[0],
			Name:  m[1],
			Alias: m[2],
		})
	}
	return out
}

// Images returns every image reference found in body, in document order.
func Images(body string) []models.Image {
	matches := imageRe.FindAllStringSubmatch(body, -1)
	out := make([]models.Image, 0, len(matches))
	for _, m := range matches {
		out = append(out, models.Image{
			// Trailing whitespace is tolerated on the line but is not part
			// of the text used for literal replacement.
			Text:     strings.TrimRight(m[1], " \t\r"),
			Filename: m[2],
			Caption:  m[3],
		})
	}
	return out
}
