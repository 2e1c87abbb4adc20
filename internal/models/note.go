// Package models defines the domain types for Raido.
package models

import (
	"path/filepath"
	"strings"

	"github.com/starford/raido/internal/slug"
)

// Note represents a single Markdown source file. It is immutable once
// constructed; everything else is derived on demand.
type Note struct {
	Path    string // path to the source file
	RawBody string // full original text
}

// Title returns the note's human-friendly title: the first line with the
// leading '#' run stripped when the body starts with a heading, otherwise
// the file name without its extension.
func (n Note) Title() string {
	if strings.HasPrefix(n.RawBody, "#") {
		first, _, _ := strings.Cut(n.RawBody, "\n")
		return strings.TrimSpace(strings.TrimLeft(first, "#"))
	}
	base := filepath.Base(n.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Slug returns the slug the note is published under.
func (n Note) Slug() string {
	return slug.Make(n.Title())
}

// Link is a wikilink between notes, as matched in a note body.
type Link struct {
	Text  string // verbatim matched substring, brackets included
	Name  string // target title as written
	Alias string // display override, empty if none
}

// Title returns the link text as it should appear on the page.
func (l Link) Title() string {
	if l.Alias != "" {
		return l.Alias
	}
	return l.Name
}

// Slug returns the slug of the link's target.
func (l Link) Slug() string {
	return slug.Make(l.Name)
}

// Image is an image reference matched on its own line in a note body.
type Image struct {
	Text     string // verbatim matched line
	Filename string // image file name with extension
	Caption  string // optional caption, quotes stripped
}
