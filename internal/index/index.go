// Package index builds the cross-reference index over a set of notes.
//
// The index is transient: it is rebuilt from the source notes on every run
// and never persisted. It must be complete before any note is rendered,
// since a note's backlink set can be contributed to by any other note.
package index

import (
	"sort"

	"github.com/starford/raido/internal/models"
	"github.com/starford/raido/internal/parser"
)

// Index maps a link target name, exactly as written at the link site, to the
// set of titles of notes that link to it.
type Index struct {
	refs map[string]map[string]struct{}
}

// Build scans every note once and records, for each wikilink, the linking
// note's title under the link's target name. Duplicate links from the same
// note collapse via set semantics; self-links are kept.
func Build(notes []models.Note) *Index {
	idx := &Index{refs: make(map[string]map[string]struct{})}
	for _, n := range notes {
		title := n.Title()
		for _, l := range parser.Links(n.RawBody) {
			set, ok := idx.refs[l.Name]
			if !ok {
				set = make(map[string]struct{})
				idx.refs[l.Name] = set
			}
			set[title] = struct{}{}
		}
	}
	return idx
}

// Backlinks returns the sorted titles of notes linking to name. A title with
// no inbound links yields an empty slice.
func (i *Index) Backlinks(name string) []string {
	set := i.refs[name]
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Names returns every link target recorded in the index, sorted.
func (i *Index) Names() []string {
	out := make([]string, 0, len(i.refs))
	for name := range i.refs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
