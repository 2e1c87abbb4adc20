// Package publisher coordinates the publish pipeline: load every source
// note, build the cross-reference index, then render real posts and
// placeholder posts into the site content tree.
package publisher

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/starford/raido/internal/index"
	"github.com/starford/raido/internal/models"
	"github.com/starford/raido/internal/render"
	"github.com/starford/raido/internal/slug"
)

// NoteSource supplies the source notes for one run.
type NoteSource interface {
	Notes() ([]models.Note, error)
}

// SiteWriter persists rendered posts.
type SiteWriter interface {
	WritePost(slug string, content []byte) error
	PostPath(slug string) string
}

// Publisher runs the two-phase publish pipeline.
type Publisher struct {
	source   NoteSource
	site     SiteWriter
	renderer *render.Renderer
	logger   *slog.Logger
}

// New creates a Publisher.
func New(source NoteSource, site SiteWriter, renderer *render.Renderer, logger *slog.Logger) *Publisher {
	return &Publisher{source: source, site: site, renderer: renderer, logger: logger}
}

// Run executes one publish. The index is built over all notes before any
// rendering starts, since any note can contribute to any other note's
// backlink set. The first failure aborts the whole batch; there is no
// per-note isolation and no rollback of already-written posts.
func (p *Publisher) Run() error {
	notes, err := p.source.Notes()
	if err != nil {
		return err
	}
	p.logger.Debug("loaded source notes", slog.Int("count", len(notes)))

	idx := index.Build(notes)

	// Posts are keyed by slug; when two notes share a slug the later one in
	// listing order wins the slug, matching dict semantics.
	posts := make(map[string]models.Note, len(notes))
	for _, n := range notes {
		posts[n.Slug()] = n
	}
	slugs := make([]string, 0, len(posts))
	for s := range posts {
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)

	for _, s := range slugs {
		note := posts[s]
		refs := idx.Backlinks(note.Title())
		doc, err := p.renderer.Render(note, refs)
		if err != nil {
			return err
		}
		p.logger.Info("writing post",
			slog.String("title", note.Title()),
			slog.String("path", p.site.PostPath(s)),
			slog.Any("refs", refs))
		if err := p.site.WritePost(s, []byte(doc)); err != nil {
			return fmt.Errorf("write post %q: %w", note.Title(), err)
		}
	}

	// Placeholder posts for titles that are linked to but have no source note.
	// A real note satisfies a link target when their slugs match, even though
	// the index itself is keyed by the literal link text.
	placeholders := 0
	for _, name := range idx.Names() {
		s := slug.Make(name)
		if _, ok := posts[s]; ok {
			continue
		}
		refs := idx.Backlinks(name)
		p.logger.Info("writing placeholder",
			slog.String("title", name),
			slog.String("path", p.site.PostPath(s)),
			slog.Any("refs", refs))
		if err := p.site.WritePost(s, []byte(p.renderer.Placeholder(name, refs))); err != nil {
			return fmt.Errorf("write placeholder %q: %w", name, err)
		}
		placeholders++
	}

	p.logger.Info("publish complete",
		slog.Int("posts", len(posts)),
		slog.Int("placeholders", placeholders))
	return nil
}
