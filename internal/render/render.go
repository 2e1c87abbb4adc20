// Package render turns parsed notes into Hugo-formatted documents.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/starford/raido/internal/models"
	"github.com/starford/raido/internal/parser"
	"github.com/starford/raido/internal/slug"
)

// ImageCopier makes a referenced image available under the site's image root.
type ImageCopier interface {
	// EnsureCopied copies filename from the source image directory to the
	// site image directory when the destination is missing or stale.
	EnsureCopied(filename string) error
}

// Renderer produces the final Hugo documents for real notes and placeholders.
type Renderer struct {
	emptyBody string
	images    ImageCopier
}

// New creates a Renderer. emptyBody is substituted for whitespace-only note
// bodies and used verbatim in placeholder documents.
func New(emptyBody string, images ImageCopier) *Renderer {
	return &Renderer{emptyBody: emptyBody, images: images}
}

// Render converts a note into its Hugo document. refs is the complete set of
// titles linking to this note; when empty no references section is emitted.
//
// Link and image markup is replaced by exact literal substring, keyed on the
// originally captured text, so repeated identical markup is rewritten
// uniformly and partially-rewritten content is never re-matched.
func (r *Renderer) Render(note models.Note, refs []string) (string, error) {
	body := strings.TrimSpace(note.RawBody)
	if body == "" {
		body = r.emptyBody
	}

	for _, link := range parser.Links(body) {
		body = strings.ReplaceAll(body, link.Text, hugoLink(link.Title(), link.Slug()))
	}

	for _, img := range parser.Images(body) {
		if err := r.images.EnsureCopied(img.Filename); err != nil {
			return "", fmt.Errorf("render %q: %w", note.Title(), err)
		}
		body = strings.ReplaceAll(body, img.Text, fmt.Sprintf("![%s](/%s)", img.Caption, img.Filename))
	}

	if !strings.HasPrefix(body, "#") {
		body = markdownTitle(note.Title()) + body
	}

	return hugoHeader(note.Title()) + body + referenceList(refs), nil
}

// Placeholder produces a stub document for a title that is linked to but has
// no source note, carrying only the backlink section.
func (r *Renderer) Placeholder(title string, refs []string) string {
	return hugoHeader(title) + markdownTitle(title) + r.emptyBody + referenceList(refs)
}

// hugoHeader returns the YAML front matter block for a post.
func hugoHeader(title string) string {
	return fmt.Sprintf("---\ntitle: \"%s\"\n---\n", title)
}

// hugoLink returns a Hugo-flavored Markdown link to the post with the given slug.
func hugoLink(title, s string) string {
	return fmt.Sprintf("[%s]({{< ref \"/docs/%s\" >}})", title, s)
}

// markdownTitle returns a synthesized level-1 heading for the title.
func markdownTitle(title string) string {
	return fmt.Sprintf("# %s\n\n", title)
}

// referenceList returns the References section listing every backlinking
// title, sorted, or the empty string when there are none.
func referenceList(refs []string) string {
	if len(refs) == 0 {
		return ""
	}
	sorted := make([]string, len(refs))
	copy(sorted, refs)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString("\n\n---\n## References\n")
	for _, title := range sorted {
		fmt.Fprintf(&b, "- %s\n", hugoLink(title, slug.Make(title)))
	}
	return b.String()
}
