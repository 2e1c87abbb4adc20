package publisher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/raido/internal/render"
	"github.com/starford/raido/internal/storage"
	"github.com/starford/raido/internal/testutil"
)

const emptyBody = "This page does not exist yet."

type fixture struct {
	writerDir string
	imageDir  string
	hugoDir   string
	pub       *Publisher
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		writerDir: t.TempDir(),
		imageDir:  t.TempDir(),
		hugoDir:   t.TempDir(),
	}
	source, err := storage.NewSource(f.writerDir)
	if err != nil {
		t.Fatal(err)
	}
	site, err := storage.NewSite(f.hugoDir)
	if err != nil {
		t.Fatal(err)
	}
	copier := storage.NewImageCopier(f.imageDir, f.hugoDir)
	f.pub = New(source, site, render.New(emptyBody, copier), testutil.DiscardLogger())
	return f
}

func (f *fixture) post(t *testing.T, slug string) string {
	t.Helper()
	return testutil.ReadFile(t, filepath.Join(f.hugoDir, slug, "index.md"))
}

func TestRun_RealAndPlaceholderPosts(t *testing.T) {
	f := setup(t)
	testutil.WriteFile(t, f.writerDir, "a.md", "# Note A\n\nSee [[Note B]] and [[Missing Page]].\n")
	testutil.WriteFile(t, f.writerDir, "b.md", "# Note B\n\nplain body\n")

	if err := f.pub.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	a := f.post(t, "note_a")
	if !strings.HasPrefix(a, "---\ntitle: \"Note A\"\n---\n") {
		t.Errorf("note_a front matter wrong:\n%s", a)
	}
	if strings.Contains(a, "## References") {
		t.Errorf("note_a has no inbound links, should carry no references:\n%s", a)
	}
	if !strings.Contains(a, `[Note B]({{< ref "/docs/note_b" >}})`) {
		t.Errorf("note_a link not rewritten:\n%s", a)
	}

	b := f.post(t, "note_b")
	if !strings.Contains(b, "## References") || !strings.Contains(b, `[Note A]({{< ref "/docs/note_a" >}})`) {
		t.Errorf("note_b missing backlink to Note A:\n%s", b)
	}

	// Missing Page was linked to but never written as a source note.
	ph := f.post(t, "missing_page")
	if !strings.Contains(ph, "# Missing Page") || !strings.Contains(ph, emptyBody) {
		t.Errorf("placeholder content wrong:\n%s", ph)
	}
	if !strings.Contains(ph, `[Note A]({{< ref "/docs/note_a" >}})`) {
		t.Errorf("placeholder missing backlink entry:\n%s", ph)
	}
}

func TestRun_NoPlaceholderWhenSlugMatches(t *testing.T) {
	f := setup(t)
	// The link text differs from the target's title in case, but both
	// normalize to the same slug, so the real note satisfies the link.
	testutil.WriteFile(t, f.writerDir, "a.md", "# A\n\n[[note b]]\n")
	testutil.WriteFile(t, f.writerDir, "b.md", "# Note B\n\nbody\n")

	if err := f.pub.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// The real note occupies the slug; its own render is keyed by its literal
	// title ("Note B"), which nothing links to, so it has no references.
	b := f.post(t, "note_b")
	if !strings.Contains(b, "body") {
		t.Errorf("real note overwritten by placeholder:\n%s", b)
	}
	if strings.Contains(b, "## References") {
		t.Errorf("backlinks are keyed by literal link text, not slug:\n%s", b)
	}
}

func TestRun_ImagesCopied(t *testing.T) {
	f := setup(t)
	testutil.WriteFile(t, f.writerDir, "a.md", "# A\n\ncat.png \"A cat\"\n")
	testutil.WriteFile(t, f.imageDir, "cat.png", "imagebytes")

	if err := f.pub.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	copied := testutil.ReadFile(t, filepath.Join(f.hugoDir, "cat.png"))
	if copied != "imagebytes" {
		t.Errorf("image bytes = %q", copied)
	}
	if !strings.Contains(f.post(t, "a"), "![A cat](/cat.png)") {
		t.Errorf("image markup not rewritten")
	}
}

func TestRun_MissingImageAbortsBatch(t *testing.T) {
	f := setup(t)
	testutil.WriteFile(t, f.writerDir, "a.md", "# A\n\nghost.png\n")

	if err := f.pub.Run(); err == nil {
		t.Fatal("expected Run to fail on missing source image")
	}
}

func TestRun_EmptySourceDir(t *testing.T) {
	f := setup(t)
	if err := f.pub.Run(); err != nil {
		t.Fatalf("Run on empty source: %v", err)
	}
	entries, err := os.ReadDir(f.hugoDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no output, got %v", entries)
	}
}

func TestRun_SelfLinkListedInOwnReferences(t *testing.T) {
	f := setup(t)
	testutil.WriteFile(t, f.writerDir, "a.md", "# Note A\n\nSee [[Note A]].\n")

	if err := f.pub.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	a := f.post(t, "note_a")
	if !strings.Contains(a, "## References") || !strings.Contains(a, `- [Note A]({{< ref "/docs/note_a" >}})`) {
		t.Errorf("self-link should appear in the note's own references:\n%s", a)
	}
}
