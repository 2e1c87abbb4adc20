// Package storage implements the file-system collaborators of the pipeline:
// reading source notes, writing rendered posts, and copying images.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/raido/internal/models"
)

// Source reads Markdown notes from the writer's post directory.
type Source struct {
	root string // absolute path to the source notes directory
}

// NewSource creates a Source rooted at dir. The directory must already exist.
func NewSource(dir string) (*Source, error) {
	abs, err := resolveRoot(dir)
	if err != nil {
		return nil, err
	}
	return &Source{root: abs}, nil
}

// Notes reads every .md file directly inside the source directory,
// non-recursively. Any read failure aborts the whole listing.
func (s *Source) Notes() ([]models.Note, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("storage: list notes: %w", err)
	}
	var out []models.Note
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		p := filepath.Join(s.root, e.Name())
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("storage: read note: %w", err)
		}
		out = append(out, models.Note{Path: p, RawBody: string(data)})
	}
	return out, nil
}

// Site writes rendered posts under the Hugo content root.
type Site struct {
	root string // absolute path to the site content directory
}

// NewSite creates a Site rooted at dir. The directory must already exist.
func NewSite(dir string) (*Site, error) {
	abs, err := resolveRoot(dir)
	if err != nil {
		return nil, err
	}
	return &Site{root: abs}, nil
}

// WritePost atomically writes content to <root>/<slug>/index.md,
// creating the post directory as needed.
func (s *Site) WritePost(slug string, content []byte) error {
	dir, err := s.postDir(slug)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir post dir: %w", err)
	}

	target := filepath.Join(dir, "index.md")
	tmp, err := os.CreateTemp(dir, ".raido-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// PostPath returns the path the post with the given slug is written to.
func (s *Site) PostPath(slug string) string {
	return filepath.Join(s.root, slug, "index.md")
}

// postDir resolves the directory for a slug and rejects any result that
// escapes the site root (directory traversal).
func (s *Site) postDir(slug string) (string, error) {
	if slug == "" {
		return "", fmt.Errorf("storage: empty slug")
	}
	joined := filepath.Join(s.root, filepath.Clean(slug))
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("storage: resolve post dir: %w", err)
	}
	if !strings.HasPrefix(abs, s.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: slug escapes site root: %s", slug)
	}
	return abs, nil
}

// resolveRoot turns dir into an absolute path and checks it is a directory.
func resolveRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return abs, nil
}
