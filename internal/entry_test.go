package internal

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_EndToEnd(t *testing.T) {
	writerDir := t.TempDir()
	imageDir := t.TempDir()
	outRoot := t.TempDir()

	note := "# First Post\n\nSee [[Second Post]].\n"
	if err := os.WriteFile(filepath.Join(writerDir, "first.md"), []byte(note), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{
		Writer:  WriterConfig{PostDir: writerDir, ImageDir: imageDir},
		Hugo:    HugoConfig{PostDir: filepath.Join(outRoot, "docs"), ImageDir: filepath.Join(outRoot, "static")},
		Content: ContentConfig{EmptyBodyText: "Nothing here yet."},
	}

	if err := Run(context.Background(), WithConfig(cfg)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	post, err := os.ReadFile(filepath.Join(outRoot, "docs", "first_post", "index.md"))
	if err != nil {
		t.Fatalf("rendered post missing: %v", err)
	}
	if !strings.Contains(string(post), `[Second Post]({{< ref "/docs/second_post" >}})`) {
		t.Errorf("post link not rewritten:\n%s", post)
	}

	placeholder, err := os.ReadFile(filepath.Join(outRoot, "docs", "second_post", "index.md"))
	if err != nil {
		t.Fatalf("placeholder missing: %v", err)
	}
	if !strings.Contains(string(placeholder), "Nothing here yet.") {
		t.Errorf("placeholder body wrong:\n%s", placeholder)
	}
}

func TestRun_RequiresConfig(t *testing.T) {
	if err := Run(context.Background()); err == nil {
		t.Fatal("Run without config should fail")
	}
}
