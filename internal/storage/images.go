package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// ImageCopier copies referenced images from the writer's image directory into
// the site's image directory, preserving file names.
type ImageCopier struct {
	srcDir string
	dstDir string
}

// NewImageCopier creates a copier between the two image directories.
func NewImageCopier(srcDir, dstDir string) *ImageCopier {
	return &ImageCopier{srcDir: srcDir, dstDir: dstDir}
}

// EnsureCopied copies filename to the destination directory unless the
// destination already exists and is at least as new as the source. A missing
// source image is an error and aborts the run.
func (c *ImageCopier) EnsureCopied(filename string) error {
	src := filepath.Join(c.srcDir, filename)
	dst := filepath.Join(c.dstDir, filename)

	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("storage: stat image: %w", err)
	}
	if dstInfo, err := os.Stat(dst); err == nil && !dstInfo.ModTime().Before(srcInfo.ModTime()) {
		return nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("storage: read image: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("storage: write image: %w", err)
	}
	return nil
}
