// Package fs exports research records as markdown files.
package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/deepresearch"
	"gopkg.in/yaml.v3"
)

// Exporter writes records into a directory with replace-on-commit
// semantics. Files are written to baseDir/name.tmp and moved to
// baseDir/name on Commit, so a failed export leaves the previous one intact.
type Exporter struct {
	baseDir string
	name    string
}

// NewExporter creates a new Exporter.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{baseDir: baseDir, name: name}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// RelPath returns the export path of r: <provider>/<id>.md.
func RelPath(r *deepresearch.Research) (string, error) {
	if r.ID == "" || strings.ContainsAny(r.ID, `/\`) || r.ID == "." || r.ID == ".." {
		return "", deepresearch.Errorf(deepresearch.EINVALID, "research ID %q cannot be used as a file name", r.ID)
	}
	provider := r.Provider
	if provider == "" {
		provider = deepresearch.ProviderOther
	}
	return filepath.Join(string(provider), r.ID+".md"), nil
}

// Save writes r to the temporary export directory.
func (e *Exporter) Save(r *deepresearch.Research) error {
	relPath, err := RelPath(r)
	if err != nil {
		return err
	}

	content, err := FormatResearch(r)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(e.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit replaces the export directory with the saved records.
func (e *Exporter) Commit() error {
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}
	return os.Rename(e.tempDir(), e.finalDir())
}

// Abort discards the saved records.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}

type frontMatter struct {
	ID          string   `yaml:"id"`
	Source      string   `yaml:"source"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Provider    string   `yaml:"provider"`
	Category    string   `yaml:"category,omitempty"`
	Tags        []string `yaml:"tags,flow"`
	Author      string   `yaml:"author,omitempty"`
	Views       int      `yaml:"views"`
	Upvotes     int      `yaml:"upvotes"`
	Status      string   `yaml:"status"`
	Created     string   `yaml:"created"`
}

// FormatResearch formats a record as markdown with YAML frontmatter.
func FormatResearch(r *deepresearch.Research) (string, error) {
	fm := frontMatter{
		ID:          r.ID,
		Source:      r.URL,
		Title:       r.Title,
		Description: r.Description,
		Provider:    string(r.Provider),
		Category:    string(r.Category),
		Tags:        r.Tags,
		Author:      strings.TrimSpace(r.AuthorName + " " + r.AuthorHandle),
		Views:       r.ViewCount,
		Upvotes:     r.Upvotes,
		Status:      string(r.IsProcessed),
		Created:     r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if fm.Tags == nil {
		fm.Tags = []string{}
	}

	header, err := yaml.Marshal(&fm)
	if err != nil {
		return "", deepresearch.Errorf(deepresearch.EINTERNAL, "failed to encode frontmatter: %v", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n# ")
	b.WriteString(r.Title)
	b.WriteString("\n\n")
	if r.Summary != "" {
		b.WriteString("> ")
		b.WriteString(r.Summary)
		b.WriteString("\n\n")
	}
	b.WriteString(r.Content)
	b.WriteString("\n")
	return b.String(), nil
}
