// Package category maps file extensions to organization category labels.
package category

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fallback is the label assigned to files whose extension matches no
// configured category, including files with no extension at all.
const Fallback = "others"

// Category is a named group of file extensions.
type Category struct {
	Name       string   `yaml:"name"`
	Extensions []string `yaml:"extensions"`
}

// Table is an ordered set of categories. Lookup scans categories in
// declaration order, so two tables built from the same source classify
// identically for the lifetime of the process. A Table is immutable
// after construction.
type Table struct {
	categories []Category
	index      map[string]string // normalized extension -> category name
}

// New builds a Table from the given categories. Extensions are
// normalized to lowercase; an extension without its leading dot or a
// category without a name is rejected. When the same extension appears
// in more than one category, the first category wins.
func New(categories []Category) (Table, error) {
	t := Table{index: make(map[string]string)}
	for _, c := range categories {
		if c.Name == "" {
			return Table{}, fmt.Errorf("category with empty name")
		}
		norm := Category{Name: c.Name}
		for _, ext := range c.Extensions {
			e := strings.ToLower(ext)
			if !strings.HasPrefix(e, ".") {
				return Table{}, fmt.Errorf("category %s: extension %q missing leading dot", c.Name, ext)
			}
			norm.Extensions = append(norm.Extensions, e)
			if _, ok := t.index[e]; !ok {
				t.index[e] = c.Name
			}
		}
		t.categories = append(t.categories, norm)
	}
	return t, nil
}

// Default returns the built-in table: images, videos, documents, audio,
// archives, and code.
func Default() Table {
	t, err := New([]Category{
		{Name: "images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp"}},
		{Name: "videos", Extensions: []string{".mp4", ".mkv", ".mov", ".avi", ".flv", ".wmv"}},
		{Name: "documents", Extensions: []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".txt", ".rtf"}},
		{Name: "audio", Extensions: []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a"}},
		{Name: "archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"}},
		{Name: "code", Extensions: []string{".py", ".js", ".java", ".c", ".cpp", ".html", ".css", ".php"}},
	})
	if err != nil {
		panic(err) // built-in table is static
	}
	return t
}

// CategoryFor returns the label for the given extension (leading dot
// included). Lookup is case-insensitive; unknown and empty extensions
// map to Fallback. CategoryFor never fails.
func (t Table) CategoryFor(ext string) string {
	if ext == "" {
		return Fallback
	}
	if name, ok := t.index[strings.ToLower(ext)]; ok {
		return name
	}
	return Fallback
}

// Categories returns the configured categories in declaration order.
func (t Table) Categories() []Category {
	return t.categories
}

type rulesFile struct {
	Categories []Category `yaml:"categories"`
}

// Load reads a YAML rules file and builds a Table from it. The file
// holds a categories list; list order becomes table order:
//
//	categories:
//	  - name: images
//	    extensions: [.jpg, .png]
//	  - name: music
//	    extensions: [.mp3, .flac]
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return Table{}, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	if len(rf.Categories) == 0 {
		return Table{}, fmt.Errorf("rules file %s defines no categories", path)
	}
	return New(rf.Categories)
}
