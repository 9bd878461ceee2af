package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultPattern selects catalog files below a catalog root.
const DefaultPattern = "**/*.yaml"

// ErrEmptyCatalog is returned when no shortcut could be loaded.
var ErrEmptyCatalog = errors.New("catalog contains no shortcuts")

//go:embed data
var builtin embed.FS

// Catalog is the immutable, ordered list of shortcuts together with the file
// system image references are resolved against.
type Catalog struct {
	Shortcuts []Shortcut
	FS        fs.FS
}

type catalogFile struct {
	Shortcuts []Shortcut `yaml:"shortcuts"`
}

// Builtin loads the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	sub, err := fs.Sub(builtin, "data")
	if err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	return LoadFS(sub, DefaultPattern)
}

// LoadDir loads every file under dir matching pattern.
func LoadDir(dir, pattern string) (*Catalog, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("catalog dir: %w", err)
	}
	return LoadFS(os.DirFS(dir), pattern)
}

// LoadFS loads and concatenates the YAML files in fsys matching pattern.
// Files are read in lexical order; records keep their order within a file.
func LoadFS(fsys fs.FS, pattern string) (*Catalog, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	c := &Catalog{FS: fsys}
	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		recs, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		c.Shortcuts = append(c.Shortcuts, recs...)
	}
	if len(c.Shortcuts) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// Parse decodes one catalog document and validates its records.
func Parse(data []byte) ([]Shortcut, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for i, s := range f.Shortcuts {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("shortcut %d: %w", i, err)
		}
	}
	return f.Shortcuts, nil
}

// Open resolves an image reference against the catalog FS.
func (c *Catalog) Open(ref string) (fs.File, error) {
	if c == nil || c.FS == nil {
		return nil, fs.ErrNotExist
	}
	name := path.Clean(strings.TrimPrefix(strings.TrimPrefix(ref, "./"), "/"))
	return c.FS.Open(name)
}
