// Package static serves the site's compiled-in content. The YAML documents
// under data/ are embedded in the binary and decoded once at start-up.
package static

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"portfolio-site/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Catalog holds every decoded collection.
type Catalog struct {
	Projects []domain.Project
	Services []domain.Service
	Posts    []domain.BlogPost
	Profile  domain.Profile
}

// Load decodes the embedded content.
func Load() (*Catalog, error) {
	return LoadFS(dataFS, "data")
}

// LoadFS decodes projects.yaml, services.yaml, blog.yaml and profile.yaml from dir in fsys.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	var c Catalog
	if err := decodeFile(fsys, dir+"/projects.yaml", &c.Projects); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, dir+"/services.yaml", &c.Services); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, dir+"/blog.yaml", &c.Posts); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, dir+"/profile.yaml", &c.Profile); err != nil {
		return nil, err
	}

	if err := checkIDs("projects", c.Projects, func(p domain.Project) string { return p.ID }); err != nil {
		return nil, err
	}
	if err := checkIDs("services", c.Services, func(s domain.Service) string { return s.ID }); err != nil {
		return nil, err
	}
	if err := checkIDs("blog", c.Posts, func(b domain.BlogPost) string { return b.ID }); err != nil {
		return nil, err
	}
	return &c, nil
}

func decodeFile(fsys fs.FS, name string, out interface{}) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// checkIDs enforces non-empty ids that are unique within one collection.
func checkIDs[T any](collection string, items []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		key := id(it)
		if key == "" {
			return fmt.Errorf("%s: entry %d has an empty id", collection, i)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%s: duplicate id %q", collection, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
