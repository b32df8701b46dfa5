package loader

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/louisbranch/portfolio/internal/gallery"
	"gopkg.in/yaml.v3"
)

// Format names a catalog document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the document format from the extension of name. Anything
// other than .yaml or .yml is JSON.
func FormatOf(name string) Format {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses data as a project sequence in format.
func Decode(data []byte, format Format) ([]gallery.Project, error) {
	var projects []gallery.Project
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &projects); err != nil {
			return nil, fmt.Errorf("parse yaml catalog: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &projects); err != nil {
			return nil, fmt.Errorf("parse json catalog: %w", err)
		}
	}
	return projects, nil
}
