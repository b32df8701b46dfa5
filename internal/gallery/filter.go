package gallery

import "strings"

// AllCategory selects every project.
const AllCategory = "all"

// IsAll reports whether category selects the unfiltered gallery. A missing
// category falls back to AllCategory.
func IsAll(category string) bool {
	return category == "" || category == AllCategory
}

// Filter returns the projects whose category equals category verbatim, in
// source order. IsAll categories return every project.
func Filter(projects []Project, category string) []Project {
	if IsAll(category) {
		out := make([]Project, len(projects))
		copy(out, projects)
		return out
	}
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct non-blank categories in first-appearance
// order.
func Categories(projects []Project) []string {
	seen := make(map[string]struct{}, len(projects))
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		if strings.TrimSpace(p.Category) == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
