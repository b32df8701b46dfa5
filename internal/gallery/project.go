package gallery

// Project is one portfolio entry as it appears in the catalog document.
type Project struct {
	ID         int      `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Link       string   `json:"link" yaml:"link"`
	Category   string   `json:"category" yaml:"category"`
	Photos     []string `json:"photos" yaml:"photos"`
	Linguagems []string `json:"linguagems" yaml:"linguagems"`
}

// ElementID returns the DOM id of the project's card.
func (p Project) ElementID() string {
	return ElementID(p.ID)
}

// CoverPhoto returns the first photo, or "" when the project has none.
func (p Project) CoverPhoto() string {
	if len(p.Photos) == 0 {
		return ""
	}
	return p.Photos[0]
}

// Find returns the project with id.
func Find(projects []Project, id int) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
