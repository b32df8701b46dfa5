package icons

import "strings"

// ID identifies one UI icon.
type ID string

const (
	IDPrevious     ID = "previous"
	IDNext         ID = "next"
	IDExternalLink ID = "external-link"
)

// Definition describes a catalog icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{
		ID:          IDPrevious,
		Name:        "Previous",
		Description: "Shows the previous photo of a project carousel.",
	},
	{
		ID:          IDNext,
		Name:        "Next",
		Description: "Shows the next photo of a project carousel.",
	},
	{
		ID:          IDExternalLink,
		Name:        "External link",
		Description: "Opens the project outside the gallery.",
	},
}

// Catalog returns a copy of the icon definitions.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	id = ID(strings.TrimSpace(string(id)))
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
