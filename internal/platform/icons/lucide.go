package icons

import "strings"

const (
	lucideSymbolPrefix = "lucide-"
	lucideDefaultName  = "circle-help"
)

var lucideIconNames = map[ID]string{
	IDPrevious:     "chevron-left",
	IDNext:         "chevron-right",
	IDExternalLink: "external-link",
}

// Path data from the Lucide icon set (ISC license), 24x24 viewBox.
var lucidePaths = map[string][]string{
	"chevron-left":  {"m15 18-6-6 6-6"},
	"chevron-right": {"m9 18 6-6-6-6"},
	"external-link": {"M15 3h6v6", "M10 14 21 3", "M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"},
	"circle-help":   {"M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20z", "M9.09 9a3 3 0 0 1 5.83 1c0 2-3 3-3 3", "M12 17h.01"},
}

// LucideName returns the Lucide icon name for id.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when id is unknown.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return lucideDefaultName
}

// LucideSymbolID returns the symbol id used when icons are referenced from a
// sprite.
func LucideSymbolID(id ID) string {
	return lucideSymbolPrefix + LucideNameOrDefault(id)
}

// SVG returns inline SVG markup for id. The icon is decorative; controls carry
// their own accessible label.
func SVG(id ID) string {
	name := LucideNameOrDefault(id)
	var b strings.Builder
	b.WriteString(`<svg class="icon ` + lucideSymbolPrefix + name + `" xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`)
	for _, d := range lucidePaths[name] {
		b.WriteString(`<path d="` + d + `"/>`)
	}
	b.WriteString(`</svg>`)
	return b.String()
}
