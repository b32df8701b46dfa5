package templates

import "strings"

// cssURLEscaper keeps a photo URL inside a single-quoted CSS url().
var cssURLEscaper = strings.NewReplacer(`'`, "%27", `\`, "%5C", "\n", "", "\r", "")

// BackgroundImage returns the background-image value for photo.
func BackgroundImage(photo string) string {
	return "url('" + cssURLEscaper.Replace(photo) + "')"
}

// BackgroundStyle returns the inline style that shows photo on a card.
func BackgroundStyle(photo string) string {
	return "background-image: " + BackgroundImage(photo)
}
