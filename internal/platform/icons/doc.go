// Package icons maps gallery control icons to Lucide symbols and renders
// them as inline SVG.
package icons
