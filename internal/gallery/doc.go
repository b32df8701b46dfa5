// Package gallery owns the portfolio project list and per-session carousel
// state.
//
// Rendering and navigation are pure functions of the loaded projects and the
// caller's input; Controller adds the locking needed to share that state
// across concurrent HTTP handlers.
package gallery
