// Package screen adapts the app to Ebitengine's game loop: one app tick per
// Update, mouse clicks converted to world space, and a full redraw per frame.
package screen
