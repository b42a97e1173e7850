// Package scenes holds the three choreographed states of the viewer: the
// title card, the orbit view and the detail view. Each module builds its
// Enter and Exit choreographies from anim tasks over the shared stage
// elements, and asks the orchestrator for the next state in response to
// the title timer, a pick, or the restart button.
package scenes
