// Package world loads stage layouts: the JSON description of the orbiting
// items, the title and HUD text, and where the restart button sits.
package world
