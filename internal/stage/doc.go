// Package stage holds the visual elements the scene modules animate.
//
// Items live in an ark ECS world as entities carrying Transform, Orbit,
// Sprite, Path and Info components; an Item is a weak handle to one of them.
// Groups, the detail panel, the restart button and the picker are plain
// values. Every handle tolerates being nil or stale so a missing element
// never stops a choreography.
package stage
