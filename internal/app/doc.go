// Package app is the composition root of the viewer. It builds the stage
// from a layout, registers the title, orbit and detail modules with the
// orchestrator, and exposes a tick-driven surface (Step, Click, Select,
// Restart) shared by the window and the headless simulator.
package app
