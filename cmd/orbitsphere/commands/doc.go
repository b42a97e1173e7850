// Package commands defines the orbitsphere CLI.
//
// Commands
//
//   - run        Open the viewer window
//   - simulate   Run the viewer headless and print the scene timeline
//
// # Implementation
//
// The root command loads configuration (file, then environment) and builds
// the logger before any subcommand runs. Both subcommands construct the same
// app; run hands it to the Ebitengine loop, simulate steps it at the
// configured tick rate.
package commands
