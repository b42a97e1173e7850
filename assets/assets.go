// Package assets embeds the data files shipped inside the binary.
package assets

import "embed"

// Layouts holds the stage layouts under layouts/.
//
//go:embed layouts/*.json
var Layouts embed.FS
