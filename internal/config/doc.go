// Package config provides configuration loading for OrbitSphere.
//
// Configuration is loaded in three layers, later ones winning:
//
//  1. Built-in defaults
//  2. An optional YAML file
//  3. Environment variables (ORBITSPHERE_LOG_LEVEL, ORBITSPHERE_LOG_FORMAT,
//     ORBITSPHERE_LAYOUT_PATH, ORBITSPHERE_EASING, ORBITSPHERE_TPS)
//
// Durations are written the way time.ParseDuration reads them:
//
//	scenes:
//	  easing: "in-out-sine"
//	  title:
//	    fade_in: 1.5s
//	    hold: 2s
//	  detail:
//	    display_point: {x: -4, y: 0}
//
// The display point is checked for finiteness here; the detail view applies
// its own range fallback.
package config
