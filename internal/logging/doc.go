// Package logging provides structured logging for OrbitSphere.
//
// It wraps log/slog with text or JSON output, level filtering and default
// service/version fields on every entry. Configure it through the logging
// section of the config file:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "text"     # json, text
//	  output: "stderr"   # stdout, stderr
//
// *Logger satisfies the small Logger interfaces declared by the scene and
// scenes packages, so it is injected there directly:
//
//	logger := logging.New(cfg.Logging, version)
//	orch.SetLogger(logger.With("component", "scene"))
package logging
