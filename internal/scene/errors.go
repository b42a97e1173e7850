package scene

import "errors"

// Domain errors for the scene package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, scene.ErrIncompleteRegistry) {
//	    // not every state has a module
//	}
var (
	// ErrIncompleteRegistry is returned by Start when a state has no module.
	ErrIncompleteRegistry = errors.New("scene: incomplete registry")

	// ErrDuplicateModule is returned when a second module claims a state.
	ErrDuplicateModule = errors.New("scene: module already registered")

	// ErrRegistryClosed is returned when registering after Start.
	ErrRegistryClosed = errors.New("scene: registry closed")

	// ErrUnknownState is returned for states outside the registry.
	ErrUnknownState = errors.New("scene: unknown state")

	// ErrNilModule is returned when registering a nil module.
	ErrNilModule = errors.New("scene: nil module")

	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("scene: already started")
)
