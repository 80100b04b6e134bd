package recording

import "errors"

var (
	// ErrNoMeasurer is returned by bounds queries on a store without a Measurer.
	ErrNoMeasurer = errors.New("recording: no measurer configured")

	// ErrUnknownCommand is returned by Playback for a command type it cannot dispatch.
	ErrUnknownCommand = errors.New("recording: unknown command")

	// ErrUnknownBackend is returned by NewBackend for a name nobody registered.
	ErrUnknownBackend = errors.New("recording: unknown backend")

	// ErrNotBegun is returned by backends that receive drawing calls outside
	// a Begin/End pair.
	ErrNotBegun = errors.New("recording: backend not begun")
)
