package commands

import "errors"

var (
	// ErrInvalidArgumentCount is returned when a command gets too few or too
	// many positional arguments.
	ErrInvalidArgumentCount = errors.New("wrong number of arguments")
	// ErrUnknownCommand is returned for an unrecognised command or sub-command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingSubcommand is returned when a command group is run on its own.
	ErrMissingSubcommand = errors.New("a sub-command is required")
	// ErrInvalidConfig is returned by config validate when problems are found.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrNotImplemented is returned by commands that are reserved but not built.
	ErrNotImplemented = errors.New("not implemented")
)
