// Package logging holds zerolog helpers shared by the commands and services.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier that also
// carries context fields through ContextHook.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger().Hook(ContextHook{})
}
