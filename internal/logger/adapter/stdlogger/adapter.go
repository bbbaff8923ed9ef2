// Package stdlogger adapts the global zerolog logger to a printf style logger.
package stdlogger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger implements Debugf, Infof, Warningf and Errorf on top of zerolog.
type Logger struct {
	l zerolog.Logger
}

// New returns a Logger writing through the current global logger.
func New() *Logger {
	return &Logger{l: log.Logger}
}

// NewFor returns a Logger tagging every line with the given mod unique ID.
func NewFor(modID string) *Logger {
	return &Logger{l: log.With().Str("mod", modID).Logger()}
}

// Debugf logs on debug level.
func (s *Logger) Debugf(format string, args ...any) {
	s.l.Debug().Msgf(format, args...)
}

// Infof logs on info level.
func (s *Logger) Infof(format string, args ...any) {
	s.l.Info().Msgf(format, args...)
}

// Warningf logs on warn level.
func (s *Logger) Warningf(format string, args ...any) {
	s.l.Warn().Msgf(format, args...)
}

// Errorf logs on error level.
func (s *Logger) Errorf(format string, args ...any) {
	s.l.Error().Msgf(format, args...)
}
