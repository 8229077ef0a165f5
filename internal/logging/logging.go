// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures zerolog output and level. Production environments get
// JSON on stderr, everything else a console writer.
func Setup(env, level string) {
	setup(os.Stderr, env, level)
}

func setup(out io.Writer, env, level string) {
	production := env == "production"
	if production {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(out)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}

	lvl, known := ParseLevel(level, production)
	zerolog.SetGlobalLevel(lvl)
	if !known {
		log.Warn().Msgf("Unknown log level '%s', defaulting to info.", level)
	}
}

// ParseLevel maps a level name to a zerolog level. An empty name picks
// warn for production and info otherwise. The bool is false for unknown names.
func ParseLevel(level string, production bool) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "fatal":
		return zerolog.FatalLevel, true
	case "panic":
		return zerolog.PanicLevel, true
	case "disabled":
		return zerolog.Disabled, true
	case "":
		if production {
			return zerolog.WarnLevel, true
		}
		return zerolog.InfoLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}
