package logger

import (
	"os"

	"github.com/rs/zerolog"
)

var (
	enabled = true // flip to false to nuke logs
	log     = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
)

func EnableLogging(b bool) {
	enabled = b
}

func Info(msg string, v ...interface{}) {
	if !enabled {
		return
	}
	log.Info().Msgf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	if !enabled {
		return
	}
	log.Error().Msgf(msg, v...)
}
