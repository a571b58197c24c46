// file: internal/logging/logging.go
// version: 1.0.0
// guid: 7c9eb031-5d64-48ca-a2be-46f80a1c3436

// Package logging configures the global zerolog logger. The console
// belongs to the interactive session, so diagnostics go to a rotating
// log file instead of stdout.
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Init routes the global logger to a rotating file at filename plus any
// extra writers. Unknown level names fall back to info.
func Init(level, filename string, writers ...io.Writer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	logWriters := []io.Writer{&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    1,
		MaxBackups: 2,
	}}
	logWriters = append(logWriters, writers...)

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	log.Logger = log.Output(io.MultiWriter(logWriters...)).
		With().Timestamp().Caller().Logger()
}
