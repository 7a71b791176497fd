package config

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/text"
)

// Logger builds a logger writing to LogFile at a level set by Verbosity.
func (c *Config) Logger() *log.Logger {
	return &log.Logger{
		Handler: handlerFor(c.LogFile),
		Level:   LevelFor(c.Verbosity),
	}
}

// LevelFor maps a verbosity count to a log level.
func LevelFor(verbosity int) log.Level {
	switch {
	case verbosity <= 0:
		return log.ErrorLevel
	case verbosity == 1:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}

func handlerFor(w io.Writer) log.Handler {
	if w == nil {
		return discard.New()
	}
	return text.New(w)
}
