// Package logging builds the process logger: one JSON object per line with
// ts, level and msg keys plus any structured fields.
package logging

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

// New returns a JSON logger writing to w. Timestamps are rendered in loc;
// an unknown level falls back to info.
func New(w io.Writer, loc *time.Location, level string) *log.Logger {
	if loc == nil {
		loc = time.UTC
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "ts",
			log.FieldKeyMsg:  "msg",
		},
	})
	logger.AddHook(locationHook{loc: loc})
	return logger
}

type locationHook struct {
	loc *time.Location
}

func (h locationHook) Levels() []log.Level {
	return log.AllLevels
}

func (h locationHook) Fire(e *log.Entry) error {
	e.Time = e.Time.In(h.loc)
	return nil
}
