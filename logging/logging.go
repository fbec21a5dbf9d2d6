// Package logging builds the logrus loggers used by rangehighlight hosts.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New. The zero value logs at info level to stderr.
type Options struct {
	Level string `mapstructure:"level"`
	// File, when set, sends output through a rotating log file.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
	// Stderr also copies file output to stderr.
	Stderr bool `mapstructure:"stderr"`
	JSON   bool `mapstructure:"json"`
}

// Logger is a logrus logger that owns its rotating file, if any.
type Logger struct {
	*logrus.Logger
	file *lumberjack.Logger
}

// New creates a logger from o.
func New(o Options) (*Logger, error) {
	level := logrus.InfoLevel
	if o.Level != "" {
		lv, err := logrus.ParseLevel(o.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = lv
	}

	l := logrus.New()
	l.SetLevel(level)
	if o.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	out := &Logger{Logger: l}
	if o.File == "" {
		l.SetOutput(os.Stderr)
		return out, nil
	}
	out.file = &lumberjack.Logger{
		Filename:   o.File,
		MaxSize:    o.MaxSizeMB,
		MaxBackups: o.MaxBackups,
		MaxAge:     o.MaxAgeDays,
		Compress:   o.Compress,
	}
	var w io.Writer = out.file
	if o.Stderr {
		w = io.MultiWriter(out.file, os.Stderr)
	}
	l.SetOutput(w)
	return out, nil
}

// Rotate closes the current log file and starts a new one. It is a no-op
// without a file.
func (l *Logger) Rotate() error {
	if l.file == nil {
		return nil
	}
	return l.file.Rotate()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
