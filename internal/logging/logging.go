// Package logging configures the commonlog backend used by every toyrobot
// package.
package logging

import (
	"io"

	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"
	"gopkg.in/natefinch/lumberjack.v2"

	"toyrobot/internal/config"
)

// Setup installs a simple commonlog backend writing to stderr and, when
// cfg.File is set, also to a size-rotated log file. The returned function
// closes the log file.
func Setup(cfg config.LogConfig) func() error {
	backend := simple.NewBackend()
	backend.Buffered = false
	backend.Configure(cfg.Verbosity, nil)
	commonlog.SetBackend(backend)

	if cfg.File == "" || commonlog.VerbosityToMaxLevel(cfg.Verbosity) == commonlog.None {
		return func() error { return nil }
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	backend.Writer = io.MultiWriter(backend.Writer, file)
	// no ANSI colours in the file
	backend.Format = plainFormat
	return file.Close
}

func plainFormat(message *commonlog.UnstructuredMessage, name []string, level commonlog.Level, _ bool) string {
	return simple.DefaultFormat(message, name, level, false)
}
