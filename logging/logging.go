// Package logging sets up the file logger shared by every component.
//
// The terminal belongs to the UI while the program runs, so log output goes
// to a file under the XDG state directory unless another path is configured.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adrg/xdg"
	"github.com/gogpu/gg"
	"github.com/sirupsen/logrus"

	"boardsketch/config"
)

var logFile = "boardsketch/boardsketch.log"

// Setup opens the log file and returns a configured logger together with a
// function that releases the file. At debug level the drawing library's own
// diagnostics are routed into the same logger.
func Setup(cfg config.LogConfig) (*logrus.Logger, func(), error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	path := cfg.File
	if path == "" {
		path, err = xdg.StateFile(logFile)
		if err != nil {
			return nil, nil, fmt.Errorf("locate log file: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log := New(f, level)
	closers := []func(){}
	if level >= logrus.DebugLevel {
		w := log.WriterLevel(logrus.DebugLevel)
		gg.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
		closers = append(closers, func() {
			gg.SetLogger(nil)
			w.Close()
		})
	}
	closers = append(closers, func() { f.Close() })

	return log, func() {
		for _, c := range closers {
			c()
		}
	}, nil
}

// New returns a logger writing text records to w.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	return log
}
