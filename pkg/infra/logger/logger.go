package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NeuralTrust/bedrock-guardrails/pkg/config"
	"github.com/sirupsen/logrus"
)

const fileBufferSize = 32 * 1024

// NewLogger builds the process logger. Logs never go to stdout, which is
// reserved for command results. The returned closer flushes the log file, if any.
func NewLogger(cfg config.LogConfig) (*logrus.Logger, io.Closer) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg config.LogConfig, console io.Writer) (*logrus.Logger, io.Closer) {
	logger := logrus.New()
	logger.SetFormatter(formatter(cfg.Format))
	logger.SetLevel(level(cfg.Level))
	logger.SetOutput(console)

	if cfg.File == "" {
		return logger, nopCloser{}
	}

	logFile := filepath.Clean(cfg.File)
	if dir := filepath.Dir(logFile); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			logger.WithError(err).Warn("failed to create log directory, logging to console only")
			return logger, nopCloser{}
		}
	}

	asyncWriter, err := NewAsyncFileWriter(logFile, fileBufferSize)
	if err != nil {
		logger.WithError(err).Warn("failed to initialize async log writer, logging to console only")
		return logger, nopCloser{}
	}

	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook(console))

	return logger, asyncWriter
}

func formatter(format string) logrus.Formatter {
	if format == "json" {
		return &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "time",
				logrus.FieldKeyMsg:  "msg",
			},
		}
	}
	return &logrus.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	}
}

func level(name string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
