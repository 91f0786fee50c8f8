package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/NeuralTrust/bedrock-guardrails/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONToConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := newLogger(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	defer closer.Close()

	logger.WithField("guardrail_id", "gr-1").Debug("creating guardrail")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "creating guardrail", entry["msg"])
	assert.Equal(t, "gr-1", entry["guardrail_id"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := newLogger(config.LogConfig{Level: "chatty"}, &buf)
	defer closer.Close()

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestNewLogger_FileAndConsole(t *testing.T) {
	var buf bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "logs", "guardrails.log")

	logger, closer := newLogger(config.LogConfig{Level: "info", Format: "json", File: logFile}, &buf)
	logger.Info("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestAsyncFileWriter_CloseIsIdempotent(t *testing.T) {
	w, err := NewAsyncFileWriter(filepath.Join(t.TempDir(), "x.log"), 1024)
	require.NoError(t, err)

	n, err := w.Write([]byte("line\n"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
