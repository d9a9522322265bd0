package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestInfoWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	log.Info("catalog registered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catalog registered", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestWithComponentTagsEntries(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	log.WithComponent("accordion").Warn("deprecated attribute")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "accordion", entry["component"])
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	log.Debug("noise")
	assert.Zero(t, buf.Len())
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	log.Info("no panic")
	log.Error("still no panic", nil)
	assert.Nil(t, log.WithFields(map[string]any{"k": "v"}))
}
