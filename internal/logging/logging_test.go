package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Config{})
	require.NoError(t, err)
	require.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	log.Info("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Config{Level: "debug", Format: "JSON"})
	require.NoError(t, err)

	log.WithField("nodes", 3).Debug("graph loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "graph loaded", entry["msg"])
	require.Equal(t, float64(3), entry["nodes"])
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Config{Level: "loud"})
	require.Error(t, err)

	_, err = New(&bytes.Buffer{}, Config{Format: "xml"})
	require.Error(t, err)
}
