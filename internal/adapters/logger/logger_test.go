package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	log := logger.New().(*logger.Logger)
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.Info("converting batch")
	log.Warn("snapshot discarded")
	log.Error(zerr.New("converter exited 1"))

	out := buf.String()
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "converting batch")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "snapshot discarded")
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "converter exited 1")
}
