// file: internal/logging/logging_test.go
// version: 1.0.0
// guid: 8dafc142-6e75-49db-b3cf-57a91b2d4547

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Note: no t.Parallel here because Init modifies the global logger.

func TestInit(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "thriftpick.log")
	var buf bytes.Buffer

	Init("debug", logPath, &buf)

	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("Expected global level debug, got %s", zerolog.GlobalLevel())
	}

	log.Info().Str("component", "test").Msg("hello from the session")

	out := buf.String()
	if !strings.Contains(out, "hello from the session") {
		t.Errorf("Expected message in extra writer, got %q", out)
	}
	if !strings.Contains(out, `"component":"test"`) {
		t.Errorf("Expected structured field in output, got %q", out)
	}

	// lumberjack creates the file on first write.
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("Expected log file to exist, got %v", err)
	}
}

func TestInitUnknownLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "thriftpick.log")

	Init("shouting", logPath)

	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("Expected fallback to info level, got %s", zerolog.GlobalLevel())
	}
}

func TestInitEmptyLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "thriftpick.log")

	Init("", logPath)

	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("Expected empty level to mean info, got %s", zerolog.GlobalLevel())
	}
}
