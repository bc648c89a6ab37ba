package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLevels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		Setup(tt.level, &bytes.Buffer{})
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Errorf("Setup(%q) level = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSetupWritesJSONToNonTerminal(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	logger := Setup("info", &buf)
	logger.Info().Str("outcome", "won").Msg("session finished")
	logger.Debug().Msg("filtered")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output %q is not a single JSON line: %v", buf.String(), err)
	}
	if entry["outcome"] != "won" || entry["message"] != "session finished" {
		t.Errorf("entry = %v", entry)
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(buffer) = true, want false")
	}
}
