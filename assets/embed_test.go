package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultMessages(t *testing.T) {
	m, err := DefaultMessages()
	if err != nil {
		t.Fatalf("DefaultMessages() error = %v", err)
	}
	fields := map[string]string{
		"welcome":       m.Welcome,
		"prompt":        m.Prompt,
		"invalid_entry": m.InvalidEntry,
		"too_low":       m.TooLow,
		"too_big":       m.TooBig,
		"correct":       m.Correct,
		"aborted":       m.Aborted,
	}
	for key, v := range fields {
		if v == "" {
			t.Errorf("embedded %s is empty", key)
		}
	}
	if !strings.Contains(m.Welcome, "1 to 100") {
		t.Errorf("Welcome = %q, want it to name the range", m.Welcome)
	}
}

func TestParseMessagesOverridesOnlySetKeys(t *testing.T) {
	m, err := ParseMessages([]byte("too_low: Higher!\ntoo_big: Lower!\n"))
	if err != nil {
		t.Fatalf("ParseMessages() error = %v", err)
	}
	if m.TooLow != "Higher!" || m.TooBig != "Lower!" {
		t.Errorf("overrides = %q/%q, want Higher!/Lower!", m.TooLow, m.TooBig)
	}
	def, _ := DefaultMessages()
	if m.Correct != def.Correct {
		t.Errorf("Correct = %q, want default %q", m.Correct, def.Correct)
	}
}

func TestParseMessagesInvalidYAML(t *testing.T) {
	if _, err := ParseMessages([]byte("too_low: [unterminated")); err == nil {
		t.Error("ParseMessages() expected error for bad YAML")
	}
}

func TestLoadMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yaml")
	if err := os.WriteFile(path, []byte("correct: Got it\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadMessages(path)
	if err != nil {
		t.Fatalf("LoadMessages() error = %v", err)
	}
	if m.Correct != "Got it" {
		t.Errorf("Correct = %q, want %q", m.Correct, "Got it")
	}

	if _, err := LoadMessages(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadMessages(missing) expected error")
	}
}
