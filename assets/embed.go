package assets

import (
	"embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var FS embed.FS

// Messages is the text shown for each stage of a session.
type Messages struct {
	Welcome      string `yaml:"welcome"`
	Prompt       string `yaml:"prompt"`
	InvalidEntry string `yaml:"invalid_entry"`
	TooLow       string `yaml:"too_low"`
	TooBig       string `yaml:"too_big"`
	Correct      string `yaml:"correct"`
	Aborted      string `yaml:"aborted"`
}

var (
	defaultOnce sync.Once
	defaultMsgs Messages
	defaultErr  error
)

// DefaultMessages returns the embedded catalogue, parsed once.
func DefaultMessages() (Messages, error) {
	defaultOnce.Do(func() {
		b, err := FS.ReadFile("messages.yaml")
		if err != nil {
			defaultErr = err
			return
		}
		defaultErr = yaml.Unmarshal(b, &defaultMsgs)
	})
	return defaultMsgs, defaultErr
}

// ParseMessages decodes a YAML catalogue. Keys left empty fall back to
// the embedded defaults.
func ParseMessages(b []byte) (Messages, error) {
	m, err := DefaultMessages()
	if err != nil {
		return Messages{}, err
	}
	var override Messages
	if err := yaml.Unmarshal(b, &override); err != nil {
		return Messages{}, fmt.Errorf("parse messages: %w", err)
	}
	merge(&m.Welcome, override.Welcome)
	merge(&m.Prompt, override.Prompt)
	merge(&m.InvalidEntry, override.InvalidEntry)
	merge(&m.TooLow, override.TooLow)
	merge(&m.TooBig, override.TooBig)
	merge(&m.Correct, override.Correct)
	merge(&m.Aborted, override.Aborted)
	return m, nil
}

// LoadMessages returns the embedded catalogue when path is empty,
// otherwise the file at path layered over it.
func LoadMessages(path string) (Messages, error) {
	if path == "" {
		return DefaultMessages()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Messages{}, fmt.Errorf("read messages %s: %w", path, err)
	}
	return ParseMessages(b)
}

func merge(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
