// Package script holds the words the greeting shows: the narrative lines of
// each phase, the petal game messages and the closing question.
package script

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrNoLines is returned when a phase that reveals lines has none.
var ErrNoLines = errors.New("script: no lines")

// Petals holds the petal game configuration and its status messages.
type Petals struct {
	Count    int    `yaml:"count"`
	Fate     string `yaml:"fate"`
	Loves    string `yaml:"loves"`
	LovesNot string `yaml:"loves_not"`
	Final    string `yaml:"final"`
}

// Script is the full text of one greeting.
type Script struct {
	Recipient   string   `yaml:"recipient"`
	Opening     string   `yaml:"opening"`
	Thoughts    []string `yaml:"thoughts"`
	Bridge      []string `yaml:"bridge"`
	Petals      Petals   `yaml:"petals"`
	RoseCaption string   `yaml:"rose_caption"`
	Ask         string   `yaml:"ask"`
	Hint        string   `yaml:"hint"`
}

// Default returns the embedded script.
func Default() *Script {
	s, err := Parse(defaultYAML)
	if err != nil {
		// The embedded script is part of the binary; failing here is a build defect.
		panic(fmt.Sprintf("embedded script: %v", err))
	}
	return s
}

// DefaultYAML returns the embedded script source, for `valentine init`.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Load reads and validates a script file. Fields missing from the file are
// taken from the default script.
func Load(path string) (*Script, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // path is cleaned, chosen by the user
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cleanPath, err)
	}
	return s, nil
}

// Parse decodes YAML on top of the default script and validates the result.
func Parse(b []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(defaultYAML, &s); err != nil {
		return nil, fmt.Errorf("parsing default script: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every phase has something to show.
func (s *Script) Validate() error {
	if len(s.Thoughts) == 0 {
		return fmt.Errorf("thoughts: %w", ErrNoLines)
	}
	if len(s.Bridge) == 0 {
		return fmt.Errorf("bridge: %w", ErrNoLines)
	}
	if s.Petals.Count < 1 {
		return fmt.Errorf("petals.count must be at least 1, got %d", s.Petals.Count)
	}
	if strings.TrimSpace(s.Ask) == "" {
		return errors.New("ask: message is required")
	}
	if _, err := template.New("ask").Parse(s.Ask); err != nil {
		return fmt.Errorf("ask: %w", err)
	}
	return nil
}

// AskMessage renders the closing question with the recipient filled in.
func (s *Script) AskMessage() string {
	if !strings.Contains(s.Ask, "{{") {
		return s.Ask
	}
	t, err := template.New("ask").Parse(s.Ask)
	if err != nil {
		return s.Ask
	}
	var b strings.Builder
	if err := t.Execute(&b, s); err != nil {
		return s.Ask
	}
	return b.String()
}

// PetalStatus returns the petal game message for the number of petals
// removed so far. The last petal always reads as the affirmative final line.
func (s *Script) PetalStatus(removed int) string {
	switch {
	case removed <= 0:
		return s.Petals.Fate
	case removed >= s.Petals.Count:
		return s.Petals.Final
	case removed%2 == 1:
		return s.Petals.Loves
	default:
		return s.Petals.LovesNot
	}
}
