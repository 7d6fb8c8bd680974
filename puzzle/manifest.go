package puzzle

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// NoAnswer marks a part that has no solution for the given input, such as a
// drop timeline that never cuts off the exit.
const NoAnswer = "none"

// Answer holds the two parts every puzzle produces.
type Answer struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

func (a Answer) String() string {
	return fmt.Sprintf("part1=%s part2=%s", a.Part1, a.Part2)
}

// Entry is one puzzle in a manifest. Exactly one of Input and Text is set.
type Entry struct {
	Name   string         `yaml:"name"`
	Kind   string         `yaml:"kind"`
	Input  string         `yaml:"input,omitempty"`
	Text   string         `yaml:"text,omitempty"`
	Params map[string]any `yaml:"params,omitempty"`
	Expect *Answer        `yaml:"expect,omitempty"`
}

// Load returns the puzzle input: the inline text, or the contents of Input.
func (e Entry) Load() (string, error) {
	if e.Text != "" {
		return e.Text, nil
	}
	data, err := os.ReadFile(e.Input)
	if err != nil {
		return "", fmt.Errorf("puzzle %q: %w", e.Name, err)
	}
	return string(data), nil
}

// Manifest is the parsed puzzle list.
type Manifest struct {
	Puzzles []Entry `yaml:"puzzles"`
}

// LoadManifest reads a YAML manifest from path. Relative inputs resolve
// against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: read manifest: %w", err)
	}
	return ParseManifest(data, filepath.Dir(path))
}

// ParseManifest decodes YAML and validates every entry. dir is the base for
// relative input paths.
func ParseManifest(data []byte, dir string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadManifest, err)
	}

	seen := make(map[string]bool, len(m.Puzzles))
	for i := range m.Puzzles {
		e := &m.Puzzles[i]
		switch {
		case e.Name == "":
			return nil, fmt.Errorf("%w: entry %d has no name", ErrBadManifest, i)
		case seen[e.Name]:
			return nil, fmt.Errorf("%w: duplicate name %q", ErrBadManifest, e.Name)
		case e.Kind == "":
			return nil, fmt.Errorf("%w: %q has no kind", ErrBadManifest, e.Name)
		case (e.Input == "") == (e.Text == ""):
			return nil, fmt.Errorf("%w: %q needs exactly one of input or text", ErrBadManifest, e.Name)
		}
		seen[e.Name] = true
		if e.Input != "" && !filepath.IsAbs(e.Input) {
			e.Input = filepath.Join(dir, e.Input)
		}
	}
	return &m, nil
}

// Select returns the named entries in the order given, or every entry when
// names is empty.
func (m *Manifest) Select(names ...string) ([]Entry, error) {
	if len(names) == 0 {
		return m.Puzzles, nil
	}
	out := make([]Entry, 0, len(names))
	for _, name := range names {
		e, ok := m.Find(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPuzzle, name)
		}
		out = append(out, e)
	}
	return out, nil
}

// Find returns the entry called name.
func (m *Manifest) Find(name string) (Entry, bool) {
	for _, e := range m.Puzzles {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
