// Package prompt loads prompt fragment libraries and composes render
// prompts from them. A library is a JSON array of fragment groups; one
// fragment is picked from each group and the picks are joined by spaces.
package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Library is an ordered list of fragment groups.
type Library [][]string

// Load reads a fragment library from a JSON file.
func Load(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt library: %w", err)
	}

	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse prompt library %s: %w", path, err)
	}

	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("invalid prompt library %s: %w", path, err)
	}
	return lib, nil
}

// Validate checks that the library can compose a prompt: at least one
// group, and no empty groups.
func (l Library) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("library has no fragment groups")
	}
	for i, group := range l {
		if len(group) == 0 {
			return fmt.Errorf("fragment group %d is empty", i)
		}
	}
	return nil
}

// Compose builds one prompt by picking a fragment from each group with
// the injected pick function (pick(n) must return a value in [0, n)).
func (l Library) Compose(pick func(n int) int) string {
	parts := make([]string, len(l))
	for i, group := range l {
		parts[i] = group[pick(len(group))]
	}
	return strings.Join(parts, " ")
}

// Starter returns the library seeded by `inkcycle init` for a fresh
// installation.
func Starter() Library {
	return Library{
		{
			"a single rose in morning light",
			"a field of wild tulips",
			"cherry blossoms over a quiet pond",
			"sunflowers against a storm sky",
			"white orchids on dark stone",
		},
		{
			"watercolor",
			"oil painting",
			"ink sketch",
			"soft pastel",
		},
		{
			"muted colors",
			"vivid colors",
			"high contrast",
		},
	}
}
