package personality

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	serrors "shaimind/src/errors"
)

//go:embed data/*.toml
var embeddedPersonas embed.FS

// Catalog maps a persona key (filename minus extension) to its
// loaded definition. Built once at startup; entries are templates,
// sessions work on clones.
type Catalog map[string]*PersonalityState

// Get looks up a persona template by key
func (c Catalog) Get(key string) (*PersonalityState, error) {
	p, ok := c[strings.ToLower(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", serrors.ErrPersonaNotFound, key)
	}
	return p, nil
}

// Keys returns the catalog keys in stable sorted order
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load parses a single persona definition file
func Load(path string) (*PersonalityState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &serrors.LoadError{Path: path, Err: err}
	}
	return parsePersona(data, path)
}

func parsePersona(data []byte, path string) (*PersonalityState, error) {
	var p PersonalityState
	if _, err := toml.Decode(string(data), &p); err != nil {
		return nil, &serrors.LoadError{Path: path, Err: err}
	}

	if p.Name == "" {
		return nil, &serrors.LoadError{Path: path, Field: "name"}
	}
	if p.SystemPrompt == "" {
		return nil, &serrors.LoadError{Path: path, Field: "system_prompt"}
	}

	p.EmotionalIntensity = clampIntensity(p.EmotionalIntensity)
	return &p, nil
}

func clampIntensity(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}

// LoadCatalog builds the persona catalog: embedded defaults first,
// then the user directory, which may add or override entries.
// Malformed files are logged and skipped; other personas still load.
func LoadCatalog(dir string, logger *zap.Logger) (Catalog, error) {
	catalog := Catalog{}

	entries, err := embeddedPersonas.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("reading embedded personas: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		data, err := embeddedPersonas.ReadFile(filepath.Join("data", entry.Name()))
		if err != nil {
			continue
		}
		p, err := parsePersona(data, entry.Name())
		if err != nil {
			logger.Warn("skipping embedded persona", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		catalog[keyFor(entry.Name())] = p
	}

	if dir != "" {
		userEntries, err := os.ReadDir(dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading personas directory %s: %w", dir, err)
		}
		for _, entry := range userEntries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
				continue
			}
			p, err := Load(filepath.Join(dir, entry.Name()))
			if err != nil {
				logger.Warn("skipping persona", zap.String("file", entry.Name()), zap.Error(err))
				continue
			}
			catalog[keyFor(entry.Name())] = p
		}
	}

	if len(catalog) == 0 {
		return nil, serrors.ErrEmptyCatalog
	}

	return catalog, nil
}

func keyFor(filename string) string {
	return strings.ToLower(strings.TrimSuffix(filename, ".toml"))
}
