package sources

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load assembles the source list for a run: positional subreddit names
// first, then entries from the optional YAML file. Defaults are applied
// before validation.
func Load(names []string, sourcesFile string, defaultLimit int) ([]Source, error) {
	var list []Source

	for _, name := range names {
		list = append(list, Source{Name: name, Type: TypeReddit})
	}

	if sourcesFile != "" {
		fromFile, err := loadFile(sourcesFile)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", sourcesFile, err)
		}
		list = append(list, fromFile...)
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("no sources specified")
	}

	for i := range list {
		setDefaults(&list[i], defaultLimit)

		if err := validate(&list[i]); err != nil {
			return nil, fmt.Errorf("invalid source at index %d: %w", i, err)
		}

		slog.Debug("Source configured", "source", list[i].Name, "type", string(list[i].Type), "limit", list[i].Limit)
	}

	return list, nil
}

func loadFile(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var parsed sourcesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return parsed.Sources, nil
}

func setDefaults(s *Source, defaultLimit int) {
	if s.Type == "" {
		s.Type = TypeReddit
	}
	if s.Limit == 0 {
		s.Limit = defaultLimit
	}
}

func validate(s *Source) error {
	if s.Name == "" {
		return fmt.Errorf("source name is required")
	}

	switch s.Type {
	case TypeReddit:
	case TypeRSS:
		if s.URL == "" {
			return fmt.Errorf("rss source '%s' requires a url", s.Name)
		}
	default:
		return fmt.Errorf("unknown source type '%s'", s.Type)
	}

	if s.Limit < 1 || s.Limit > 100 {
		return fmt.Errorf("limit must be between 1 and 100, got %d", s.Limit)
	}

	return nil
}
