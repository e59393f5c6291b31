package sources

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromArgs(t *testing.T) {
	list, err := Load([]string{"golang", "programming"}, "", 25)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("Expected 2 sources, got: %d", len(list))
	}

	if list[0].Name != "golang" {
		t.Errorf("Expected name 'golang', got: %s", list[0].Name)
	}
	if list[0].Type != TypeReddit {
		t.Errorf("Expected default type reddit, got: %s", list[0].Type)
	}
	if list[0].Limit != 25 {
		t.Errorf("Expected default limit 25, got: %d", list[0].Limit)
	}
}

func TestLoadFromFile(t *testing.T) {
	yamlData := `sources:
  - name: golang
    limit: 10
  - name: engineering-blog
    type: rss
    url: https://example.com/feed.xml
`

	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	list, err := Load(nil, path, 25)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("Expected 2 sources, got: %d", len(list))
	}

	if list[0].Limit != 10 {
		t.Errorf("Expected explicit limit 10, got: %d", list[0].Limit)
	}
	if list[0].Type != TypeReddit {
		t.Errorf("Expected default type reddit, got: %s", list[0].Type)
	}

	if list[1].Type != TypeRSS {
		t.Errorf("Expected type rss, got: %s", list[1].Type)
	}
	if list[1].URL != "https://example.com/feed.xml" {
		t.Errorf("Expected feed URL, got: %s", list[1].URL)
	}
	if list[1].Limit != 25 {
		t.Errorf("Expected default limit 25, got: %d", list[1].Limit)
	}
}

func TestLoadCombinesArgsAndFile(t *testing.T) {
	yamlData := `sources:
  - name: technology
`

	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	list, err := Load([]string{"golang"}, path, 25)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("Expected 2 sources, got: %d", len(list))
	}
	if list[0].Name != "golang" || list[1].Name != "technology" {
		t.Errorf("Expected args before file entries, got: %s, %s", list[0].Name, list[1].Name)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name     string
		yamlData string
	}{
		{
			name: "missing name",
			yamlData: `sources:
  - type: reddit
`,
		},
		{
			name: "rss without url",
			yamlData: `sources:
  - name: some-blog
    type: rss
`,
		},
		{
			name: "unknown type",
			yamlData: `sources:
  - name: golang
    type: usenet
`,
		},
		{
			name: "limit out of range",
			yamlData: `sources:
  - name: golang
    limit: 500
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sources.yml")
			if err := os.WriteFile(path, []byte(tt.yamlData), 0644); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}

			if _, err := Load(nil, path, 25); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestLoadNoSources(t *testing.T) {
	if _, err := Load(nil, "", 25); err == nil {
		t.Error("Expected error for empty source list, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(nil, "/nonexistent/sources.yml", 25); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
