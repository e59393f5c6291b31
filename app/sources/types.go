package sources

type SourceType string

const (
	TypeReddit SourceType = "reddit"
	TypeRSS    SourceType = "rss"
)

type Source struct {
	Name  string     `yaml:"name"`
	Type  SourceType `yaml:"type"`
	URL   string     `yaml:"url"`
	Limit int        `yaml:"limit"`
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}
