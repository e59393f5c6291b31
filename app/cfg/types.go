package cfg

type Cfg struct {
	// Pipeline configuration
	Sources     []string
	Limit       int
	DBPath      string
	Output      string
	SourcesFile string

	// HTTP client configuration
	UserAgent string
	Timeout   int // seconds

	// Server configuration (serve mode)
	Serve           bool
	Port            string
	WorkerCount     int
	RefreshInterval int // seconds

	// Application metadata
	Debug   bool
	Version string
}
