package locator

import "fmt"

// Error types for lookup operations. Per-server failures are never
// errors; they are absorbed into Outcome values. Only structurally
// invalid requests surface here.
var (
	ErrEmptyQuery         = fmt.Errorf("player query cannot be empty")
	ErrNilFetcher         = fmt.Errorf("fetcher cannot be nil")
	ErrInvalidConcurrency = fmt.Errorf("max concurrency must be positive")
	ErrInvalidTimeout     = fmt.Errorf("fetch timeout must be positive")
)
