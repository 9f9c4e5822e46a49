package interfaces

import "context"

// Fetcher defines operations for retrieving remote file contents
type Fetcher interface {
	// Fetch downloads the resource at url and returns its body
	Fetch(ctx context.Context, url string) ([]byte, error)
}
