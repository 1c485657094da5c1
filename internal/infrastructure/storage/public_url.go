package storage

import (
	"fmt"
	"strings"
)

// Resolver turns stored object paths into public URLs. Stored values
// may already be absolute (older rows were written that way); those
// pass through untouched.
type Resolver struct {
	baseURL string
}

// NewResolver creates a resolver rooted at the storage service base URL.
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// PublicURL resolves path within bucket. Empty paths resolve to "".
func (r *Resolver) PublicURL(bucket, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", r.baseURL, bucket, strings.TrimLeft(path, "/"))
}
