package redis

import (
	"context"
	"fmt"
	"strings"
)

// SearchHistoryStore keeps one recent-search list per admin and page,
// most recent first, deduplicated, capped at MaxSearchHistory entries.
type SearchHistoryStore struct {
	maxEntries int64
}

// MaxSearchHistory is the number of recent searches kept per page.
const MaxSearchHistory = 5

var (
	lpushHistory  = LPush
	lremHistory   = LRem
	ltrimHistory  = LTrim
	lrangeHistory = LRange
	delHistory    = Del
)

// NewSearchHistoryStore creates a search history store
func NewSearchHistoryStore() *SearchHistoryStore {
	return &SearchHistoryStore{maxEntries: MaxSearchHistory}
}

func historyKey(adminID, page string) string {
	return fmt.Sprintf("search_history:%s:%s", adminID, page)
}

// Record pushes a query to the front of the list. An existing copy is
// removed first so the list never holds duplicates.
func (s *SearchHistoryStore) Record(ctx context.Context, adminID, page, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	key := historyKey(adminID, page)
	if err := lremHistory(ctx, key, 0, query); err != nil {
		return err
	}
	if err := lpushHistory(ctx, key, query); err != nil {
		return err
	}
	return ltrimHistory(ctx, key, 0, s.maxEntries-1)
}

// List returns the stored queries, most recent first
func (s *SearchHistoryStore) List(ctx context.Context, adminID, page string) ([]string, error) {
	return lrangeHistory(ctx, historyKey(adminID, page), 0, s.maxEntries-1)
}

// Remove deletes one query from the list
func (s *SearchHistoryStore) Remove(ctx context.Context, adminID, page, query string) error {
	return lremHistory(ctx, historyKey(adminID, page), 0, query)
}

// Clear drops the whole list for a page
func (s *SearchHistoryStore) Clear(ctx context.Context, adminID, page string) error {
	return delHistory(ctx, historyKey(adminID, page))
}
