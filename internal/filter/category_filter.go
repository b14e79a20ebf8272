// Package filter backs the category filter widget: a one-shot asynchronous
// load of the category list plus the query-string rewriting its selections
// trigger.
package filter

import (
	"context"
	"sync"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/service"
	"github.com/BangKartavya/evently/pkg/logger"
	"github.com/BangKartavya/evently/pkg/urlquery"
	"go.uber.org/zap"
)

// AllCategories is the permanent first option. Selecting it clears the
// category constraint rather than matching a category of that name.
const AllCategories = "All"

// categoryKey is the query-string key the filter rewrites
const categoryKey = "category"

// CategoryFilter loads the selectable categories once, in the background,
// and rewrites listing queries for a selection. Before the load completes
// only the permanent option is offered; a failed load stays that way for
// the filter's lifetime.
type CategoryFilter struct {
	categories service.CategoryService

	once  sync.Once
	ready chan struct{}

	mu     sync.RWMutex
	loaded []*domain.Category
}

// NewCategoryFilter creates a CategoryFilter in its loading state
func NewCategoryFilter(categories service.CategoryService) *CategoryFilter {
	return &CategoryFilter{
		categories: categories,
		ready:      make(chan struct{}),
	}
}

// Load kicks off the one-shot background load. Safe to call more than once;
// only the first call does anything.
func (f *CategoryFilter) Load(ctx context.Context) {
	f.once.Do(func() {
		go func() {
			defer close(f.ready)
			categories, err := f.categories.GetAllCategories(ctx)
			if err != nil {
				logger.WithContext(ctx).Error("category filter load failed", zap.Error(err))
				return
			}
			f.mu.Lock()
			f.loaded = categories
			f.mu.Unlock()
		}()
	})
}

// Ready returns a channel closed once the load has finished, successfully
// or not
func (f *CategoryFilter) Ready() <-chan struct{} {
	return f.ready
}

// Options returns the selectable names: the permanent option first, then
// whatever the load produced
func (f *CategoryFilter) Options() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	options := make([]string, 0, len(f.loaded)+1)
	options = append(options, AllCategories)
	for _, c := range f.loaded {
		options = append(options, c.Name)
	}
	return options
}

// Rewrite applies a selection to a listing query string. The permanent
// option removes the category key; any other selection upserts it.
func Rewrite(query, selection string) string {
	if selection == AllCategories || selection == "" {
		return urlquery.RemoveKeys(query, categoryKey)
	}
	return urlquery.Upsert(query, categoryKey, selection)
}
