package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/msomdec/little-lemon/internal/domain"
	"golang.org/x/sync/singleflight"
)

// MenuCatalog owns the in-memory view of the menu. It starts Cold and moves
// to Warm exactly once, after the first completed warm-up.
type MenuCatalog struct {
	menu   domain.MenuRepository
	source domain.MenuSource

	warmup singleflight.Group
	warm   atomic.Bool

	mu       sync.RWMutex
	items    []domain.MenuItem
	criteria domain.FilterCriteria
	filtered []domain.MenuItem
	seedErr  error
}

// NewMenuCatalog creates a Cold catalog over the local cache and remote source.
func NewMenuCatalog(menu domain.MenuRepository, source domain.MenuSource) *MenuCatalog {
	return &MenuCatalog{
		menu:     menu,
		source:   source,
		items:    []domain.MenuItem{},
		filtered: []domain.MenuItem{},
	}
}

// EnsureWarm loads the menu into memory, seeding the local cache from the
// remote source when the cache is empty. Concurrent callers share a single
// warm-up. It keeps the values of the caller's context but not its
// cancellation, so a caller that goes away does not abort the shared fetch.
//
// Remote fetch and seeding failures are logged and exposed through
// LastFetchError; they still complete the warm-up. Only a failure to read
// the local cache is returned, and the catalog then stays Cold.
func (c *MenuCatalog) EnsureWarm(ctx context.Context) error {
	if c.warm.Load() {
		return nil
	}
	_, err, _ := c.warmup.Do("warm", func() (any, error) {
		if c.warm.Load() {
			return nil, nil
		}
		return nil, c.warmUp(context.WithoutCancel(ctx))
	})
	return err
}

func (c *MenuCatalog) warmUp(ctx context.Context) error {
	stored, err := c.menu.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read menu cache: %w", err)
	}

	var seedErr error
	if len(stored) == 0 {
		seedErr = c.seed(ctx)
	}

	stored, err = c.menu.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("re-read menu cache: %w", err)
	}

	c.mu.Lock()
	c.items = stored
	c.filtered = FilterMenu(stored, c.criteria)
	c.seedErr = seedErr
	c.mu.Unlock()
	c.warm.Store(true)

	slog.Info("menu catalog warm", "items", len(stored))
	return nil
}

func (c *MenuCatalog) seed(ctx context.Context) error {
	fetched, err := c.source.FetchMenu(ctx)
	if err != nil {
		slog.Warn("menu fetch failed, catalog stays empty", "error", err)
		return err
	}
	if len(fetched) == 0 {
		slog.Info("remote menu is empty")
		return nil
	}
	if err := c.menu.InsertAll(ctx, fetched); err != nil {
		slog.Error("seed menu cache", "error", err, "items", len(fetched))
		return fmt.Errorf("seed menu cache: %w", err)
	}
	slog.Info("menu cache seeded", "items", len(fetched))
	return nil
}

// IsWarm reports whether the warm-up has completed.
func (c *MenuCatalog) IsWarm() bool {
	return c.warm.Load()
}

// LastFetchError returns why seeding failed during warm-up, or nil. It lets
// callers tell "no items" apart from "could not reach the server".
func (c *MenuCatalog) LastFetchError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.seedErr
}

// Items returns every cached item in store order.
func (c *MenuCatalog) Items() []domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Categories returns the distinct categories of the cached items in the
// order they first appear.
func (c *MenuCatalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	categories := []string{}
	for _, m := range c.items {
		if !slices.Contains(categories, m.Category) {
			categories = append(categories, m.Category)
		}
	}
	return categories
}

// SetFilter stores the criteria. It does not recompute the filtered list.
func (c *MenuCatalog) SetFilter(criteria domain.FilterCriteria) {
	c.mu.Lock()
	c.criteria = criteria.Clone()
	c.mu.Unlock()
}

// ToggleCategory selects category if it was unselected and unselects it
// otherwise. It does not recompute the filtered list.
func (c *MenuCatalog) ToggleCategory(category string) domain.FilterCriteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = c.criteria.Toggle(category)
	return c.criteria.Clone()
}

// Criteria returns the current filter criteria.
func (c *MenuCatalog) Criteria() domain.FilterCriteria {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.criteria.Clone()
}

// RecomputeFiltered applies the current criteria to the cached items and
// stores the result for Filtered.
func (c *MenuCatalog) RecomputeFiltered() []domain.MenuItem {
	c.mu.RLock()
	items := c.items
	criteria := c.criteria.Clone()
	c.mu.RUnlock()

	filtered := FilterMenu(items, criteria)

	c.mu.Lock()
	c.filtered = filtered
	c.mu.Unlock()
	return slices.Clone(filtered)
}

// Filtered returns the result of the last RecomputeFiltered call, or of the
// warm-up, which applies the criteria current at that time.
func (c *MenuCatalog) Filtered() []domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.filtered)
}
