// Package window maintains the display window over the filtered+sorted job
// collection: how many leading items are materialized, when the window may
// grow, and the scroll bookkeeping (persisted offset, direction, the
// scroll-to-top affordance) that drives it.
package window

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"go-jobdash-backend/internal/domain"
)

const (
	narrowViewportPx = 768
	narrowPageSize   = 10
	widePageSize     = 15

	scrollTopThresholdPx = 300
	sentinelProximityPx  = 100
	defaultDebounce      = 50 * time.Millisecond

	// One page of window per 100px of restored scroll offset.
	offsetPerPagePx = 100
)

// Controller owns the window state for one dashboard session. The window
// only grows while the source data stays the same; new source data resets it.
type Controller struct {
	mu              sync.Mutex
	page            int
	itemsPerPage    int
	lastLoadedCount int

	lastOffset    int
	scrollingDown bool
	showScrollTop bool

	debounce time.Duration
	pending  *time.Timer
	closed   bool

	store   domain.CacheStore
	totalFn func() int
	log     *slog.Logger
}

// New sizes the window for the reported viewport width and, when a scroll
// offset survived the last session, opens enough pages to cover it so the
// restored scroll target is already rendered.
func New(store domain.CacheStore, totalFn func() int, viewportWidth int, log *slog.Logger) *Controller {
	perPage := widePageSize
	if viewportWidth > 0 && viewportWidth < narrowViewportPx {
		perPage = narrowPageSize
	}

	c := &Controller{
		page:         1,
		itemsPerPage: perPage,
		debounce:     defaultDebounce,
		store:        store,
		totalFn:      totalFn,
		log:          log,
	}

	if raw, ok := store.LoadRaw(domain.KeyScrollPosition); ok {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			c.page = pagesForOffset(offset)
			c.lastOffset = offset
			log.Info("restoring scroll position", "offset", offset, "pages", c.page)
		}
	}
	return c
}

func pagesForOffset(offset int) int {
	pages := (offset + offsetPerPagePx - 1) / offsetPerPagePx
	if pages < 1 {
		pages = 1
	}
	return pages
}

func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller) ItemsPerPage() int {
	return c.itemsPerPage
}

func (c *Controller) ShowScrollTop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showScrollTop
}

// Visible computes how many leading items of a collection of size total are
// rendered, and records the high-water mark so a later filter change cannot
// abruptly truncate the user's scroll depth.
func (c *Controller) Visible(total int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := c.page * c.itemsPerPage
	if c.lastLoadedCount > v {
		v = c.lastLoadedCount
	}
	if v > total {
		v = total
	}
	if v > c.lastLoadedCount {
		c.lastLoadedCount = v
	}
	return v
}

// LoadMore advances the window one page, but only while more of the
// collection remains; past the end it is a no-op.
func (c *Controller) LoadMore(total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadMoreLocked(total)
}

func (c *Controller) loadMoreLocked(total int) {
	if c.page*c.itemsPerPage < total {
		c.page++
	}
}

// ResetForNewData collapses the window back to the first page. Called when
// the source collection itself is replaced, not on mere filter/sort changes.
func (c *Controller) ResetForNewData() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.page = 1
	c.lastLoadedCount = 0
	c.lastOffset = 0
	c.scrollingDown = false
	c.showScrollTop = false
	c.store.SaveRaw(domain.KeyScrollPosition, "0")
}

// TrackScroll ingests one scroll event. Samples are debounced; the settled
// sample persists the offset, updates direction, toggles the scroll-to-top
// flag, and grows the window when the sentinel nears the viewport during a
// downward scroll. Upward scrolling never loads more.
func (c *Controller) TrackScroll(offset, sentinelDistance int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.pending != nil {
		c.pending.Stop()
	}
	c.pending = time.AfterFunc(c.debounce, func() {
		c.sample(offset, sentinelDistance)
	})
}

func (c *Controller) sample(offset, sentinelDistance int) {
	// Resolve the collection size before taking the lock: totalFn reaches
	// back into the usecase, which may itself be calling into this
	// controller.
	total := c.totalFn()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.scrollingDown = offset > c.lastOffset
	c.lastOffset = offset
	c.showScrollTop = offset > scrollTopThresholdPx
	c.store.SaveRaw(domain.KeyScrollPosition, strconv.Itoa(offset))

	if c.scrollingDown && sentinelDistance >= 0 && sentinelDistance <= sentinelProximityPx {
		c.loadMoreLocked(total)
	}
}

// Close cancels any pending debounce timer. Further TrackScroll calls are
// ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}
