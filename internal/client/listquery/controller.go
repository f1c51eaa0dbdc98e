package listquery

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/client"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
	"github.com/shiftnotes/shiftnotes-cli/internal/common"
	"github.com/shiftnotes/shiftnotes-cli/internal/logging"
)

// DefaultDebounce is the quiet period before a search is sent.
const DefaultDebounce = 300 * time.Millisecond

// Fetcher loads one page for the encoded query.
type Fetcher[W any] func(ctx context.Context, q url.Values) (models.Page[W], error)

// Mapper turns a wire record into its display form. It must be pure.
type Mapper[W, V any] func(W) V

// Timer is the part of *time.Timer the debounce needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

type Options[V any] struct {
	// Name labels log lines, e.g. "mailbox.unread".
	Name           string
	DebounceWindow time.Duration
	PageSize       int
	// CursorPaging moves with the server's next/previous cursors instead of
	// page numbers.
	CursorPaging   bool
	InitialFilters map[string]string
	SortKey        string
	SortDesc       bool
	Logger         logging.Logger
	// OnChange receives every new snapshot, in order.
	OnChange func(Snapshot[V])
	// Message converts a fetch error into the text shown to the user.
	Message   func(error) string
	AfterFunc AfterFunc
}

type Controller[W, V any] struct {
	fetch  Fetcher[W]
	mapper Mapper[W, V]
	opts   Options[V]
	log    logging.Logger

	mu       sync.Mutex
	idle     *sync.Cond
	query    Query
	snap     Snapshot[V]
	seq      uint64
	version  uint64
	inflight int
	mounted  bool
	base     context.Context
	stopBase context.CancelFunc
	cancel   context.CancelFunc

	pending     *string
	debounce    Timer
	debounceGen uint64

	emitMu  sync.Mutex
	emitted uint64
}

func New[W, V any](fetch Fetcher[W], mapper Mapper[W, V], opts Options[V]) *Controller[W, V] {
	if opts.DebounceWindow <= 0 {
		opts.DebounceWindow = DefaultDebounce
	}
	if opts.PageSize <= 0 {
		opts.PageSize = common.DefaultPageSize
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Message == nil {
		opts.Message = client.Message
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = func(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
	}

	c := &Controller[W, V]{
		fetch:  fetch,
		mapper: mapper,
		opts:   opts,
		log:    opts.Logger.With("screen", opts.Name),
		query: Query{
			Filters:  map[string]string{},
			Page:     1,
			PageSize: opts.PageSize,
			SortKey:  opts.SortKey,
			SortDesc: opts.SortDesc,
		},
	}
	for k, v := range opts.InitialFilters {
		if v != "" {
			c.query.Filters[k] = v
		}
	}
	c.idle = sync.NewCond(&c.mu)
	c.snap.Query = c.query.clone()
	return c
}

// Mount starts the screen and issues the first fetch. Requests are bound to
// ctx; cancelling it has the same effect as Unmount for in-flight work.
func (c *Controller[W, V]) Mount(ctx context.Context) {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.base, c.stopBase = context.WithCancel(ctx)
	snap := c.issueLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// Unmount cancels in-flight requests and any pending search. No state
// changes happen afterwards.
func (c *Controller[W, V]) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mounted {
		return
	}
	c.mounted = false
	c.stopDebounceLocked()
	c.pending = nil
	c.seq++
	if c.stopBase != nil {
		c.stopBase()
	}
}

// SetFilter applies one filter and fetches immediately from the first page.
// An empty value removes the filter. A pending search is sent along.
func (c *Controller[W, V]) SetFilter(key, value string) {
	c.SetFilters(map[string]string{key: value})
}

// SetFilters applies several filters with a single fetch.
func (c *Controller[W, V]) SetFilters(filters map[string]string) {
	c.update(func(q *Query) bool {
		for key, value := range filters {
			if value == "" {
				delete(q.Filters, key)
			} else {
				q.Filters[key] = value
			}
		}
		q.firstPage()
		c.foldPendingLocked(q)
		return true
	})
}

// SetSearch records the search text and fetches once the input has been
// quiet for the debounce window.
func (c *Controller[W, V]) SetSearch(text string) {
	c.mu.Lock()
	c.stopDebounceLocked()
	c.pending = &text
	c.snap.SearchInput = text
	c.debounceGen++
	gen := c.debounceGen
	c.debounce = c.opts.AfterFunc(c.opts.DebounceWindow, func() { c.fireSearch(gen) })
	c.mu.Unlock()
}

// Flush sends a pending search now.
func (c *Controller[W, V]) Flush() {
	c.update(func(q *Query) bool {
		if c.pending == nil {
			return false
		}
		c.foldPendingLocked(q)
		return true
	})
}

func (c *Controller[W, V]) fireSearch(gen uint64) {
	c.update(func(q *Query) bool {
		if gen != c.debounceGen || c.pending == nil {
			return false
		}
		c.foldPendingLocked(q)
		return true
	})
}

func (c *Controller[W, V]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	c.update(func(q *Query) bool {
		q.Page = n
		q.Cursor = ""
		return true
	})
}

// NextPage reports false when the server said there is no next page.
func (c *Controller[W, V]) NextPage() bool {
	moved := false
	c.update(func(q *Query) bool {
		if c.snap.Next == "" {
			return false
		}
		if c.opts.CursorPaging {
			q.Cursor = c.snap.Next
		} else {
			q.Page++
		}
		moved = true
		return true
	})
	return moved
}

func (c *Controller[W, V]) PrevPage() bool {
	moved := false
	c.update(func(q *Query) bool {
		switch {
		case c.opts.CursorPaging && c.snap.Previous != "":
			q.Cursor = c.snap.Previous
		case !c.opts.CursorPaging && q.Page > 1:
			q.Page--
		default:
			return false
		}
		moved = true
		return true
	})
	return moved
}

// SetCursor jumps to an opaque server cursor.
func (c *Controller[W, V]) SetCursor(cursor string) {
	c.update(func(q *Query) bool {
		q.Cursor = cursor
		return true
	})
}

// SetSort changes the ordering and returns to the first page.
func (c *Controller[W, V]) SetSort(key string, desc bool) {
	c.update(func(q *Query) bool {
		q.SortKey, q.SortDesc = key, desc
		q.firstPage()
		return true
	})
}

func (c *Controller[W, V]) Refetch() {
	c.update(func(*Query) bool { return true })
}

// ToggleFilters flips the filter panel flag. It never fetches.
func (c *Controller[W, V]) ToggleFilters() {
	c.mu.Lock()
	c.snap.FiltersExpanded = !c.snap.FiltersExpanded
	snap := c.nextSnapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

func (c *Controller[W, V]) Snapshot() Snapshot[V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.clone()
}

// Wait blocks until no fetch is in flight.
func (c *Controller[W, V]) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.inflight > 0 {
		c.idle.Wait()
	}
}

// update mutates the query under the lock and, when mutate reports a change
// and the screen is mounted, issues a fetch. Before Mount the change is only
// recorded.
func (c *Controller[W, V]) update(mutate func(q *Query) bool) {
	c.mu.Lock()
	if !mutate(&c.query) {
		c.mu.Unlock()
		return
	}
	if !c.mounted {
		c.snap.Query = c.query.clone()
		c.mu.Unlock()
		return
	}
	snap := c.issueLocked()
	c.mu.Unlock()
	c.emit(snap)
}

func (c *Controller[W, V]) foldPendingLocked(q *Query) {
	if c.pending == nil {
		return
	}
	q.Search = *c.pending
	q.firstPage()
	c.pending = nil
	c.stopDebounceLocked()
}

func (c *Controller[W, V]) stopDebounceLocked() {
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
}

func (c *Controller[W, V]) issueLocked() Snapshot[V] {
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	id := c.seq
	ctx, cancel := context.WithCancel(c.base)
	c.cancel = cancel

	q := c.query.clone()
	c.snap.Query = q.clone()
	c.snap.State = Loading
	c.snap.RequestID = id
	c.inflight++

	c.log.Debug(ctx, "fetch issued", "request_id", id, "query", q.Values().Encode())
	go c.run(ctx, cancel, id, q)
	return c.nextSnapshotLocked()
}

func (c *Controller[W, V]) run(ctx context.Context, cancel context.CancelFunc, id uint64, q Query) {
	defer cancel()
	page, err := c.fetch(ctx, q.Values())

	c.mu.Lock()
	c.inflight--
	defer c.idle.Broadcast()

	if !c.mounted || id != c.seq {
		c.mu.Unlock()
		c.log.Debug(ctx, "stale result discarded", "request_id", id)
		return
	}

	if err != nil {
		c.snap.State = Error
		c.snap.Err = err
		c.snap.Message = c.opts.Message(err)
		c.log.Error(ctx, "fetch failed", "request_id", id, "error", err)
	} else {
		items := make([]V, 0, len(page.Results))
		for _, w := range page.Results {
			items = append(items, c.mapper(w))
		}
		c.snap.State = Loaded
		c.snap.Items = items
		c.snap.Count = page.Count
		c.snap.Next = page.Next
		c.snap.Previous = page.Previous
		c.snap.Err = nil
		c.snap.Message = ""
	}
	snap := c.nextSnapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

func (c *Controller[W, V]) nextSnapshotLocked() Snapshot[V] {
	c.version++
	c.snap.version = c.version
	return c.snap.clone()
}

// emit delivers snap unless a newer one has already gone out.
func (c *Controller[W, V]) emit(snap Snapshot[V]) {
	if c.opts.OnChange == nil {
		return
	}
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	if snap.version <= c.emitted {
		return
	}
	c.emitted = snap.version
	c.opts.OnChange(snap)
}
