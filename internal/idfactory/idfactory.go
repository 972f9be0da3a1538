// Package idfactory allocates entries for generated item templates.
//
// IDs start at a fixed offset (above every base template entry). Released IDs
// go into a min-heap of free ranges and are reused lowest-first before the
// high-water mark grows.
// On startup the factory is reconciled against persisted templates so that
// gaps left by deleted templates are reused.
package idfactory

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/udisondev/itemforge/internal/constants"
	"github.com/udisondev/itemforge/internal/metrics"
)

var (
	// ErrBelowStart is returned when reclaiming an id below the start offset.
	ErrBelowStart = errors.New("id below allocation start")
	// ErrNeverIssued is returned when reclaiming an id above the high-water mark.
	ErrNeverIssued = errors.New("id was never issued")
)

// PurgeStats mirrors the orphan cleanup result of the store.
type PurgeStats struct {
	Instances int64 // item instances not held by any inventory
	Templates int64 // generated templates not referenced by any instance
}

// Store is the persistence view needed for reconciliation.
type Store interface {
	// MaxEntry returns the highest persisted generated-template entry (0 if none).
	MaxEntry(ctx context.Context) (int32, error)
	// PurgeOrphans removes unreferenced instances and generated templates.
	PurgeOrphans(ctx context.Context) (PurgeStats, error)
	// EntriesFrom returns all persisted generated-template entries >= start.
	EntriesFrom(ctx context.Context, start int32) ([]int32, error)
}

// Stats is a snapshot of the allocator state.
type Stats struct {
	Start int32
	Next  int32
	Max   int32
	Free  int
	Used  int
}

// Factory is the generated-template ID allocator.
// Every id in [start, maxID] is either in the used set or in exactly one free span.
type Factory struct {
	mu        sync.Mutex
	start     int32
	maxID     int32
	free      spanHeap
	freeCount int
	used      map[int32]struct{}
}

// New creates an allocator whose first id is start.
func New(start int32) *Factory {
	return &Factory{
		start: start,
		maxID: start - 1,
		used:  make(map[int32]struct{}),
	}
}

// Start returns the allocation offset.
func (f *Factory) Start() int32 {
	return f.start
}

// PeekNextID returns the id the next CommitID will hand out without reserving it.
func (f *Factory) PeekNextID() int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.peekLocked()
}

func (f *Factory) peekLocked() int32 {
	if f.free.Len() > 0 {
		return f.free.peek()
	}
	return f.maxID + 1
}

// CommitID reserves and returns the id PeekNextID reported.
func (f *Factory) CommitID() int32 {
	f.mu.Lock()
	defer f.mu.Unlock()

	var id int32
	if f.free.Len() > 0 {
		root := &f.free[0]
		id = root.lo
		if root.lo == root.hi {
			heap.Pop(&f.free)
		} else {
			// Остаток спана всё ещё меньше всех остальных, порядок кучи не меняется
			root.lo++
		}
		f.freeCount--
	} else {
		if f.maxID == constants.ItemEntryMax {
			panic("idfactory: item entry space exhausted")
		}
		f.maxID++
		id = f.maxID
	}
	f.used[id] = struct{}{}
	f.reportLocked()
	return id
}

// Reclaim returns an issued id to the free list.
// Reclaiming an id that is already free is a no-op.
func (f *Factory) Reclaim(id int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id < f.start {
		return fmt.Errorf("reclaiming %d (start %d): %w", id, f.start, ErrBelowStart)
	}
	if id > f.maxID {
		return fmt.Errorf("reclaiming %d (max %d): %w", id, f.maxID, ErrNeverIssued)
	}
	if _, ok := f.used[id]; !ok {
		return nil
	}
	delete(f.used, id)
	f.pushFreeLocked(span{lo: id, hi: id})
	f.reportLocked()
	return nil
}

func (f *Factory) pushFreeLocked(s span) {
	heap.Push(&f.free, s)
	f.freeCount += s.size()
}

// Reconcile rebuilds the allocator state from the store.
// The high-water mark is read before the orphan purge, so entries freed by the
// purge end up in the free list. Gaps between persisted entries become free
// spans, so the cost depends on the number of entries, not on their range.
// Call once before serving generation requests.
func (f *Factory) Reconcile(ctx context.Context, store Store) error {
	maxEntry, err := store.MaxEntry(ctx)
	if err != nil {
		return fmt.Errorf("reading max template entry: %w", err)
	}

	purged, err := store.PurgeOrphans(ctx)
	if err != nil {
		return fmt.Errorf("purging orphans: %w", err)
	}

	entries, err := store.EntriesFrom(ctx, f.start)
	if err != nil {
		return fmt.Errorf("listing template entries: %w", err)
	}
	entries = slices.Clone(entries)
	slices.Sort(entries)

	f.mu.Lock()
	defer f.mu.Unlock()

	if maxEntry > f.maxID {
		f.maxID = maxEntry
	}
	if n := len(entries); n > 0 && entries[n-1] > f.maxID {
		f.maxID = entries[n-1]
	}

	f.used = make(map[int32]struct{}, len(entries))
	f.free = f.free[:0]
	f.freeCount = 0

	// next считается в int64: после ItemEntryMax int32 переполнился бы
	next := int64(f.start)
	for _, e := range entries {
		if e < f.start {
			continue
		}
		if int64(e) > next {
			f.pushFreeLocked(span{lo: int32(next), hi: e - 1})
		}
		f.used[e] = struct{}{}
		next = max(next, int64(e)+1)
	}
	if next <= int64(f.maxID) {
		f.pushFreeLocked(span{lo: int32(next), hi: f.maxID})
	}

	f.reportLocked()

	slog.Info("item id factory reconciled",
		"start", f.start,
		"max", f.maxID,
		"used", len(f.used),
		"free", f.freeCount,
		"free_spans", f.free.Len(),
		"purged_instances", purged.Instances,
		"purged_templates", purged.Templates)
	return nil
}

func (f *Factory) reportLocked() {
	metrics.IDFactoryFree.Set(float64(f.freeCount))
	metrics.IDFactoryMax.Set(float64(f.maxID))
}

// Stats returns a snapshot of the allocator state.
func (f *Factory) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Stats{
		Start: f.start,
		Next:  f.peekLocked(),
		Max:   f.maxID,
		Free:  f.freeCount,
		Used:  len(f.used),
	}
}
