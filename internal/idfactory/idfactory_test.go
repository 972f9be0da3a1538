package idfactory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/itemforge/internal/constants"
)

const start int32 = 100000

type mockStore struct {
	max     int32
	entries []int32
	purged  PurgeStats
	err     error
	calls   []string
}

func (m *mockStore) MaxEntry(context.Context) (int32, error) {
	m.calls = append(m.calls, "max")
	return m.max, m.err
}

func (m *mockStore) PurgeOrphans(context.Context) (PurgeStats, error) {
	m.calls = append(m.calls, "purge")
	return m.purged, nil
}

func (m *mockStore) EntriesFrom(_ context.Context, from int32) ([]int32, error) {
	m.calls = append(m.calls, "entries")
	var out []int32
	for _, e := range m.entries {
		if e >= from {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestFactory_FreshAllocation(t *testing.T) {
	t.Parallel()

	f := New(start)
	assert.Equal(t, start, f.PeekNextID())
	assert.Equal(t, start, f.PeekNextID(), "peek does not reserve")
	assert.Equal(t, start, f.CommitID())
	assert.Equal(t, start+1, f.PeekNextID())
	assert.Equal(t, start+1, f.CommitID())

	s := f.Stats()
	assert.Equal(t, start+1, s.Max)
	assert.Equal(t, 2, s.Used)
	assert.Zero(t, s.Free)
}

func TestFactory_ReclaimReuseOrder(t *testing.T) {
	t.Parallel()

	f := New(start)
	for range 3 {
		f.CommitID()
	}
	// Issued: start, start+1, start+2.
	require.NoError(t, f.Reclaim(start+1))
	require.NoError(t, f.Reclaim(start))

	assert.Equal(t, start, f.PeekNextID())
	assert.Equal(t, start, f.CommitID())
	assert.Equal(t, start+1, f.CommitID())
	assert.Equal(t, start+3, f.CommitID())
}

func TestFactory_ReclaimTwiceIsNoop(t *testing.T) {
	t.Parallel()

	f := New(start)
	f.CommitID()
	f.CommitID()

	require.NoError(t, f.Reclaim(start))
	require.NoError(t, f.Reclaim(start))

	assert.Equal(t, start, f.CommitID())
	assert.Equal(t, start+2, f.CommitID(), "duplicate reclaim must not hand the id out twice")
}

func TestFactory_ReclaimOutOfRange(t *testing.T) {
	t.Parallel()

	f := New(start)
	f.CommitID()

	err := f.Reclaim(start - 1)
	assert.True(t, errors.Is(err, ErrBelowStart))

	err = f.Reclaim(start + 5)
	assert.True(t, errors.Is(err, ErrNeverIssued))
}

func TestFactory_Reconcile(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		max:     start + 5,
		entries: []int32{start, start + 2, start + 5, 25, 17},
		purged:  PurgeStats{Instances: 3, Templates: 1},
	}

	f := New(start)
	require.NoError(t, f.Reconcile(context.Background(), store))

	assert.Equal(t, []string{"max", "purge", "entries"}, store.calls, "max is read before the purge")

	s := f.Stats()
	assert.Equal(t, start+5, s.Max)
	assert.Equal(t, 3, s.Used)
	assert.Equal(t, 3, s.Free)

	// Gaps come back lowest-first, then the high-water mark grows.
	assert.Equal(t, start+1, f.CommitID())
	assert.Equal(t, start+3, f.CommitID())
	assert.Equal(t, start+4, f.CommitID())
	assert.Equal(t, start+6, f.CommitID())
}

func TestFactory_ReconcileEmptyStore(t *testing.T) {
	t.Parallel()

	f := New(start)
	require.NoError(t, f.Reconcile(context.Background(), &mockStore{}))
	assert.Equal(t, start, f.PeekNextID())
	assert.Equal(t, start-1, f.Stats().Max)
}

func TestFactory_ReconcileError(t *testing.T) {
	t.Parallel()

	f := New(start)
	err := f.Reconcile(context.Background(), &mockStore{err: errors.New("db down")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestFactory_ConcurrentCommitUnique(t *testing.T) {
	t.Parallel()

	f := New(start)
	const workers, perWorker = 8, 250

	var mu sync.Mutex
	seen := make(map[int32]bool, workers*perWorker)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id := f.CommitID()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, start+workers*perWorker-1, f.Stats().Max)
}

func TestSpanHeap_PeekEmptyPanics(t *testing.T) {
	t.Parallel()

	var h spanHeap
	assert.Panics(t, func() { h.peek() })
}

func TestFactory_ReconcileAtEntrySpaceEnd(t *testing.T) {
	t.Parallel()

	const high = constants.ItemEntryMax - 47
	store := &mockStore{
		max:     constants.ItemEntryMax,
		entries: []int32{constants.ItemEntryMax},
	}

	f := New(high)
	done := make(chan error, 1)
	go func() { done <- f.Reconcile(context.Background(), store) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Reconcile did not return")
	}

	s := f.Stats()
	assert.Equal(t, constants.ItemEntryMax, s.Max)
	assert.Equal(t, 47, s.Free)
	assert.Equal(t, 1, s.Used)
	assert.Equal(t, high, s.Next)

	for i := range int32(47) {
		assert.Equal(t, high+i, f.CommitID())
	}
	assert.Panics(t, func() { f.CommitID() })
}

func TestFactory_ReconcileSparseEntries(t *testing.T) {
	t.Parallel()

	// Одна "лишняя" запись далеко наверху не должна раскладываться поштучно
	store := &mockStore{
		max:     constants.ItemEntryMax - 1,
		entries: []int32{start + 1, constants.ItemEntryMax - 1, start + 1},
	}

	f := New(start)
	require.NoError(t, f.Reconcile(context.Background(), store))

	s := f.Stats()
	assert.Equal(t, 2, s.Used)
	assert.Equal(t, int(constants.ItemEntryMax-1-start)-1, s.Free)
	assert.Len(t, f.free, 2, "gaps are kept as ranges")

	assert.Equal(t, start, f.CommitID())
	assert.Equal(t, start+2, f.CommitID())
	assert.Equal(t, start+3, f.CommitID())

	// id внутри свободного диапазона уже свободен
	require.NoError(t, f.Reclaim(start+10))
	assert.Equal(t, start+4, f.CommitID())

	require.NoError(t, f.Reclaim(start+2))
	assert.Equal(t, start+2, f.CommitID())
	assert.Equal(t, start+5, f.CommitID())
}

func TestFactory_ExhaustedEntrySpacePanics(t *testing.T) {
	t.Parallel()

	f := New(constants.ItemEntryMax)
	assert.Equal(t, constants.ItemEntryMax, f.CommitID())
	assert.Panics(t, func() { f.CommitID() })

	// reclaimed ids are still served
	require.NoError(t, f.Reclaim(constants.ItemEntryMax))
	assert.Equal(t, constants.ItemEntryMax, f.CommitID())
}
