package reindex

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/policybin/blob"
	"github.com/viant/policybin/extract"
	"github.com/viant/policybin/metadata"
	"github.com/viant/policybin/schema"
)

type fakeFetcher struct {
	mu      sync.Mutex
	objects map[string][]byte
	delay   time.Duration
	onGet   func(location string)
	calls   int
}

func (f *fakeFetcher) Get(ctx context.Context, location string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	data, ok := f.objects[location]
	hook := f.onGet
	f.mu.Unlock()
	if hook != nil {
		hook(location)
	}
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

var echo = extract.Func(func(_ string, data []byte) string { return string(data) })

func newStore(t *testing.T) *metadata.Store {
	t.Helper()
	store, err := metadata.New(blob.New("mem://localhost/reindex-" + uuid.New().String()))
	require.NoError(t, err)
	return store
}

func seed(t *testing.T, store *metadata.Store) {
	t.Helper()
	_, err := store.Update(context.Background(), func(catalog schema.Catalog) error {
		catalog.Bin("7.1").Append(
			&schema.Document{ID: "a", FileName: "a.pdf", URL: "mem://files/a.pdf", Status: schema.StatusApproved},
			&schema.Document{ID: "b", FileName: "b.pdf", URL: "mem://files/b.pdf", Content: "previous"},
			&schema.Document{ID: "manual", FileName: "manual entry"},
		)
		catalog.Bin("14.1").Append(&schema.Document{ID: "c", FileName: "c.pdf", URL: "mem://files/c.pdf"})
		return nil
	})
	require.NoError(t, err)
}

func TestReindexer_NoMetadata(t *testing.T) {
	store := newStore(t)
	result, err := New(store, &fakeFetcher{}, echo).Run(context.Background())
	assert.True(t, errors.Is(err, ErrNoMetadata))
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, NoMetadataReason, result.Reason)
}

func TestReindexer_Run(t *testing.T) {
	store := newStore(t)
	seed(t, store)
	fetcher := &fakeFetcher{objects: map[string][]byte{
		"mem://files/a.pdf": []byte("culture of safety"),
		"mem://files/c.pdf": []byte(""),
	}}

	result, err := New(store, fetcher, echo, WithWorkers(2)).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.DocumentsParsed)
	assert.Equal(t, 3, fetcher.calls)

	catalog, err := store.Load(context.Background())
	require.NoError(t, err)
	_, doc := catalog.Find("a")
	assert.Equal(t, "culture of safety", doc.Content)
	assert.Equal(t, schema.StatusApproved, doc.Status)
	_, doc = catalog.Find("b")
	assert.Equal(t, "previous", doc.Content, "failed fetch keeps stored content")
	_, doc = catalog.Find("c")
	assert.Equal(t, "", doc.Content)
	_, doc = catalog.Find("manual")
	assert.Equal(t, "", doc.Content)
}

func TestReindexer_Idempotent(t *testing.T) {
	store := newStore(t)
	seed(t, store)
	fetcher := &fakeFetcher{objects: map[string][]byte{
		"mem://files/a.pdf": []byte("one"),
		"mem://files/b.pdf": []byte("two"),
		"mem://files/c.pdf": []byte("three"),
	}}
	reindexer := New(store, fetcher, echo)

	first, err := reindexer.Run(context.Background())
	require.NoError(t, err)
	version, err := store.Version(context.Background())
	require.NoError(t, err)
	second, err := reindexer.Run(context.Background())
	require.NoError(t, err)
	again, err := store.Version(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, first.DocumentsParsed)
	assert.Equal(t, first, second)
	assert.Equal(t, version, again)
}

func TestReindexer_KeepsConcurrentEdits(t *testing.T) {
	store := newStore(t)
	seed(t, store)
	var once sync.Once
	fetcher := &fakeFetcher{objects: map[string][]byte{
		"mem://files/a.pdf": []byte("alpha"),
		"mem://files/b.pdf": []byte("beta"),
		"mem://files/c.pdf": []byte("gamma"),
	}}
	fetcher.onGet = func(string) {
		once.Do(func() {
			_, err := store.Update(context.Background(), func(catalog schema.Catalog) error {
				_, doc := catalog.Find("a")
				doc.Status = schema.StatusRejected
				catalog.Bin("14.1").Remove("c")
				catalog.Bin("5.1").Append(&schema.Document{ID: "new", FileName: "new.pdf"})
				return nil
			})
			require.NoError(t, err)
		})
	}

	result, err := New(store, fetcher, echo, WithWorkers(1)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.DocumentsParsed)

	catalog, err := store.Load(context.Background())
	require.NoError(t, err)
	_, doc := catalog.Find("a")
	assert.Equal(t, "alpha", doc.Content)
	assert.Equal(t, schema.StatusRejected, doc.Status)
	assert.False(t, catalog.HasID("c"), "deleted documents are not resurrected")
	assert.True(t, catalog.HasID("new"))
}

func TestReindexer_DocumentTimeout(t *testing.T) {
	store := newStore(t)
	seed(t, store)
	fetcher := &fakeFetcher{
		objects: map[string][]byte{"mem://files/a.pdf": []byte("late")},
		delay:   time.Second,
	}
	result, err := New(store, fetcher, echo, WithDocumentTimeout(20*time.Millisecond), WithWorkers(3)).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.DocumentsParsed)
}

func TestReindexer_Cancelled(t *testing.T) {
	store := newStore(t)
	seed(t, store)
	ctx, cancel := context.WithCancel(context.Background())
	fetcher := &fakeFetcher{objects: map[string][]byte{"mem://files/a.pdf": []byte("a")}}
	fetcher.onGet = func(string) { cancel() }

	_, err := New(store, fetcher, echo, WithWorkers(1), WithFetchRate(1000)).Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	catalog, err := store.Load(context.Background())
	require.NoError(t, err)
	_, doc := catalog.Find("a")
	assert.Equal(t, "", doc.Content)
}

type countingStore struct {
	*metadata.Store
	updates int
}

func (c *countingStore) Update(ctx context.Context, mutate func(catalog schema.Catalog) error) (schema.Catalog, error) {
	c.updates++
	return c.Store.Update(ctx, mutate)
}

func TestReindexer_SavesOncePerPass(t *testing.T) {
	store := newStore(t)
	seed(t, store)
	counting := &countingStore{Store: store}
	before, err := store.Version(context.Background())
	require.NoError(t, err)

	result, err := New(counting, &fakeFetcher{}, echo).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.DocumentsParsed)
	assert.Equal(t, 1, counting.updates)
	after, err := store.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after, "a pass without new content rewrites an identical snapshot")
}
