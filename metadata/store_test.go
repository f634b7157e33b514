package metadata

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/policybin/blob"
	"github.com/viant/policybin/indicator"
	"github.com/viant/policybin/schema"
)

func newTestStore(t *testing.T, opts ...Option) (*Store, *blob.Store) {
	t.Helper()
	objects := blob.New("mem://localhost/metadata-" + uuid.New().String())
	store, err := New(objects, opts...)
	require.NoError(t, err)
	return store, objects
}

// writeRaw stores snapshot bytes directly through afs, bypassing Replace
func writeRaw(t *testing.T, objects *blob.Store, location, data string) {
	t.Helper()
	err := afs.New().Upload(context.Background(), objects.URL(location), file.DefaultFileOsMode, strings.NewReader(data))
	require.NoError(t, err)
}

func stored(t *testing.T, objects *blob.Store, location string) bool {
	t.Helper()
	_, err := objects.Get(context.Background(), location)
	return err == nil
}

type unreachableObjects struct {
	*blob.Store
	listErr  error
	getErr   error
	replaced int
}

func (u *unreachableObjects) List(ctx context.Context, prefix string) ([]blob.Object, error) {
	if u.listErr != nil {
		return nil, u.listErr
	}
	return u.Store.List(ctx, prefix)
}

func (u *unreachableObjects) Get(ctx context.Context, location string) ([]byte, error) {
	if u.getErr != nil {
		return nil, u.getErr
	}
	return u.Store.Get(ctx, location)
}

func (u *unreachableObjects) Replace(ctx context.Context, location string, data []byte) error {
	u.replaced++
	return u.Store.Replace(ctx, location, data)
}

func newDocument(id, fileName string) *schema.Document {
	return &schema.Document{
		ID:         id,
		FileName:   fileName,
		UploadedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:     schema.StatusPending,
		URL:        "mem://localhost/files/" + fileName,
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.True(t, errors.Is(err, ErrNotFound))

	version, err := store.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), version)

	catalog := store.LoadOrDefault(ctx)
	assert.Len(t, catalog, len(indicator.Indicators()))
	assert.Equal(t, 0, catalog.DocumentCount())
}

func TestStore_SaveLoad(t *testing.T) {
	store, objects := newTestStore(t)
	ctx := context.Background()

	catalog := indicator.Bins()
	catalog.Bin("3.3.2").Append(newDocument("a", "skcc_ebrt_imrt_vmat_1.pdf"))
	catalog.Bin("14.1").Append(&schema.Document{ID: "b", FileName: "consent.pdf", UploadedAt: time.Now().UTC()})
	require.NoError(t, store.Save(ctx, catalog))

	raw, err := objects.Get(ctx, DefaultPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "[{"))
	assert.Contains(t, string(raw), `"content":""`)
	assert.Contains(t, string(raw), `"evidenceIndicator":"3.3.2"`)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, len(catalog))
	bin, doc := loaded.Find("a")
	require.NotNil(t, doc)
	assert.Equal(t, "3.3.2", bin.Indicator)
	assert.Equal(t, bin.Category, doc.Category)
	assert.Equal(t, "", doc.Content)
	assert.True(t, doc.UploadedAt.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))
	_, doc = loaded.Find("b")
	require.NotNil(t, doc)
	assert.Equal(t, schema.StatusPending, doc.Status)
	assert.Equal(t, "14.1", doc.EvidenceIndicator)

	version, err := store.Version(ctx)
	require.NoError(t, err)
	assert.NotZero(t, version)
	require.NoError(t, store.Save(ctx, loaded))
	again, err := store.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, version, again, "canonical encoding must be stable")
}

func TestStore_LoadUnreadable(t *testing.T) {
	var testCases = []struct {
		description string
		snapshot    string
	}{
		{description: "corrupt json", snapshot: `[{"evidenceIndicator":`},
		{description: "not an array", snapshot: `{"bins":[]}`},
		{description: "unknown status", snapshot: `[{"evidenceIndicator":"1.3","documents":[{"id":"x","fileName":"a.pdf","status":"archived"}]}]`},
		{description: "bad timestamp", snapshot: `[{"evidenceIndicator":"1.3","documents":[{"id":"x","fileName":"a.pdf","uploadedAt":"yesterday"}]}]`},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			store, objects := newTestStore(t)
			ctx := context.Background()
			writeRaw(t, objects, DefaultPath, testCase.snapshot)
			_, err := store.Load(ctx)
			assert.True(t, errors.Is(err, ErrUnreadable), err)
			assert.False(t, errors.Is(err, errFetch), "snapshot content must be the failure cause: %v", err)
			assert.Len(t, store.LoadOrDefault(ctx), len(indicator.Indicators()))
		})
	}
}

func TestStore_LoadLegacySnapshot(t *testing.T) {
	store, objects := newTestStore(t)
	ctx := context.Background()
	snapshot := `[
 {"evidenceIndicator":"7.1","title":"Culture of Safety","description":"d","category":"Safety","documents":[
  {"id":"1700000000000-abc","fileName":"7 Culture of safety combined.pdf","evidenceIndicator":"7.1","category":"Safety","uploadedAt":"2025-01-02T03:04:05.678Z","status":"approved","url":"https://blob/7.pdf"}
 ]},
 {"evidenceIndicator":"99.1","title":"Retired","description":"","category":"Other","documents":null}
]`
	writeRaw(t, objects, DefaultPath, snapshot)

	catalog, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog, len(indicator.Indicators())+1)
	assert.Equal(t, "7.1", catalog[0].Indicator)
	retired := catalog.Bin("99.1")
	require.NotNil(t, retired)
	assert.NotNil(t, retired.Documents)
	_, doc := catalog.Find("1700000000000-abc")
	require.NotNil(t, doc)
	assert.Equal(t, "", doc.Content)
	assert.Equal(t, schema.StatusApproved, doc.Status)
	assert.Equal(t, 678000000, doc.UploadedAt.Nanosecond())
}

func TestStore_SaveInvalid(t *testing.T) {
	store, objects := newTestStore(t)
	ctx := context.Background()
	catalog := indicator.Bins()
	catalog.Bin("1.3").Append(newDocument("dup", "a.pdf"))
	catalog.Bin("3.1").Append(newDocument("dup", "b.pdf"))

	err := store.Save(ctx, catalog)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
	assert.False(t, stored(t, objects, DefaultPath))
}

func TestStore_Update(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	catalog, err := store.Update(ctx, func(catalog schema.Catalog) error {
		catalog.Bin("6.2").Append(newDocument("a", "6.2 Locum combined.pdf"))
		catalog.Bin("6.2").Append(newDocument("b", "locum v2.pdf"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.DocumentCount())

	_, err = store.Update(ctx, func(catalog schema.Catalog) error {
		if !catalog.Bin("6.2").Remove("a") {
			return errors.New("missing")
		}
		return nil
	})
	require.NoError(t, err)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.HasID("a"))
	assert.True(t, loaded.HasID("b"))
	assert.Len(t, loaded.Bin("6.2").Documents, 1)
}

func TestStore_UpdateMutateError(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	_, err := store.Update(ctx, func(catalog schema.Catalog) error {
		catalog.Bin("1.3").Append(newDocument("a", "a.pdf"))
		return nil
	})
	require.NoError(t, err)
	before, err := store.Version(ctx)
	require.NoError(t, err)

	failure := errors.New("boom")
	_, err = store.Update(ctx, func(catalog schema.Catalog) error {
		catalog.Bin("1.3").Remove("a")
		return failure
	})
	assert.True(t, errors.Is(err, failure))
	after, err := store.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_UpdateUnreadableStartsFresh(t *testing.T) {
	store, objects := newTestStore(t)
	ctx := context.Background()
	writeRaw(t, objects, DefaultPath, "not json")

	catalog, err := store.Update(ctx, func(catalog schema.Catalog) error {
		catalog.Bin("1.3").Append(newDocument("a", "a.pdf"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.DocumentCount())
	_, err = store.Load(ctx)
	require.NoError(t, err)
}

func TestStore_UpdateGuardedRetry(t *testing.T) {
	store, _ := newTestStore(t)
	other, err := New(store.objects, WithGuardedWrites(0))
	require.NoError(t, err)
	ctx := context.Background()

	calls := 0
	catalog, err := store.Update(ctx, func(catalog schema.Catalog) error {
		calls++
		if calls == 1 {
			_, err := other.Update(ctx, func(catalog schema.Catalog) error {
				catalog.Bin("5.1").Append(newDocument("concurrent", "concurrent.pdf"))
				return nil
			})
			require.NoError(t, err)
		}
		catalog.Bin("1.3").Append(newDocument("mine", "mine.pdf"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.True(t, catalog.HasID("concurrent"))
	assert.True(t, catalog.HasID("mine"))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.HasID("concurrent"))
	assert.True(t, loaded.HasID("mine"))
}

func TestStore_UpdateGuardedConflict(t *testing.T) {
	store, _ := newTestStore(t, WithGuardedWrites(2))
	other, err := New(store.objects, WithGuardedWrites(0))
	require.NoError(t, err)
	ctx := context.Background()

	calls := 0
	_, err = store.Update(ctx, func(catalog schema.Catalog) error {
		calls++
		_, err := other.Update(ctx, func(catalog schema.Catalog) error {
			catalog.Bin("5.1").Append(newDocument(uuid.New().String(), "concurrent.pdf"))
			return nil
		})
		require.NoError(t, err)
		return nil
	})
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, 3, calls)
}

func TestStore_WithPath(t *testing.T) {
	store, objects := newTestStore(t, WithPath("custom/bins.json"))
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, indicator.Bins()))
	assert.True(t, stored(t, objects, "custom/bins.json"))
	assert.Equal(t, "custom/bins.json", store.Path())

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, len(indicator.Indicators()))

	root, err := New(objects, WithPath("/bins.json"))
	require.NoError(t, err)
	_, err = root.Load(ctx)
	assert.True(t, errors.Is(err, ErrNotFound))
	require.NoError(t, root.Save(ctx, indicator.Bins()))
	_, err = root.Load(ctx)
	require.NoError(t, err)
}

func TestStore_SaveLoadRepeated(t *testing.T) {
	store, objects := newTestStore(t)
	ctx := context.Background()
	for i, id := range []string{"a", "b", "c"} {
		_, err := store.Update(ctx, func(catalog schema.Catalog) error {
			catalog.Bin("9.1").Append(newDocument(id, id+".pdf"))
			return nil
		})
		require.NoError(t, err)
		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, i+1, loaded.DocumentCount())
	}
	listed, err := objects.List(ctx, "metadata")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, DefaultPath, listed[0].Path)
}

func TestStore_UpdateFetchFailure(t *testing.T) {
	var testCases = []struct {
		description string
		listErr     error
		getErr      error
	}{
		{description: "get fails", getErr: errors.New("connection reset")},
		{description: "list fails", listErr: errors.New("permission denied")},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			ctx := context.Background()
			seeded, objects := newTestStore(t)
			_, err := seeded.Update(ctx, func(catalog schema.Catalog) error {
				catalog.Bin("1.3").Append(newDocument("kept", "kept.pdf"))
				return nil
			})
			require.NoError(t, err)

			unreachable := &unreachableObjects{Store: objects, listErr: testCase.listErr, getErr: testCase.getErr}
			store, err := New(unreachable)
			require.NoError(t, err)
			called := false
			_, err = store.Update(ctx, func(catalog schema.Catalog) error {
				called = true
				return nil
			})
			assert.True(t, errors.Is(err, ErrUnreadable), err)
			assert.False(t, called)
			assert.Equal(t, 0, unreachable.replaced, "nothing is saved")

			loaded, err := seeded.Load(ctx)
			require.NoError(t, err)
			assert.True(t, loaded.HasID("kept"))
		})
	}
}
