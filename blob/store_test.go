package blob

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New("mem://localhost/blob-" + uuid.New().String())
}

func TestStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.Put(ctx, "6.2 Locum combined.pdf", []byte("one"))
	require.NoError(t, err)
	second, err := store.Put(ctx, "6.2 Locum combined.pdf", []byte("two"))
	require.NoError(t, err)
	assert.NotEqual(t, first.URL, second.URL, "repeated names must produce distinct objects")
	assert.True(t, strings.HasPrefix(first.Path, "6.2 Locum combined-"))
	assert.True(t, strings.HasSuffix(first.Path, ".pdf"))

	data, err := store.Get(ctx, first.URL)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))
	data, err = store.Get(ctx, second.Path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestStore_PutStableName(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	object, err := store.Put(ctx, "metadata/policy-bins.json", []byte("[]"), WithStableName())
	require.NoError(t, err)
	assert.Equal(t, "metadata/policy-bins.json", object.Path)
	_, err = store.Put(ctx, "metadata/policy-bins.json", []byte("[1]"), WithStableName())
	require.NoError(t, err)
	data, err := store.Get(ctx, "metadata/policy-bins.json")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(data))

	_, err = store.Put(ctx, "", []byte("x"))
	assert.Error(t, err)
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	objects, err := store.List(ctx, "metadata/")
	require.NoError(t, err)
	assert.Empty(t, objects)

	_, err = store.Put(ctx, "metadata/policy-bins.json", []byte("[]"), WithStableName())
	require.NoError(t, err)
	_, err = store.Put(ctx, "other.pdf", []byte("x"), WithStableName())
	require.NoError(t, err)

	objects, err = store.List(ctx, "metadata/")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "metadata/policy-bins.json", objects[0].Path)
	assert.Equal(t, store.URL("metadata/policy-bins.json"), objects[0].URL)
}

func TestStore_Replace(t *testing.T) {
	var testCases = []struct {
		description string
		baseURL     string
	}{
		{description: "mem", baseURL: "mem://localhost/blob-" + uuid.New().String()},
		{description: "file", baseURL: "file://" + filepath.ToSlash(t.TempDir())},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			ctx := context.Background()
			store := New(testCase.baseURL)

			require.NoError(t, store.Replace(ctx, "metadata/policy-bins.json", []byte("v1")))
			data, err := store.Get(ctx, "metadata/policy-bins.json")
			require.NoError(t, err)
			assert.Equal(t, "v1", string(data))

			require.NoError(t, store.Replace(ctx, "metadata/policy-bins.json", []byte("v2")))
			data, err = store.Get(ctx, "metadata/policy-bins.json")
			require.NoError(t, err)
			assert.Equal(t, "v2", string(data))

			objects, err := store.List(ctx, "metadata/")
			require.NoError(t, err)
			require.Len(t, objects, 1, "staging objects must not remain")
			assert.Equal(t, "metadata/policy-bins.json", objects[0].Path)

			require.NoError(t, store.Replace(ctx, "bins", []byte("no extension")))
			data, err = store.Get(ctx, "bins")
			require.NoError(t, err)
			assert.Equal(t, "no extension", string(data))
		})
	}
}

func TestStore_ReplaceConcurrent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	payloads := map[string]bool{}
	var group sync.WaitGroup
	var errs = make([]error, 8)
	for i := range errs {
		payload := strings.Repeat(strconv.Itoa(i), 4096)
		payloads[payload] = true
		group.Add(1)
		go func() {
			defer group.Done()
			errs[i] = store.Replace(ctx, "metadata/policy-bins.json", []byte(payload))
		}()
	}
	group.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
	data, err := store.Get(ctx, "metadata/policy-bins.json")
	require.NoError(t, err)
	assert.True(t, payloads[string(data)], "final object must be one complete payload")
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get(context.Background(), "missing.pdf")
	assert.Error(t, err)
}

func TestStore_URL(t *testing.T) {
	store := New("mem://localhost/root/")
	assert.Equal(t, "mem://localhost/root", store.BaseURL())
	assert.Equal(t, "mem://localhost/root/a/b.pdf", store.URL("/a/b.pdf"))
	assert.Equal(t, "gs://bucket/x.pdf", store.URL("gs://bucket/x.pdf"))
}
