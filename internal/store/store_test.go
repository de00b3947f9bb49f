package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"copenhagen-vendor-scraper/internal/types"
)

func testVenue(name, url string) *types.Venue {
	v := &types.Venue{}
	v.Name = name
	v.AddressFull = "Copenhagen"
	v.VendorType = "venue"
	v.URLSource = url
	return v
}

func readStoredNames(t *testing.T, path string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []struct {
		Name      string `json:"name"`
		URLSource string `json:"url_source"`
	}
	require.NoError(t, json.Unmarshal(data, &records))

	names := make(map[string]string)
	for _, r := range records {
		names[r.URLSource] = r.Name
	}
	return names
}

func TestStore_DedupLastWriteWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendors.json")
	s := New(path, logrus.New())

	require.NoError(t, s.Add(testVenue("Old Name", "https://example.com/hall")))
	require.NoError(t, s.Add(testVenue("New Name", "https://example.com/hall")))
	require.NoError(t, s.Flush())

	names := readStoredNames(t, path)
	assert.Len(t, names, 1)
	assert.Equal(t, "New Name", names["https://example.com/hall"])
}

func TestStore_FlushIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendors.json")
	s := New(path, logrus.New())

	require.NoError(t, s.Add(testVenue("A", "https://example.com/a")))
	require.NoError(t, s.Add(testVenue("B", "https://example.com/b")))

	require.NoError(t, s.Flush())
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Flush())
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_LoadMergesPriorRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendors.json")

	// First run persists one record.
	s := New(path, logrus.New())
	require.NoError(t, s.Add(testVenue("First Run", "https://example.com/hall")))
	require.NoError(t, s.Flush())

	// Second run re-scrapes the same URL; its record supersedes the loaded one.
	s2 := New(path, logrus.New())
	s2.Load()
	assert.Equal(t, 1, s2.Len())
	require.NoError(t, s2.Add(testVenue("Second Run", "https://example.com/hall")))
	require.NoError(t, s2.Add(testVenue("Another", "https://example.com/other")))
	require.NoError(t, s2.Flush())

	names := readStoredNames(t, path)
	assert.Len(t, names, 2)
	assert.Equal(t, "Second Run", names["https://example.com/hall"])
	assert.Equal(t, "Another", names["https://example.com/other"])
}

func TestStore_LoadMalformedStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendors.json")
	require.NoError(t, os.WriteFile(path, []byte("{this is not a json array"), 0o644))

	s := New(path, logrus.New())
	s.Load()

	assert.Equal(t, 0, s.Len())

	// The run continues and the flush overwrites the malformed file.
	require.NoError(t, s.Add(testVenue("Fresh", "https://example.com/fresh")))
	require.NoError(t, s.Flush())
	names := readStoredNames(t, path)
	assert.Equal(t, "Fresh", names["https://example.com/fresh"])
}

func TestStore_LoadMissingFileStartsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"), logrus.New())
	s.Load()
	assert.Equal(t, 0, s.Len())
}

func TestStore_RecordsWithoutURLAreRetained(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendors.json")
	s := New(path, logrus.New())

	require.NoError(t, s.Add(testVenue("One", "")))
	require.NoError(t, s.Add(testVenue("Two", "")))
	require.NoError(t, s.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &records))
	assert.Len(t, records, 2)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendors.json")
	s := New(path, logrus.New())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := testVenue("Hall", "https://example.com/hall")
			assert.NoError(t, s.Add(v))
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, s.Len())
	require.NoError(t, s.Flush())
	names := readStoredNames(t, path)
	assert.Len(t, names, 1)
}

func TestStore_SecondarySinkFailureDoesNotBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendors.json")
	s := New(path, logrus.New())
	s.SetSecondary(failingSink{})

	require.NoError(t, s.Add(testVenue("Hall", "https://example.com/hall")))
	require.NoError(t, s.Flush())

	names := readStoredNames(t, path)
	assert.Equal(t, "Hall", names["https://example.com/hall"])
}

type failingSink struct{}

func (failingSink) Upsert(types.Record) error { return assert.AnError }
func (failingSink) Close() error              { return nil }
