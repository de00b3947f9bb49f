package crawler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"copenhagen-vendor-scraper/internal/store"
	"copenhagen-vendor-scraper/internal/types"
)

func testConfig() *types.Config {
	return &types.Config{
		RequestDelay:          5 * time.Millisecond,
		MaxRetries:            0,
		Timeout:               5 * time.Second,
		MaxConcurrentRequests: 2,
		UserAgent:             "test-agent",
	}
}

func venuePage(name string) string {
	return fmt.Sprintf(`<html><head><title>%s</title></head><body>
		<h1>%s</h1>
		<div class="address">Vesterbrogade 3, Copenhagen</div>
		<div class="capacity">100-300</div>
		<div class="price">5000 DKK</div>
	</body></html>`, name, name)
}

func TestCrawler_ListingWithPagination(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/listing", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `<html><body>
				<div class="listing-item"><a href="/venue/3">Hall Three</a></div>
			</body></html>`)
			return
		}
		fmt.Fprint(w, `<html><body>
			<div class="listing-item"><a href="/venue/1">Hall One</a></div>
			<div class="listing-item"><a href="/venue/2">Hall Two</a></div>
			<a class="next-page" href="/listing?page=2">Next</a>
		</body></html>`)
	})
	mux.HandleFunc("/venue/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, venuePage("Hall "+filepath.Base(r.URL.Path)))
	})

	st := store.New(filepath.Join(t.TempDir(), "vendors.json"), logrus.New())
	c := New(testConfig(), st, logrus.New())
	defer c.Close()

	c.Run(context.Background(), []string{server.URL + "/listing"})

	assert.Equal(t, 3, st.Len())
	require.NoError(t, st.Flush())
}

func TestCrawler_DirectVendorPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, venuePage("Solo Hall"))
	}))
	defer server.Close()

	st := store.New(filepath.Join(t.TempDir(), "vendors.json"), logrus.New())
	c := New(testConfig(), st, logrus.New())
	defer c.Close()

	// No listing markup on the page: it is treated as a vendor page itself.
	c.Run(context.Background(), []string{server.URL + "/venue/solo"})

	assert.Equal(t, 1, st.Len())
}

func TestCrawler_RejectedRecordNeverStored(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<h1>Far Away Hall</h1>
			<div class="address">123 Main St, Aarhus</div>
		</body></html>`)
	}))
	defer server.Close()

	st := store.New(filepath.Join(t.TempDir(), "vendors.json"), logrus.New())
	c := New(testConfig(), st, logrus.New())
	defer c.Close()

	c.Run(context.Background(), []string{server.URL + "/venue/far-away"})

	assert.Equal(t, 0, st.Len())
}

func TestCrawler_VisitedPagesFetchedOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/listing" {
			fmt.Fprint(w, `<html><body>
				<div class="listing-item"><a href="/venue/1">One</a></div>
				<div class="listing-item"><a href="/venue/1#details">One again</a></div>
			</body></html>`)
			return
		}
		fmt.Fprint(w, venuePage("Hall One"))
	}))
	defer server.Close()

	st := store.New(filepath.Join(t.TempDir(), "vendors.json"), logrus.New())
	cfg := testConfig()
	cfg.MaxConcurrentRequests = 1
	c := New(cfg, st, logrus.New())
	defer c.Close()

	c.Run(context.Background(), []string{server.URL + "/listing"})

	assert.Equal(t, 1, st.Len())
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		fmt.Fprint(w, "page body")
	}))
	defer server.Close()

	client := NewClient(testConfig(), logrus.New())
	defer client.Close()

	body, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "page body", string(body))
}

func TestClient_GetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(testConfig(), logrus.New())
	defer client.Close()

	_, err := client.Get(context.Background(), server.URL)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 404")
}

func TestClient_ContextCancelled(t *testing.T) {
	client := NewClient(testConfig(), logrus.New())
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "http://example.com")
	assert.ErrorIs(t, err, context.Canceled)
}
