// Package crawler is the crawling collaborator for the extraction pipeline:
// it discovers vendor pages from listing pages, fetches them, and hands each
// fetched document to the Classifier → Builder → Normalize → Validate → Store
// chain. It decides when to fetch; the pipeline only decides what to do with
// a fetched document.
package crawler

import (
	"context"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"copenhagen-vendor-scraper/internal/builders"
	"copenhagen-vendor-scraper/internal/classifier"
	"copenhagen-vendor-scraper/internal/document"
	"copenhagen-vendor-scraper/internal/pipeline"
	"copenhagen-vendor-scraper/internal/store"
	"copenhagen-vendor-scraper/internal/types"
)

// vendorLinkSelectors mirror the listing-page markup seen across the target
// directories. The first selector yielding links wins for a given page.
var vendorLinkSelectors = []string{
	"a.venue-link",
	".listing-item a",
	".vendor-link",
	`a[href*="/venue/"]`,
	`a[href*="/catering/"]`,
	`a[href*="/transport/"]`,
	`a[href*="/activity/"]`,
}

var nextPageSelectors = []string{"a.next-page", `a[rel="next"]`}

// maxPagesPerListing bounds pagination following on a single listing.
const maxPagesPerListing = 50

// Crawler drives a run: listing discovery, vendor-page fetches, and the
// per-document pipeline. Vendor pages are processed concurrently; only the
// store serializes.
type Crawler struct {
	client *Client
	store  *store.Store
	config *types.Config
	logger types.Logger

	mu      sync.Mutex
	visited map[string]bool
}

// New creates a crawler feeding the given store.
func New(config *types.Config, st *store.Store, logger types.Logger) *Crawler {
	return &Crawler{
		client:  NewClient(config, logger),
		store:   st,
		config:  config,
		logger:  logger,
		visited: make(map[string]bool),
	}
}

// Run crawls every start URL. Listing pages yield vendor links and optional
// pagination; a page without vendor links is treated as a vendor page itself.
// Errors on individual pages are logged and never abort the run.
func (c *Crawler) Run(ctx context.Context, startURLs []string) {
	for _, startURL := range startURLs {
		select {
		case <-ctx.Done():
			c.logger.Warnf("Crawl cancelled: %v", ctx.Err())
			return
		default:
		}
		c.crawlListing(ctx, startURL)
	}
}

// crawlListing walks one listing page chain, following pagination.
func (c *Crawler) crawlListing(ctx context.Context, pageURL string) {
	for page := 0; pageURL != "" && page < maxPagesPerListing; page++ {
		doc, ok := c.fetch(ctx, pageURL)
		if !ok {
			return
		}

		links := c.vendorLinks(doc)
		if len(links) == 0 {
			// Direct vendor page, no listing markup.
			c.processDocument(doc)
			return
		}

		c.processVendorPages(ctx, links)
		pageURL = c.nextPage(doc)
	}
}

// processVendorPages fetches and processes vendor pages through a bounded
// worker pool. The pipeline stages share no mutable state, so concurrent
// documents are safe; the store serializes its own writes.
func (c *Crawler) processVendorPages(ctx context.Context, links []string) {
	workers := c.config.MaxConcurrentRequests
	if workers < 1 {
		workers = 1
	}

	urls := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for link := range urls {
				if doc, ok := c.fetch(ctx, link); ok {
					c.processDocument(doc)
				}
			}
		}()
	}

	for _, link := range links {
		select {
		case <-ctx.Done():
			close(urls)
			wg.Wait()
			return
		case urls <- link:
		}
	}
	close(urls)
	wg.Wait()
}

// fetch retrieves and parses one page, deduplicating visits.
func (c *Crawler) fetch(ctx context.Context, pageURL string) (*document.Document, bool) {
	c.mu.Lock()
	if c.visited[pageURL] {
		c.mu.Unlock()
		return nil, false
	}
	c.visited[pageURL] = true
	c.mu.Unlock()

	body, err := c.client.Get(ctx, pageURL)
	if err != nil {
		c.logger.Warnf("Failed to fetch %s: %v", pageURL, err)
		return nil, false
	}

	doc, err := document.New(pageURL, string(body))
	if err != nil {
		c.logger.Warnf("Failed to parse %s: %v", pageURL, err)
		return nil, false
	}
	return doc, true
}

// processDocument runs one fetched document through the extraction pipeline.
func (c *Crawler) processDocument(doc *document.Document) {
	category := classifier.Classify(doc.URL, doc)

	rec := builders.Build(category, doc, c.logger)
	if rec == nil {
		return
	}

	rec = pipeline.Normalize(rec)

	if err := pipeline.Validate(rec, c.logger); err != nil {
		c.logger.Warnf("Record rejected (%s): %v", doc.URL, err)
		return
	}

	if err := c.store.Add(rec); err != nil {
		c.logger.Errorf("Failed to store record for %s: %v", doc.URL, err)
	}
}

// vendorLinks extracts unique absolute vendor links from a listing page.
func (c *Crawler) vendorLinks(doc *document.Document) []string {
	seen := make(map[string]bool)
	var links []string
	for _, selector := range vendorLinkSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			href, ok := s.Attr("href")
			if !ok {
				return
			}
			href = strings.TrimSpace(href)
			if href == "" || strings.HasPrefix(href, "#") {
				return
			}
			absolute := doc.AbsoluteURL(href)
			// Fragments never change the fetched page.
			if i := strings.Index(absolute, "#"); i >= 0 {
				absolute = absolute[:i]
			}
			if !seen[absolute] {
				seen[absolute] = true
				links = append(links, absolute)
			}
		})
		if len(links) > 0 {
			break
		}
	}
	return links
}

// nextPage returns the absolute pagination link, or "" when the listing ends.
func (c *Crawler) nextPage(doc *document.Document) string {
	for _, selector := range nextPageSelectors {
		if href, ok := doc.Find(selector).First().Attr("href"); ok {
			if href = strings.TrimSpace(href); href != "" {
				return doc.AbsoluteURL(href)
			}
		}
	}
	return ""
}

// Close releases the fetch client.
func (c *Crawler) Close() {
	c.client.Close()
}
