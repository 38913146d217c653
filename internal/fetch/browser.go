// Package fetch - browser.go provides headless browser rendering for job
// boards that only render their posting client-side.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum extracted text length to trust a plain
// HTTP fetch. Shorter results usually mean a JavaScript-rendered page.
const MinContentLength = 500

// browserTimeout bounds a single headless-browser render.
const browserTimeout = 30 * time.Second

// NeedsBrowser reports whether extracted text is too short to be a real job
// posting, suggesting the page needs browser rendering.
func NeedsBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// RenderedHTML loads the URL in a headless browser, waits for the page to
// render, and returns the resulting HTML. Requires Chrome/Chromium on the
// host.
func RenderedHTML(ctx context.Context, urlStr string, verbose bool) (string, error) {
	if verbose {
		log.Printf("[VERBOSE] Rendering %s in headless browser", urlStr)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, browserTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to fill in the posting.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[VERBOSE] Rendered HTML: %d bytes", len(html))
	}
	return html, nil
}
