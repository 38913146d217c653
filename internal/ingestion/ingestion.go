// Package ingestion turns the caller's job-description input — inline text, a
// text file, or a job-posting URL — into normalized text ready for matching.
package ingestion

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/textutil"
)

var (
	// ErrEmptyJobDescription is returned when ingestion produced no usable text.
	ErrEmptyJobDescription = fmt.Errorf("job description is empty")
)

// Options configures URL ingestion.
type Options struct {
	// UseBrowser enables the headless-browser fallback for JavaScript-
	// rendered job boards. Requires Chrome on the host.
	UseBrowser bool
	Verbose    bool
}

// FromText normalizes inline job-description text.
func FromText(text string) (string, error) {
	normalized := textutil.Normalize(text)
	if normalized == "" {
		return "", ErrEmptyJobDescription
	}
	return normalized, nil
}

// FromFile reads a job-description text file and normalizes it.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file %s: %w", path, err)
	}
	return FromText(string(data))
}

// FromURL fetches a job posting and reduces it to normalized text. The
// platform is detected from the URL so extraction can target the posting
// body; when plain HTTP yields too little text and the browser fallback is
// enabled, the page is re-rendered headlessly and re-extracted.
func FromURL(ctx context.Context, urlStr string, opts Options) (string, error) {
	platform := fetch.DetectPlatform(urlStr)
	if opts.Verbose {
		log.Printf("[VERBOSE] Fetching job posting from %s (platform: %s)", urlStr, platform)
	}

	html, err := fetch.HTML(ctx, urlStr)
	if err != nil {
		return "", err
	}

	text, err := fetch.ExtractPostingText(html, platform)
	if err != nil {
		return "", err
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Extracted %d chars of posting text", len(text))
	}

	if opts.UseBrowser && fetch.NeedsBrowser(text) {
		renderedHTML, renderErr := fetch.RenderedHTML(ctx, urlStr, opts.Verbose)
		if renderErr != nil {
			// Keep whatever the HTTP fetch produced.
			if opts.Verbose {
				log.Printf("[VERBOSE] Browser fallback failed: %v", renderErr)
			}
		} else if rendered, extractErr := fetch.ExtractPostingText(renderedHTML, platform); extractErr == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	return FromText(text)
}
