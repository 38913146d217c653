package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform. Knowing the platform lets
// extraction target the posting body instead of the page chrome.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS.
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS.
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS.
	PlatformWorkday Platform = "workday"
	// PlatformLinkedIn is a LinkedIn job page.
	PlatformLinkedIn Platform = "linkedin"
	// PlatformUnknown is an unrecognized job board.
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board from a URL's host.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "myworkdayjobs.com"), strings.Contains(host, "workday.com"):
		return PlatformWorkday
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	}
	return PlatformUnknown
}

// ContentSelectors returns the CSS selectors to try for this platform's
// posting body, most specific first. Generic job-board selectors are always
// appended so an unknown platform still gets a reasonable extraction.
func (p Platform) ContentSelectors() []string {
	var selectors []string
	switch p {
	case PlatformGreenhouse:
		selectors = []string{".job__description.body", ".job__description", "#content"}
	case PlatformLever:
		selectors = []string{".posting-page", ".posting-content", ".section-wrapper"}
	case PlatformWorkday:
		selectors = []string{"[data-automation-id='jobPostingDescription']"}
	case PlatformLinkedIn:
		selectors = []string{".description__text", ".show-more-less-html__markup"}
	}

	return append(selectors,
		".job-description",
		"#job-description",
		".job-details",
		"main",
		"article",
		".content",
		"#content",
	)
}
