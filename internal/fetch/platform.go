package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse job board
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever job board
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday job board
	PlatformWorkday Platform = "workday"
	// PlatformUnknown is any other site
	PlatformUnknown Platform = "unknown"
)

type selectorSet struct {
	hosts   []string
	content []string
	noise   []string
}

// applicationNoise is stripped on every platform: apply forms, EEO blocks, share widgets.
var applicationNoise = []string{
	"form",
	".application-form",
	"#application-form",
	".apply-button-container",
	".eeo-statement",
	".voluntary-disclosure",
	".self-identification",
	".social-share",
	".share-buttons",
	".cookie-consent",
	".gdpr-notice",
}

//nolint:gochecknoglobals
var platformSelectors = map[Platform]selectorSet{
	PlatformGreenhouse: {
		hosts:   []string{"greenhouse.io"},
		content: []string{".job__description.body", ".job__description", "#content", ".job-post-container"},
		noise:   []string{".application--wrapper", ".voluntary-self-id", "#usa_self_id_section", ".post-apply"},
	},
	PlatformLever: {
		hosts:   []string{"lever.co"},
		content: []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"},
		noise:   []string{".apply-section", ".lever-application-form", ".posting-apply"},
	},
	PlatformWorkday: {
		hosts:   []string{"workday.com", "myworkdayjobs.com"},
		content: []string{"[data-automation-id='jobDescription']", ".gwt-HTML", ".job-description"},
		noise:   []string{"[data-automation-id='applyButton']", ".application-section"},
	},
	PlatformUnknown: {
		content: []string{
			".job-description",
			"#job-description",
			".job-content",
			"#job-content",
			".posting-content",
			".job-details",
			"[data-testid='job-description']",
			"main",
			"article",
			".content",
			"#content",
		},
	},
}

// DetectPlatform identifies the job board from a URL's host.
func DetectPlatform(rawURL string) Platform {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Hostname())

	for platform, sel := range platformSelectors {
		for _, h := range sel.hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return platform
			}
		}
	}
	return PlatformUnknown
}

// ContentSelectors returns the content selectors tried for a platform, most specific first.
func ContentSelectors(platform Platform) []string {
	return selectorsFor(platform).content
}

func selectorsFor(platform Platform) selectorSet {
	sel, ok := platformSelectors[platform]
	if !ok {
		sel = platformSelectors[PlatformUnknown]
	}
	if platform != PlatformUnknown {
		// Generic job selectors act as fallbacks after the platform's own
		sel.content = append(append([]string{}, sel.content...), platformSelectors[PlatformUnknown].content...)
	}
	sel.noise = append(append([]string{}, applicationNoise...), sel.noise...)
	return sel
}
