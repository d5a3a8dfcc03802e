package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://workday.com/jobs", PlatformWorkday},
		{"https://example.com/careers/123", PlatformUnknown},
		{"https://notgreenhouse.io.example.com/job", PlatformUnknown},
		{"://bad-url", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestContentSelectors_PlatformFirstThenGeneric(t *testing.T) {
	selectors := ContentSelectors(PlatformLever)

	assert.Equal(t, ".posting-page", selectors[0])
	assert.Contains(t, selectors, ".job-description")
	assert.Contains(t, selectors, "main")
}

func TestContentSelectors_DoesNotMutateTable(t *testing.T) {
	before := len(platformSelectors[PlatformGreenhouse].content)
	_ = ContentSelectors(PlatformGreenhouse)
	_ = ContentSelectors(PlatformGreenhouse)

	assert.Equal(t, before, len(platformSelectors[PlatformGreenhouse].content))
}
